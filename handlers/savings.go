package handlers

import (
	"net/http"

	"finance-api/middleware"
	"finance-api/models"

	"github.com/gin-gonic/gin"
)

type SavingsGoalHandler struct {
	Ledger Ledger
}

func NewSavingsGoalHandler(ledger Ledger) *SavingsGoalHandler {
	return &SavingsGoalHandler{Ledger: ledger}
}

func (h *SavingsGoalHandler) Create(c *gin.Context) {
	var req models.CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	goal, err := h.Ledger.CreateSavingsGoal(ctx, middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err, "Savings goal not found")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// List returns every savings goal of the user; goals are not paginated.
func (h *SavingsGoalHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	goals, err := h.Ledger.ListSavingsGoals(ctx, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Savings goal not found")
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *SavingsGoalHandler) Update(c *gin.Context) {
	var patch models.SavingsGoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	goal, err := h.Ledger.UpdateSavingsGoal(ctx, c.Param("id"), middleware.GetUserID(c), patch)
	if err != nil {
		respondError(c, err, "Savings goal not found")
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *SavingsGoalHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Ledger.DeleteSavingsGoal(ctx, c.Param("id"), middleware.GetUserID(c)); err != nil {
		respondError(c, err, "Savings goal not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Savings goal deleted successfully"})
}
