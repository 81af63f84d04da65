package handlers

import (
	"net/http"

	"finance-api/middleware"
	"finance-api/models"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	Ledger Ledger
}

func NewBudgetHandler(ledger Ledger) *BudgetHandler {
	return &BudgetHandler{Ledger: ledger}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	budget, err := h.Ledger.CreateBudget(ctx, middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err, "Budget not found")
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// List returns every budget of the user; budgets are not paginated.
func (h *BudgetHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	budgets, err := h.Ledger.ListBudgets(ctx, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Budget not found")
		return
	}
	c.JSON(http.StatusOK, budgets)
}

func (h *BudgetHandler) Update(c *gin.Context) {
	var patch models.BudgetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	budget, err := h.Ledger.UpdateBudget(ctx, c.Param("id"), middleware.GetUserID(c), patch)
	if err != nil {
		respondError(c, err, "Budget not found")
		return
	}
	c.JSON(http.StatusOK, budget)
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Ledger.DeleteBudget(ctx, c.Param("id"), middleware.GetUserID(c)); err != nil {
		respondError(c, err, "Budget not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
