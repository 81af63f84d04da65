package handlers

import (
	"net/http"

	"finance-api/middleware"
	"finance-api/models"

	"github.com/gin-gonic/gin"
)

type IncomeHandler struct {
	Ledger Ledger
}

func NewIncomeHandler(ledger Ledger) *IncomeHandler {
	return &IncomeHandler{Ledger: ledger}
}

func (h *IncomeHandler) Create(c *gin.Context) {
	var req models.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	income, err := h.Ledger.CreateIncome(ctx, middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err, "Income not found")
		return
	}
	c.JSON(http.StatusCreated, income)
}

func (h *IncomeHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	incomes, err := h.Ledger.ListIncomes(ctx, middleware.GetUserID(c), offset, limit)
	if err != nil {
		respondError(c, err, "Income not found")
		return
	}
	c.JSON(http.StatusOK, incomes)
}

func (h *IncomeHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	income, err := h.Ledger.GetIncome(ctx, c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Income not found")
		return
	}
	c.JSON(http.StatusOK, income)
}

func (h *IncomeHandler) Update(c *gin.Context) {
	var patch models.IncomePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	income, err := h.Ledger.UpdateIncome(ctx, c.Param("id"), middleware.GetUserID(c), patch)
	if err != nil {
		respondError(c, err, "Income not found")
		return
	}
	c.JSON(http.StatusOK, income)
}

func (h *IncomeHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Ledger.DeleteIncome(ctx, c.Param("id"), middleware.GetUserID(c)); err != nil {
		respondError(c, err, "Income not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
