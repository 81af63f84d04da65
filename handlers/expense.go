package handlers

import (
	"net/http"

	"finance-api/middleware"
	"finance-api/models"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	Ledger Ledger
}

func NewExpenseHandler(ledger Ledger) *ExpenseHandler {
	return &ExpenseHandler{Ledger: ledger}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req models.CreateExpenseRequest
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

	expense, err := h.Ledger.CreateExpense(ctx, middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	expenses, err := h.Ledger.ListExpenses(ctx, middleware.GetUserID(c), offset, limit)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	expense, err := h.Ledger.GetExpense(ctx, c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var patch models.ExpensePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	expense, err := h.Ledger.UpdateExpense(ctx, c.Param("id"), middleware.GetUserID(c), patch)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Ledger.DeleteExpense(ctx, c.Param("id"), middleware.GetUserID(c)); err != nil {
		respondError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
