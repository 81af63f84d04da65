package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"finance-api/models"
	"finance-api/services"

	"github.com/gin-gonic/gin"
)

// Ledger is the persistence surface the resource handlers depend on.
// *services.LedgerService satisfies it; tests substitute an in-memory fake.
type Ledger interface {
	CreateIncome(ctx context.Context, owner string, req models.CreateIncomeRequest) (*models.Income, error)
	GetIncome(ctx context.Context, id, owner string) (*models.Income, error)
	ListIncomes(ctx context.Context, owner string, offset, limit int) ([]models.Income, error)
	UpdateIncome(ctx context.Context, id, owner string, patch models.IncomePatch) (*models.Income, error)
	DeleteIncome(ctx context.Context, id, owner string) error

	CreateExpense(ctx context.Context, owner string, req models.CreateExpenseRequest) (*models.Expense, error)
	GetExpense(ctx context.Context, id, owner string) (*models.Expense, error)
	ListExpenses(ctx context.Context, owner string, offset, limit int) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id, owner string, patch models.ExpensePatch) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id, owner string) error

	CreateBudget(ctx context.Context, owner string, req models.CreateBudgetRequest) (*models.Budget, error)
	ListBudgets(ctx context.Context, owner string) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, id, owner string, patch models.BudgetPatch) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id, owner string) error

	CreateSavingsGoal(ctx context.Context, owner string, req models.CreateSavingsGoalRequest) (*models.SavingsGoal, error)
	ListSavingsGoals(ctx context.Context, owner string) ([]models.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, id, owner string, patch models.SavingsGoalPatch) (*models.SavingsGoal, error)
	DeleteSavingsGoal(ctx context.Context, id, owner string) error

	ExportRows(ctx context.Context, owner string) ([]models.ExportRow, error)
}

// Identity is the auth surface, satisfied by *services.IdentityService.
type Identity interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// StatsProvider is satisfied by *services.DashboardService.
type StatsProvider interface {
	Stats(ctx context.Context, owner string) (*models.DashboardStats, error)
}

// parsePagination reads offset/limit query params with the list defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset = intQuery(c, "offset", 0)
	limit = intQuery(c, "limit", 100)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return offset, limit
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// requestTimeout bounds every handler's database work.
const requestTimeout = 10 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// respondError maps service errors to HTTP statuses. notFoundMsg names the
// resource so a miss reads like the resource never existed.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}
