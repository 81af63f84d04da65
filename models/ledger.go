package models

// Record kinds understood by the ledger's aggregate queries.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// ============================================================================
// INCOME
// ============================================================================

type Income struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     Date    `json:"date"`
	UserID   string  `json:"user_id"`
}

type CreateIncomeRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Date     Date    `json:"date"`
}

// IncomePatch carries only the fields present in the request body.
// Nil means "leave the stored value alone".
type IncomePatch struct {
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category *string  `json:"category"`
	Date     *Date    `json:"date"`
}

// ============================================================================
// EXPENSE
// ============================================================================

type Expense struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     Date    `json:"date"`
	Comment  string  `json:"comment,omitempty"`
	UserID   string  `json:"user_id"`
}

type CreateExpenseRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Date     Date    `json:"date"`
	Comment  string  `json:"comment"`
}

type ExpensePatch struct {
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category *string  `json:"category"`
	Date     *Date    `json:"date"`
	Comment  *string  `json:"comment"`
}

// ============================================================================
// BUDGET
// ============================================================================

type Budget struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	UserID   string  `json:"user_id"`
}

type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Month    int     `json:"month" binding:"required,min=1,max=12"`
	Year     int     `json:"year" binding:"required"`
}

type BudgetPatch struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Month    *int     `json:"month" binding:"omitempty,min=1,max=12"`
	Year     *int     `json:"year"`
}

// ============================================================================
// SAVINGS GOAL
// ============================================================================

type SavingsGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    *Date   `json:"target_date"`
	UserID        string  `json:"user_id"`
}

type CreateSavingsGoalRequest struct {
	Name          string  `json:"name" binding:"required"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"omitempty,gte=0"`
	TargetDate    *Date   `json:"target_date"`
}

type SavingsGoalPatch struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount" binding:"omitempty,gte=0"`
	TargetDate    *Date    `json:"target_date"`
}

// ============================================================================
// EXPORT
// ============================================================================

// ExportRow is one line of the CSV/Excel download: incomes first, then
// expenses, with the comment column empty for incomes.
type ExportRow struct {
	Type     string
	Date     Date
	Category string
	Amount   float64
	Comment  string
}
