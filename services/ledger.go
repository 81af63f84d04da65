package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"finance-api/models"

	"github.com/google/uuid"
)

// LedgerService persists the four record kinds. Every query it issues is
// scoped by the owning user id; a miss and a cross-owner hit are
// indistinguishable (both ErrNotFound).
type LedgerService struct {
	db *sql.DB
}

func NewLedgerService(db *sql.DB) *LedgerService {
	return &LedgerService{db: db}
}

// kindTables maps an aggregate query kind to its table. Both tables share
// the (amount, category, date, user_id) column set.
var kindTables = map[string]string{
	models.KindIncome:  "incomes",
	models.KindExpense: "expenses",
}

// ============================================================================
// GENERIC SCOPED CORE
//
// All per-resource CRUD below funnels through these helpers so the owner
// scoping rule lives in exactly one place.
// ============================================================================

func queryOne[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Row) (T, error), args ...interface{}) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	rec, err := scan(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func queryMany[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) (T, error), args ...interface{}) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// patchField is one provided column of a partial update.
type patchField struct {
	column string
	value  interface{}
}

// patchOwned applies the provided fields to a single owned row. A zero-row
// match is ErrNotFound; an empty patch leaves the row untouched but still
// requires it to exist.
func (s *LedgerService) patchOwned(ctx context.Context, table, id, owner string, fields []patchField) error {
	if len(fields) == 0 {
		return s.existsOwned(ctx, table, id, owner)
	}

	set := make([]string, len(fields))
	args := []interface{}{id, owner}
	for i, f := range fields {
		set[i] = fmt.Sprintf("%s = $%d", f.column, i+3)
		args = append(args, f.value)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 AND user_id = $2", table, strings.Join(set, ", "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return oneRowOrNotFound(res)
}

func (s *LedgerService) deleteOwned(ctx context.Context, table, id, owner string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2", table)
	res, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return err
	}
	return oneRowOrNotFound(res)
}

func (s *LedgerService) existsOwned(ctx context.Context, table, id, owner string) error {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1 AND user_id = $2)", table)
	if err := s.db.QueryRowContext(ctx, query, id, owner).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

func oneRowOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// AGGREGATE QUERIES
// ============================================================================

// SumAmount totals amounts for one record kind, optionally restricted to
// [from, to). Nil bounds mean all-time.
func (s *LedgerService) SumAmount(ctx context.Context, owner, kind string, from, to *time.Time) (float64, error) {
	table, ok := kindTables[kind]
	if !ok {
		return 0, fmt.Errorf("unknown record kind %q", kind)
	}

	query := fmt.Sprintf("SELECT COALESCE(SUM(amount), 0) FROM %s WHERE user_id = $1", table)
	args := []interface{}{owner}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date < $%d", len(args))
	}

	var sum float64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// CategoryTotals sums expenses per category for [from, to). Categories with
// no expenses in the range do not appear.
func (s *LedgerService) CategoryTotals(ctx context.Context, owner string, from, to time.Time) ([]models.CategoryStat, error) {
	return queryMany(ctx, s.db, `
		SELECT category, SUM(amount)
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		GROUP BY category
		ORDER BY category
	`, func(rows *sql.Rows) (models.CategoryStat, error) {
		var cs models.CategoryStat
		err := rows.Scan(&cs.Category, &cs.Amount)
		return cs, err
	}, owner, from, to)
}

// ExportRows returns every income followed by every expense of one owner,
// shaped for the CSV/Excel download.
func (s *LedgerService) ExportRows(ctx context.Context, owner string) ([]models.ExportRow, error) {
	incomes, err := queryMany(ctx, s.db, `
		SELECT date, category, amount FROM incomes
		WHERE user_id = $1 ORDER BY date, id
	`, func(rows *sql.Rows) (models.ExportRow, error) {
		r := models.ExportRow{Type: "Income"}
		err := rows.Scan(&r.Date, &r.Category, &r.Amount)
		return r, err
	}, owner)
	if err != nil {
		return nil, err
	}

	expenses, err := queryMany(ctx, s.db, `
		SELECT date, category, amount, COALESCE(comment, '') FROM expenses
		WHERE user_id = $1 ORDER BY date, id
	`, func(rows *sql.Rows) (models.ExportRow, error) {
		r := models.ExportRow{Type: "Expense"}
		err := rows.Scan(&r.Date, &r.Category, &r.Amount, &r.Comment)
		return r, err
	}, owner)
	if err != nil {
		return nil, err
	}

	return append(incomes, expenses...), nil
}

// ============================================================================
// INCOMES
// ============================================================================

func (s *LedgerService) CreateIncome(ctx context.Context, owner string, req models.CreateIncomeRequest) (*models.Income, error) {
	income := &models.Income{
		ID:       uuid.New().String(),
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		UserID:   owner,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO incomes (id, amount, category, date, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`, income.ID, income.Amount, income.Category, income.Date, income.UserID)
	if err != nil {
		return nil, err
	}
	return income, nil
}

func (s *LedgerService) GetIncome(ctx context.Context, id, owner string) (*models.Income, error) {
	return queryOne(ctx, s.db, `
		SELECT id, amount, category, date, user_id FROM incomes
		WHERE id = $1 AND user_id = $2
	`, func(row *sql.Row) (models.Income, error) {
		var in models.Income
		err := row.Scan(&in.ID, &in.Amount, &in.Category, &in.Date, &in.UserID)
		return in, err
	}, id, owner)
}

func (s *LedgerService) ListIncomes(ctx context.Context, owner string, offset, limit int) ([]models.Income, error) {
	return queryMany(ctx, s.db, `
		SELECT id, amount, category, date, user_id FROM incomes
		WHERE user_id = $1 ORDER BY date, id OFFSET $2 LIMIT $3
	`, func(rows *sql.Rows) (models.Income, error) {
		var in models.Income
		err := rows.Scan(&in.ID, &in.Amount, &in.Category, &in.Date, &in.UserID)
		return in, err
	}, owner, offset, limit)
}

func (s *LedgerService) UpdateIncome(ctx context.Context, id, owner string, patch models.IncomePatch) (*models.Income, error) {
	var fields []patchField
	if patch.Amount != nil {
		fields = append(fields, patchField{"amount", *patch.Amount})
	}
	if patch.Category != nil {
		fields = append(fields, patchField{"category", *patch.Category})
	}
	if patch.Date != nil {
		fields = append(fields, patchField{"date", *patch.Date})
	}
	if err := s.patchOwned(ctx, "incomes", id, owner, fields); err != nil {
		return nil, err
	}
	return s.GetIncome(ctx, id, owner)
}

func (s *LedgerService) DeleteIncome(ctx context.Context, id, owner string) error {
	return s.deleteOwned(ctx, "incomes", id, owner)
}

// ============================================================================
// EXPENSES
// ============================================================================

func (s *LedgerService) CreateExpense(ctx context.Context, owner string, req models.CreateExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		ID:       uuid.New().String(),
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Comment:  req.Comment,
		UserID:   owner,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, amount, category, date, comment, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, expense.ID, expense.Amount, expense.Category, expense.Date, expense.Comment, expense.UserID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *LedgerService) GetExpense(ctx context.Context, id, owner string) (*models.Expense, error) {
	return queryOne(ctx, s.db, `
		SELECT id, amount, category, date, COALESCE(comment, ''), user_id FROM expenses
		WHERE id = $1 AND user_id = $2
	`, func(row *sql.Row) (models.Expense, error) {
		var ex models.Expense
		err := row.Scan(&ex.ID, &ex.Amount, &ex.Category, &ex.Date, &ex.Comment, &ex.UserID)
		return ex, err
	}, id, owner)
}

func (s *LedgerService) ListExpenses(ctx context.Context, owner string, offset, limit int) ([]models.Expense, error) {
	return queryMany(ctx, s.db, `
		SELECT id, amount, category, date, COALESCE(comment, ''), user_id FROM expenses
		WHERE user_id = $1 ORDER BY date, id OFFSET $2 LIMIT $3
	`, func(rows *sql.Rows) (models.Expense, error) {
		var ex models.Expense
		err := rows.Scan(&ex.ID, &ex.Amount, &ex.Category, &ex.Date, &ex.Comment, &ex.UserID)
		return ex, err
	}, owner, offset, limit)
}

func (s *LedgerService) UpdateExpense(ctx context.Context, id, owner string, patch models.ExpensePatch) (*models.Expense, error) {
	var fields []patchField
	if patch.Amount != nil {
		fields = append(fields, patchField{"amount", *patch.Amount})
	}
	if patch.Category != nil {
		fields = append(fields, patchField{"category", *patch.Category})
	}
	if patch.Date != nil {
		fields = append(fields, patchField{"date", *patch.Date})
	}
	if patch.Comment != nil {
		fields = append(fields, patchField{"comment", *patch.Comment})
	}
	if err := s.patchOwned(ctx, "expenses", id, owner, fields); err != nil {
		return nil, err
	}
	return s.GetExpense(ctx, id, owner)
}

func (s *LedgerService) DeleteExpense(ctx context.Context, id, owner string) error {
	return s.deleteOwned(ctx, "expenses", id, owner)
}

// ============================================================================
// BUDGETS
// ============================================================================

func (s *LedgerService) CreateBudget(ctx context.Context, owner string, req models.CreateBudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		ID:       uuid.New().String(),
		Category: req.Category,
		Amount:   req.Amount,
		Month:    req.Month,
		Year:     req.Year,
		UserID:   owner,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, category, amount, month, year, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, budget.ID, budget.Category, budget.Amount, budget.Month, budget.Year, budget.UserID)
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *LedgerService) GetBudget(ctx context.Context, id, owner string) (*models.Budget, error) {
	return queryOne(ctx, s.db, `
		SELECT id, category, amount, month, year, user_id FROM budgets
		WHERE id = $1 AND user_id = $2
	`, func(row *sql.Row) (models.Budget, error) {
		var b models.Budget
		err := row.Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.UserID)
		return b, err
	}, id, owner)
}

func (s *LedgerService) ListBudgets(ctx context.Context, owner string) ([]models.Budget, error) {
	return queryMany(ctx, s.db, `
		SELECT id, category, amount, month, year, user_id FROM budgets
		WHERE user_id = $1 ORDER BY year, month, category
	`, func(rows *sql.Rows) (models.Budget, error) {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.UserID)
		return b, err
	}, owner)
}

func (s *LedgerService) UpdateBudget(ctx context.Context, id, owner string, patch models.BudgetPatch) (*models.Budget, error) {
	var fields []patchField
	if patch.Category != nil {
		fields = append(fields, patchField{"category", *patch.Category})
	}
	if patch.Amount != nil {
		fields = append(fields, patchField{"amount", *patch.Amount})
	}
	if patch.Month != nil {
		fields = append(fields, patchField{"month", *patch.Month})
	}
	if patch.Year != nil {
		fields = append(fields, patchField{"year", *patch.Year})
	}
	if err := s.patchOwned(ctx, "budgets", id, owner, fields); err != nil {
		return nil, err
	}
	return s.GetBudget(ctx, id, owner)
}

func (s *LedgerService) DeleteBudget(ctx context.Context, id, owner string) error {
	return s.deleteOwned(ctx, "budgets", id, owner)
}

// ============================================================================
// SAVINGS GOALS
// ============================================================================

func (s *LedgerService) CreateSavingsGoal(ctx context.Context, owner string, req models.CreateSavingsGoalRequest) (*models.SavingsGoal, error) {
	goal := &models.SavingsGoal{
		ID:            uuid.New().String(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
		UserID:        owner,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO savings_goals (id, name, target_amount, current_amount, target_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, goal.ID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate, goal.UserID)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *LedgerService) GetSavingsGoal(ctx context.Context, id, owner string) (*models.SavingsGoal, error) {
	return queryOne(ctx, s.db, `
		SELECT id, name, target_amount, current_amount, target_date, user_id FROM savings_goals
		WHERE id = $1 AND user_id = $2
	`, scanSavingsGoalRow, id, owner)
}

func (s *LedgerService) ListSavingsGoals(ctx context.Context, owner string) ([]models.SavingsGoal, error) {
	return queryMany(ctx, s.db, `
		SELECT id, name, target_amount, current_amount, target_date, user_id FROM savings_goals
		WHERE user_id = $1 ORDER BY name, id
	`, func(rows *sql.Rows) (models.SavingsGoal, error) {
		var g models.SavingsGoal
		var target sql.NullTime
		err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &target, &g.UserID)
		if target.Valid {
			d := models.NewDate(target.Time.Year(), target.Time.Month(), target.Time.Day())
			g.TargetDate = &d
		}
		return g, err
	}, owner)
}

func scanSavingsGoalRow(row *sql.Row) (models.SavingsGoal, error) {
	var g models.SavingsGoal
	var target sql.NullTime
	err := row.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &target, &g.UserID)
	if target.Valid {
		d := models.NewDate(target.Time.Year(), target.Time.Month(), target.Time.Day())
		g.TargetDate = &d
	}
	return g, err
}

func (s *LedgerService) UpdateSavingsGoal(ctx context.Context, id, owner string, patch models.SavingsGoalPatch) (*models.SavingsGoal, error) {
	var fields []patchField
	if patch.Name != nil {
		fields = append(fields, patchField{"name", *patch.Name})
	}
	if patch.TargetAmount != nil {
		fields = append(fields, patchField{"target_amount", *patch.TargetAmount})
	}
	if patch.CurrentAmount != nil {
		fields = append(fields, patchField{"current_amount", *patch.CurrentAmount})
	}
	if patch.TargetDate != nil {
		fields = append(fields, patchField{"target_date", *patch.TargetDate})
	}
	if err := s.patchOwned(ctx, "savings_goals", id, owner, fields); err != nil {
		return nil, err
	}
	return s.GetSavingsGoal(ctx, id, owner)
}

func (s *LedgerService) DeleteSavingsGoal(ctx context.Context, id, owner string) error {
	return s.deleteOwned(ctx, "savings_goals", id, owner)
}
