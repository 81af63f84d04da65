package services

import (
	"context"
	"fmt"
	"time"

	"finance-api/models"
)

// LedgerReader is the slice of the ledger the aggregator needs.
type LedgerReader interface {
	SumAmount(ctx context.Context, owner, kind string, from, to *time.Time) (float64, error)
	CategoryTotals(ctx context.Context, owner string, from, to time.Time) ([]models.CategoryStat, error)
}

// DashboardService computes a user's financial snapshot. It holds no state
// and caches nothing; every call recomputes from the ledger.
type DashboardService struct {
	ledger LedgerReader

	// now is swapped out in tests to pin the current month.
	now func() time.Time
}

func NewDashboardService(ledger LedgerReader) *DashboardService {
	return &DashboardService{ledger: ledger, now: time.Now}
}

// Stats builds the dashboard snapshot for one owner.
func (s *DashboardService) Stats(ctx context.Context, owner string) (*models.DashboardStats, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	totalIncome, err := s.ledger.SumAmount(ctx, owner, models.KindIncome, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("total income: %w", err)
	}
	totalExpenses, err := s.ledger.SumAmount(ctx, owner, models.KindExpense, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("total expenses: %w", err)
	}

	monthlyIncome, err := s.ledger.SumAmount(ctx, owner, models.KindIncome, &monthStart, &nextMonth)
	if err != nil {
		return nil, fmt.Errorf("monthly income: %w", err)
	}
	monthlyExpenses, err := s.ledger.SumAmount(ctx, owner, models.KindExpense, &monthStart, &nextMonth)
	if err != nil {
		return nil, fmt.Errorf("monthly expenses: %w", err)
	}

	categoryStats, err := s.ledger.CategoryTotals(ctx, owner, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	if categoryStats == nil {
		categoryStats = []models.CategoryStat{}
	}

	// Six points, oldest first. AddDate on a first-of-month value keeps the
	// month arithmetic exact across year boundaries.
	evolution := make([]models.MonthlyPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		start := monthStart.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		income, err := s.ledger.SumAmount(ctx, owner, models.KindIncome, &start, &end)
		if err != nil {
			return nil, fmt.Errorf("evolution income %s: %w", start.Format("2006-01"), err)
		}
		expenses, err := s.ledger.SumAmount(ctx, owner, models.KindExpense, &start, &end)
		if err != nil {
			return nil, fmt.Errorf("evolution expenses %s: %w", start.Format("2006-01"), err)
		}

		evolution = append(evolution, models.MonthlyPoint{
			Month:    fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month())),
			Income:   income,
			Expenses: expenses,
		})
	}

	return &models.DashboardStats{
		Balance:          totalIncome - totalExpenses,
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		MonthlyIncome:    monthlyIncome,
		MonthlyExpenses:  monthlyExpenses,
		CategoryStats:    categoryStats,
		MonthlyEvolution: evolution,
		HealthStatus:     healthStatus(monthlyIncome, monthlyExpenses),
	}, nil
}

// healthStatus buckets the current month's savings rate
// ((income - expenses) / income * 100). A month with no spending is always
// "excellent". A month with spending but zero recorded income keeps the rate
// at its zero default and lands in the "average" bucket; that quirk is load
// bearing and covered by tests, do not "fix" it here.
func healthStatus(income, expenses float64) string {
	if expenses == 0 {
		return "excellent"
	}

	var rate float64
	if income > 0 {
		rate = (income - expenses) / income * 100
	}

	switch {
	case rate >= 20:
		return "excellent"
	case rate >= 10:
		return "good"
	case rate >= 0:
		return "average"
	default:
		return "critical"
	}
}
