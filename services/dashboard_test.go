package services

import (
	"context"
	"testing"
	"time"

	"finance-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLedger is an in-memory LedgerReader for aggregator tests.
type memLedger struct {
	incomes  []memEntry
	expenses []memEntry
}

type memEntry struct {
	owner    string
	amount   float64
	category string
	date     time.Time
}

func (m *memLedger) SumAmount(_ context.Context, owner, kind string, from, to *time.Time) (float64, error) {
	var sum float64
	for _, e := range m.entries(kind) {
		if e.owner != owner {
			continue
		}
		if from != nil && e.date.Before(*from) {
			continue
		}
		if to != nil && !e.date.Before(*to) {
			continue
		}
		sum += e.amount
	}
	return sum, nil
}

func (m *memLedger) CategoryTotals(_ context.Context, owner string, from, to time.Time) ([]models.CategoryStat, error) {
	totals := map[string]float64{}
	var order []string
	for _, e := range m.expenses {
		if e.owner != owner || e.date.Before(from) || !e.date.Before(to) {
			continue
		}
		if _, seen := totals[e.category]; !seen {
			order = append(order, e.category)
		}
		totals[e.category] += e.amount
	}
	var out []models.CategoryStat
	for _, cat := range order {
		out = append(out, models.CategoryStat{Category: cat, Amount: totals[cat]})
	}
	return out, nil
}

func (m *memLedger) entries(kind string) []memEntry {
	if kind == models.KindIncome {
		return m.incomes
	}
	return m.expenses
}

func day(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func newTestDashboard(ledger *memLedger, now time.Time) *DashboardService {
	s := NewDashboardService(ledger)
	s.now = func() time.Time { return now }
	return s
}

func TestStatsEmptyUser(t *testing.T) {
	s := newTestDashboard(&memLedger{}, day(2024, time.June, 15))

	stats, err := s.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalIncome)
	assert.Zero(t, stats.TotalExpenses)
	assert.Zero(t, stats.Balance)
	assert.Zero(t, stats.MonthlyIncome)
	assert.Zero(t, stats.MonthlyExpenses)
	assert.Equal(t, []models.CategoryStat{}, stats.CategoryStats)
	assert.Len(t, stats.MonthlyEvolution, 6)
	assert.Equal(t, "excellent", stats.HealthStatus)
}

func TestStatsSingleMonth(t *testing.T) {
	ledger := &memLedger{
		incomes: []memEntry{
			{owner: "user-1", amount: 1000, category: "Salary", date: day(2024, time.June, 1)},
		},
		expenses: []memEntry{
			{owner: "user-1", amount: 100, category: "Food", date: day(2024, time.June, 10)},
		},
	}
	s := newTestDashboard(ledger, day(2024, time.June, 15))

	stats, err := s.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, stats.MonthlyIncome)
	assert.Equal(t, 100.0, stats.MonthlyExpenses)
	assert.Equal(t, 900.0, stats.Balance)
	// savings rate 90 percent
	assert.Equal(t, "excellent", stats.HealthStatus)
	assert.Equal(t, []models.CategoryStat{{Category: "Food", Amount: 100}}, stats.CategoryStats)
}

func TestStatsTotalsSpanAllTime(t *testing.T) {
	ledger := &memLedger{
		incomes: []memEntry{
			{owner: "user-1", amount: 500, category: "Salary", date: day(2020, time.January, 1)},
			{owner: "user-1", amount: 1000, category: "Salary", date: day(2024, time.June, 1)},
		},
		expenses: []memEntry{
			{owner: "user-1", amount: 200, category: "Rent", date: day(2021, time.March, 5)},
		},
	}
	s := newTestDashboard(ledger, day(2024, time.June, 15))

	stats, err := s.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1500.0, stats.TotalIncome)
	assert.Equal(t, 200.0, stats.TotalExpenses)
	assert.Equal(t, 1300.0, stats.Balance)
	assert.Equal(t, 1000.0, stats.MonthlyIncome)
	assert.Zero(t, stats.MonthlyExpenses)
	// old expenses don't show up in the current month's categories
	assert.Empty(t, stats.CategoryStats)
}

func TestStatsIgnoresOtherOwners(t *testing.T) {
	ledger := &memLedger{
		incomes: []memEntry{
			{owner: "user-2", amount: 9999, category: "Salary", date: day(2024, time.June, 1)},
		},
		expenses: []memEntry{
			{owner: "user-2", amount: 9999, category: "Rent", date: day(2024, time.June, 1)},
		},
	}
	s := newTestDashboard(ledger, day(2024, time.June, 15))

	stats, err := s.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalIncome)
	assert.Zero(t, stats.TotalExpenses)
	assert.Empty(t, stats.CategoryStats)
}

func TestStatsEvolutionWrapsYear(t *testing.T) {
	ledger := &memLedger{
		incomes: []memEntry{
			{owner: "user-1", amount: 300, category: "Salary", date: day(2023, time.August, 20)},
			{owner: "user-1", amount: 700, category: "Salary", date: day(2024, time.January, 5)},
		},
		expenses: []memEntry{
			{owner: "user-1", amount: 50, category: "Food", date: day(2023, time.December, 24)},
		},
	}
	s := newTestDashboard(ledger, day(2024, time.January, 15))

	stats, err := s.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, stats.MonthlyEvolution, 6)
	labels := make([]string, 6)
	for i, p := range stats.MonthlyEvolution {
		labels[i] = p.Month
	}
	assert.Equal(t, []string{"2023-08", "2023-09", "2023-10", "2023-11", "2023-12", "2024-01"}, labels)

	assert.Equal(t, 300.0, stats.MonthlyEvolution[0].Income)
	assert.Equal(t, 50.0, stats.MonthlyEvolution[4].Expenses)
	assert.Equal(t, 700.0, stats.MonthlyEvolution[5].Income)
}

func TestStatsIdempotent(t *testing.T) {
	ledger := &memLedger{
		incomes: []memEntry{
			{owner: "user-1", amount: 1200, category: "Salary", date: day(2024, time.June, 1)},
		},
		expenses: []memEntry{
			{owner: "user-1", amount: 400, category: "Rent", date: day(2024, time.June, 2)},
			{owner: "user-1", amount: 80, category: "Food", date: day(2024, time.June, 3)},
		},
	}
	s := newTestDashboard(ledger, day(2024, time.June, 15))

	first, err := s.Stats(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := s.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHealthStatus(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expenses float64
		want     string
	}{
		{"no spending", 0, 0, "excellent"},
		{"no spending with income", 5000, 0, "excellent"},
		{"rate 90", 1000, 100, "excellent"},
		{"rate exactly 20", 1000, 800, "excellent"},
		{"rate 15", 1000, 850, "good"},
		{"rate exactly 10", 1000, 900, "good"},
		{"rate 5", 1000, 950, "average"},
		{"rate zero", 1000, 1000, "average"},
		{"overspent", 1000, 1200, "critical"},
		// no income with spending keeps the zero-rate default
		{"spending without income", 0, 300, "average"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, healthStatus(tt.income, tt.expenses))
		})
	}
}
