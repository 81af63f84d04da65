package models

// ============================================================================
// DASHBOARD
// ============================================================================

type CategoryStat struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MonthlyPoint is one month of the six-month evolution series.
// Month is formatted as "YYYY-MM".
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type DashboardStats struct {
	Balance          float64        `json:"balance"`
	TotalIncome      float64        `json:"total_income"`
	TotalExpenses    float64        `json:"total_expenses"`
	MonthlyIncome    float64        `json:"monthly_income"`
	MonthlyExpenses  float64        `json:"monthly_expenses"`
	CategoryStats    []CategoryStat `json:"category_stats"`
	MonthlyEvolution []MonthlyPoint `json:"monthly_evolution"`
	HealthStatus     string         `json:"health_status"`
}
