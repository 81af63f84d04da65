package routes

import (
	"database/sql"

	"finance-api/handlers"
	"finance-api/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := handlers.NewAuthHandler(services.NewIdentityService(db))

	rg.POST("/register", authHandler.Register)
	rg.POST("/token", authHandler.Token)
}

// SetupProtectedRoutes sets up every route behind the auth middleware.
func SetupProtectedRoutes(rg *gin.RouterGroup, db *sql.DB) {
	ledger := services.NewLedgerService(db)

	authHandler := handlers.NewAuthHandler(services.NewIdentityService(db))
	rg.GET("/users/me", authHandler.Me)

	incomeHandler := handlers.NewIncomeHandler(ledger)
	rg.POST("/incomes", incomeHandler.Create)
	rg.GET("/incomes", incomeHandler.List)
	rg.GET("/incomes/:id", incomeHandler.Get)
	rg.PUT("/incomes/:id", incomeHandler.Update)
	rg.DELETE("/incomes/:id", incomeHandler.Delete)

	expenseHandler := handlers.NewExpenseHandler(ledger)
	rg.POST("/expenses", expenseHandler.Create)
	rg.GET("/expenses", expenseHandler.List)
	rg.GET("/expenses/:id", expenseHandler.Get)
	rg.PUT("/expenses/:id", expenseHandler.Update)
	rg.DELETE("/expenses/:id", expenseHandler.Delete)

	budgetHandler := handlers.NewBudgetHandler(ledger)
	rg.POST("/budgets", budgetHandler.Create)
	rg.GET("/budgets", budgetHandler.List)
	rg.PUT("/budgets/:id", budgetHandler.Update)
	rg.DELETE("/budgets/:id", budgetHandler.Delete)

	goalHandler := handlers.NewSavingsGoalHandler(ledger)
	rg.POST("/savings-goals", goalHandler.Create)
	rg.GET("/savings-goals", goalHandler.List)
	rg.PUT("/savings-goals/:id", goalHandler.Update)
	rg.DELETE("/savings-goals/:id", goalHandler.Delete)

	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(ledger))
	rg.GET("/dashboard", dashboardHandler.Get)

	exportHandler := handlers.NewExportHandler(ledger)
	rg.GET("/export/csv", exportHandler.CSV)
	rg.GET("/export/excel", exportHandler.Excel)
}
