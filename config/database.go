package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			full_name VARCHAR(255),
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS incomes (
			id UUID PRIMARY KEY,
			amount DOUBLE PRECISION NOT NULL,
			category VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			amount DOUBLE PRECISION NOT NULL,
			category VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			comment TEXT,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS budgets (
			id UUID PRIMARY KEY,
			category VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INTEGER NOT NULL,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS savings_goals (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			target_amount DOUBLE PRECISION NOT NULL,
			current_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			target_date DATE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_incomes_user_id ON incomes(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_incomes_user_date ON incomes(user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses(user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_savings_goals_user_id ON savings_goals(user_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
