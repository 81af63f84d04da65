package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"finance-api/models"
	"finance-api/utils"

	"github.com/google/uuid"
)

// IdentityService registers and authenticates users.
type IdentityService struct {
	db *sql.DB
}

func NewIdentityService(db *sql.DB) *IdentityService {
	return &IdentityService{db: db}
}

// Register creates a new user. The duplicate check and insert share a
// transaction so a failed registration leaves nothing behind.
func (s *IdentityService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(email),
		FullName:  fullName,
		CreatedAt: time.Now(),
	}

	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", user.Email,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailTaken
		}

		var fullNameArg interface{}
		if fullName != "" {
			fullNameArg = fullName
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (id, email, password_hash, full_name, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, user.ID, user.Email, passwordHash, fullNameArg, user.CreatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks the email/password pair and returns the matching
// user. Unknown email and wrong password are indistinguishable.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	var passwordHash string
	var fullName sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, full_name, created_at
		FROM users WHERE email = $1
	`, strings.ToLower(email)).Scan(&user.ID, &user.Email, &passwordHash, &fullName, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(password, passwordHash) {
		return nil, ErrInvalidCredentials
	}

	user.FullName = fullName.String
	return &user, nil
}

// GetUser resolves a user id, typically the subject of a bearer token.
func (s *IdentityService) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	var fullName sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, created_at FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &fullName, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	user.FullName = fullName.String
	return &user, nil
}
