package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type Account struct {
	ID           int64
	Email        string
	PasswordHash string
}

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(email, passwordHash string) (int64, error) {
	result, err := r.db.Exec(
		`INSERT INTO accounts (email, password_hash) VALUES (?, ?)`,
		normalizeEmail(email),
		passwordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}
	return result.LastInsertId()
}

// GetByEmail returns nil, nil when no account matches.
func (r *AccountRepository) GetByEmail(email string) (*Account, error) {
	var account Account
	err := r.db.QueryRow(
		`SELECT id, email, password_hash FROM accounts WHERE email = ?`,
		normalizeEmail(email),
	).Scan(&account.ID, &account.Email, &account.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
