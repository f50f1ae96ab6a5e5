package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

const userColumns = `id, account_id, name, surname, gender, avatar, height, birth_of_date, created_at, updated_at`

// Updatable user columns, keyed by their JSON name.
var userUpdatable = map[string]string{
	"name":        "name",
	"surname":     "surname",
	"gender":      "gender",
	"avatar":      "avatar",
	"height":      "height",
	"birthOfDate": "birth_of_date",
}

// UserRepository scopes every query to the owning account.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(accountID int64, u *domain.User) (int64, error) {
	result, err := r.db.Exec(
		`INSERT INTO users (account_id, name, surname, gender, avatar, height, birth_of_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		accountID, u.Name, u.Surname, u.Gender, u.Avatar, u.Height, u.BirthOfDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return result.LastInsertId()
}

// GetByID returns nil, nil when the user does not exist or belongs to another account.
func (r *UserRepository) GetByID(accountID, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE id = ? AND account_id = ?`, id, accountID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetAll(accountID int64) ([]domain.User, error) {
	rows, err := r.db.Query(
		`SELECT `+userColumns+` FROM users WHERE account_id = ? ORDER BY id ASC`, accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Update applies the known fields and ignores the rest. It reports whether a
// row owned by the account matched.
func (r *UserRepository) Update(accountID, id int64, fields map[string]interface{}) (bool, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := userUpdatable[k]; ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return false, nil
	}
	sort.Strings(keys)

	setClauses := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)+2)
	for _, k := range keys {
		setClauses = append(setClauses, userUpdatable[k]+" = ?")
		args = append(args, fields[k])
	}
	args = append(args, id, accountID)

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") + " WHERE id = ? AND account_id = ?"
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var gender sql.NullString
	if err := row.Scan(&u.ID, &u.AccountID, &u.Name, &u.Surname, &gender, &u.Avatar, &u.Height, &u.BirthOfDate, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if gender.Valid {
		g := domain.Gender(gender.String)
		u.Gender = &g
	}
	return &u, nil
}
