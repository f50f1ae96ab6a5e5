package handler

import (
	"sort"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
	"github.com/yusufkecer/obesity-advisor/internal/repository"
)

type memAccounts struct {
	mu   sync.Mutex
	byID map[string]*repository.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: map[string]*repository.Account{}}
}

func (m *memAccounts) Create(email, passwordHash string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[email]; ok {
		return 0, &mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry"}
	}
	id := int64(len(m.byID) + 1)
	m.byID[email] = &repository.Account{ID: id, Email: email, PasswordHash: passwordHash}
	return id, nil
}

func (m *memAccounts) GetByEmail(email string) (*repository.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[email], nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[int64]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[int64]*domain.User{}}
}

func (m *memUsers) Create(accountID int64, u *domain.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := int64(len(m.users) + 1)
	stored := *u
	stored.ID = id
	stored.AccountID = accountID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.users[id] = &stored
	return id, nil
}

func (m *memUsers) GetByID(accountID, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.AccountID != accountID {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetAll(accountID int64) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, u := range m.users {
		if u.AccountID == accountID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUsers) Update(accountID, id int64, fields map[string]interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.AccountID != accountID {
		return false, nil
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = &v
	}
	if v, ok := fields["height"].(float64); ok {
		u.Height = &v
	}
	return true, nil
}

type memAssessments struct {
	mu    sync.Mutex
	saved []domain.Assessment
}

func (m *memAssessments) Create(a *domain.Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, *a)
	return nil
}

func (m *memAssessments) ListByUserID(userID int64) ([]domain.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Assessment
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].UserID == userID {
			out = append(out, m.saved[i])
		}
	}
	return out, nil
}

type memMetrics struct {
	mu   sync.Mutex
	rows []domain.UserMetric
}

func (m *memMetrics) Create(metric *domain.UserMetric) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	metric.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *metric)
	return metric.ID, nil
}

func (m *memMetrics) GetByUserID(userID int64) ([]domain.UserMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.UserMetric
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memMetrics) LatestByUserID(userID int64) (*domain.UserMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].UserID == userID {
			r := m.rows[i]
			return &r, nil
		}
	}
	return nil, nil
}
