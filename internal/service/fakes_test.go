package service

import (
	"errors"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

type fakeUsers struct {
	users map[int64]*domain.User
	err   error
}

func (f *fakeUsers) GetByID(accountID, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok || u.AccountID != accountID {
		return nil, nil
	}
	return u, nil
}

type fakeAssessments struct {
	saved []domain.Assessment
	err   error
}

func (f *fakeAssessments) Create(a *domain.Assessment) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, *a)
	return nil
}

func (f *fakeAssessments) ListByUserID(userID int64) ([]domain.Assessment, error) {
	var out []domain.Assessment
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].UserID == userID {
			out = append(out, f.saved[i])
		}
	}
	return out, nil
}

type fakeMetrics struct {
	rows []domain.UserMetric
	err  error
}

func (f *fakeMetrics) Create(m *domain.UserMetric) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	m.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *m)
	return m.ID, nil
}

func (f *fakeMetrics) GetByUserID(userID int64) ([]domain.UserMetric, error) {
	var out []domain.UserMetric
	for _, m := range f.rows {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMetrics) LatestByUserID(userID int64) (*domain.UserMetric, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			m := f.rows[i]
			return &m, nil
		}
	}
	return nil, nil
}

var errStore = errors.New("store unavailable")
