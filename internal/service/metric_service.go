package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yusufkecer/obesity-advisor/internal/classifier"
	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

type MetricStore interface {
	Create(m *domain.UserMetric) (int64, error)
	GetByUserID(userID int64) ([]domain.UserMetric, error)
	LatestByUserID(userID int64) (*domain.UserMetric, error)
}

// MetricService keeps the weight log. BMI and body metric are derived on
// the server; clients only send date, weight and optionally height.
type MetricService struct {
	metrics  MetricStore
	users    UserLookup
	validate *validator.Validate
	now      func() time.Time
}

func NewMetricService(metrics MetricStore, users UserLookup) *MetricService {
	return &MetricService{
		metrics:  metrics,
		users:    users,
		validate: NewValidator(),
		now:      time.Now,
	}
}

func (s *MetricService) Record(accountID, userID int64, req domain.MetricRequest) (*domain.UserMetric, error) {
	if err := Check(s.validate, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(accountID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var height float64
	switch {
	case req.Height != nil:
		height = *req.Height
	case user.Height != nil:
		height = *user.Height
	default:
		return nil, ErrHeightRequired
	}

	bmi, category, err := classifier.Classify(height, req.Weight)
	if err != nil {
		return nil, err
	}

	m := &domain.UserMetric{
		UserID:     userID,
		Date:       req.Date,
		Weight:     req.Weight,
		Height:     height,
		BMI:        bmi,
		BodyMetric: category,
		CreatedAt:  s.now().UTC(),
	}

	prev, err := s.metrics.LatestByUserID(userID)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		diff := req.Weight - prev.Weight
		m.WeightDiff = &diff
	}

	id, err := s.metrics.Create(m)
	if err != nil {
		return nil, fmt.Errorf("failed to record metric: %w", err)
	}
	m.ID = id
	return m, nil
}

func (s *MetricService) List(accountID, userID int64) ([]domain.UserMetric, error) {
	user, err := s.users.GetByID(accountID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	metrics, err := s.metrics.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = []domain.UserMetric{}
	}
	return metrics, nil
}
