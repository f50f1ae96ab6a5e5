package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yusufkecer/obesity-advisor/internal/advice"
	"github.com/yusufkecer/obesity-advisor/internal/classifier"
	"github.com/yusufkecer/obesity-advisor/internal/domain"
	"github.com/yusufkecer/obesity-advisor/internal/predictor"
	"github.com/yusufkecer/obesity-advisor/internal/scale"
	"github.com/yusufkecer/obesity-advisor/internal/telemetry"
)

type AssessmentStore interface {
	Create(a *domain.Assessment) error
	ListByUserID(userID int64) ([]domain.Assessment, error)
}

type UserLookup interface {
	GetByID(accountID, id int64) (*domain.User, error)
}

type AssessmentService struct {
	predictor predictor.Predictor
	telemetry *telemetry.Telemetry
	store     AssessmentStore
	users     UserLookup
	validate  *validator.Validate
	now       func() time.Time
}

// NewAssessmentService wires the pipeline. store and users may be nil when
// only stateless assessments are needed.
func NewAssessmentService(
	p predictor.Predictor,
	t *telemetry.Telemetry,
	store AssessmentStore,
	users UserLookup,
) *AssessmentService {
	if p == nil {
		p = predictor.Noop{}
	}
	if t == nil {
		t = telemetry.New()
	}
	return &AssessmentService{
		predictor: p,
		telemetry: t,
		store:     store,
		users:     users,
		validate:  NewValidator(),
		now:       time.Now,
	}
}

// Assess validates the answers, consults the model, and derives the category
// from BMI. The model label is kept for comparison but never decides the category.
func (s *AssessmentService) Assess(ctx context.Context, in domain.InputRecord) (*domain.Assessment, error) {
	if err := Check(s.validate, in); err != nil {
		return nil, err
	}

	label, err := s.predictor.Predict(ctx, in)
	if err != nil {
		log.Printf("[assessment] %s predictor failed: %v", s.predictor.Name(), err)
		s.telemetry.RecordPredictorFailure()
		label = ""
	}

	bmi, category, err := classifier.Classify(in.Height, in.Weight)
	if err != nil {
		return nil, err
	}

	a := &domain.Assessment{
		ID:              uuid.NewString(),
		Input:           in,
		BMI:             bmi,
		Category:        category,
		ModelPrediction: label,
		Explanations:    scale.ExplainAll(in),
		Advice:          advice.Advise(category, in),
		CreatedAt:       s.now().UTC(),
	}
	if agrees, known := predictor.Agrees(label, category); known {
		a.ModelAgrees = &agrees
		if !agrees {
			log.Printf("[assessment] model predicted %q, bmi %.2f classified as %q", label, bmi, category)
		}
	}

	s.telemetry.RecordAssessment(a)
	return a, nil
}

// AssessForUser runs Assess and stores the result under the user.
func (s *AssessmentService) AssessForUser(ctx context.Context, accountID, userID int64, in domain.InputRecord) (*domain.Assessment, error) {
	if err := s.ensureUser(accountID, userID); err != nil {
		return nil, err
	}

	a, err := s.Assess(ctx, in)
	if err != nil {
		return nil, err
	}
	a.UserID = userID

	if err := s.store.Create(a); err != nil {
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}
	return a, nil
}

// History lists a user's stored assessments, newest first.
func (s *AssessmentService) History(accountID, userID int64) ([]domain.Assessment, error) {
	if err := s.ensureUser(accountID, userID); err != nil {
		return nil, err
	}
	list, err := s.store.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	if list == nil {
		list = []domain.Assessment{}
	}
	return list, nil
}

func (s *AssessmentService) Stats() telemetry.Snapshot {
	return s.telemetry.Snapshot()
}

func (s *AssessmentService) ensureUser(accountID, userID int64) error {
	if s.store == nil || s.users == nil {
		return fmt.Errorf("assessment storage is not configured")
	}
	user, err := s.users.GetByID(accountID, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
