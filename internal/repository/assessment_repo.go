package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

type AssessmentRepository struct {
	db *sql.DB
}

func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) Create(a *domain.Assessment) error {
	input, err := json.Marshal(a.Input)
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}
	explanations, err := json.Marshal(a.Explanations)
	if err != nil {
		return fmt.Errorf("failed to encode explanations: %w", err)
	}
	adviceJSON, err := json.Marshal(a.Advice)
	if err != nil {
		return fmt.Errorf("failed to encode advice: %w", err)
	}

	var agrees sql.NullBool
	if a.ModelAgrees != nil {
		agrees = sql.NullBool{Bool: *a.ModelAgrees, Valid: true}
	}
	var prediction sql.NullString
	if a.ModelPrediction != "" {
		prediction = sql.NullString{String: a.ModelPrediction, Valid: true}
	}

	_, err = r.db.Exec(
		`INSERT INTO assessments (id, user_id, input, bmi, category, model_prediction, model_agrees, explanations, advice, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, string(input), a.BMI, string(a.Category), prediction, agrees,
		string(explanations), string(adviceJSON), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

func (r *AssessmentRepository) ListByUserID(userID int64) ([]domain.Assessment, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, input, bmi, category, model_prediction, model_agrees, explanations, advice, created_at
		 FROM assessments
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var list []domain.Assessment
	for rows.Next() {
		var (
			a                           domain.Assessment
			category                    string
			prediction                  sql.NullString
			agrees                      sql.NullBool
			input, explanations, advice []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &input, &a.BMI, &category, &prediction, &agrees, &explanations, &advice, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		a.Category = domain.Category(category)
		a.ModelPrediction = prediction.String
		if agrees.Valid {
			v := agrees.Bool
			a.ModelAgrees = &v
		}
		if err := json.Unmarshal(input, &a.Input); err != nil {
			return nil, fmt.Errorf("failed to decode input of %s: %w", a.ID, err)
		}
		if err := json.Unmarshal(explanations, &a.Explanations); err != nil {
			return nil, fmt.Errorf("failed to decode explanations of %s: %w", a.ID, err)
		}
		if err := json.Unmarshal(advice, &a.Advice); err != nil {
			return nil, fmt.Errorf("failed to decode advice of %s: %w", a.ID, err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
