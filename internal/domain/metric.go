package domain

import "time"

type UserMetric struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Date       string    `json:"date"`
	Weight     float64   `json:"weight"`
	Height     float64   `json:"height"`
	BMI        float64   `json:"bmi"`
	WeightDiff *float64  `json:"weight_diff"`
	BodyMetric Category  `json:"body_metric"`
	CreatedAt  time.Time `json:"created_at"`
}

// MetricRequest is a weight log entry. Height falls back to the user's
// profile height when omitted.
type MetricRequest struct {
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Weight float64  `json:"weight" validate:"gt=0"`
	Height *float64 `json:"height" validate:"omitempty,gt=0"`
}
