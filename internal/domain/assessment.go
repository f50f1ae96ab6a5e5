package domain

import "time"

// ScaleExplanations holds the readable meaning of the 0-3 survey scales.
type ScaleExplanations struct {
	FCVC string `json:"FCVC"`
	FAF  string `json:"FAF"`
	TUE  string `json:"TUE"`
}

type Assessment struct {
	ID              string            `json:"id"`
	UserID          int64             `json:"user_id,omitempty"`
	Input           InputRecord       `json:"input"`
	BMI             float64           `json:"bmi"`
	Category        Category          `json:"category"`
	ModelPrediction string            `json:"model_prediction,omitempty"`
	ModelAgrees     *bool             `json:"model_agrees,omitempty"`
	Explanations    ScaleExplanations `json:"explanations"`
	Advice          []string          `json:"advice"`
	CreatedAt       time.Time         `json:"created_at"`
}
