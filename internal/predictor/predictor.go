// Package predictor is the boundary to the trained obesity model. Its labels
// are informational only; the category shown to users always comes from the
// BMI classifier.
package predictor

import (
	"context"
	"strings"
	"time"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

type Predictor interface {
	Predict(ctx context.Context, in domain.InputRecord) (string, error)
	Name() string
}

// New returns an HTTP predictor for baseURL, or Noop when baseURL is empty.
func New(baseURL string, timeout time.Duration) Predictor {
	if strings.TrimSpace(baseURL) == "" {
		return Noop{}
	}
	return NewHTTPPredictor(baseURL, timeout)
}

// Noop is used when no model server is configured.
type Noop struct{}

func (Noop) Predict(context.Context, domain.InputRecord) (string, error) { return "", nil }
func (Noop) Name() string                                              { return "noop" }

// Static always predicts Label.
type Static struct {
	Label string
	Err   error
}

func (s Static) Predict(context.Context, domain.InputRecord) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Label, nil
}

func (s Static) Name() string { return "static" }

// The model was trained on the dataset's own class names, which are coarser
// than the BMI tiers for underweight and finer for overweight.
var datasetLabels = map[string][]domain.Category{
	"Insufficient_Weight": {domain.SeverelyUnderweight, domain.Underweight},
	"Normal_Weight":       {domain.NormalWeight},
	"Overweight_Level_I":  {domain.Overweight},
	"Overweight_Level_II": {domain.Overweight},
	"Obesity_Type_I":      {domain.ObesityI},
	"Obesity_Type_II":     {domain.ObesityII},
	"Obesity_Type_III":    {domain.ObesityIII},
}

// Agrees compares a model label with the BMI category. known is false when
// the label is empty or not recognised.
func Agrees(label string, c domain.Category) (agrees, known bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return false, false
	}
	if cats, ok := datasetLabels[label]; ok {
		for _, candidate := range cats {
			if candidate == c {
				return true, true
			}
		}
		return false, true
	}
	parsed := domain.Category(strings.ReplaceAll(label, "_", " "))
	if !parsed.Valid() {
		return false, false
	}
	return parsed == c, true
}
