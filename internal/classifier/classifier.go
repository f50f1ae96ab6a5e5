// Package classifier assigns a body-weight category from height and weight
// using fixed BMI thresholds.
package classifier

import (
	"fmt"
	"math"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

// DomainError reports a measurement for which BMI is undefined.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s must be a positive finite number, got %v", e.Field, e.Value)
}

// Upper bounds are exclusive, so a BMI on a boundary belongs to the next tier.
var thresholds = []struct {
	below    float64
	category domain.Category
}{
	{16, domain.SeverelyUnderweight},
	{18.5, domain.Underweight},
	{25, domain.NormalWeight},
	{30, domain.Overweight},
	{35, domain.ObesityI},
	{40, domain.ObesityII},
}

// BMI returns weight / height² with height in centimeters and weight in kilograms.
func BMI(heightCm, weightKg float64) (float64, error) {
	if !positiveFinite(heightCm) {
		return 0, &DomainError{Field: "height", Value: heightCm}
	}
	if !positiveFinite(weightKg) {
		return 0, &DomainError{Field: "weight", Value: weightKg}
	}
	h := heightCm / 100
	return weightKg / (h * h), nil
}

// CategoryForBMI maps a BMI onto its tier. The first matching threshold wins.
func CategoryForBMI(bmi float64) domain.Category {
	for _, t := range thresholds {
		if bmi < t.below {
			return t.category
		}
	}
	return domain.ObesityIII
}

// Classify computes the BMI and its category.
func Classify(heightCm, weightKg float64) (float64, domain.Category, error) {
	bmi, err := BMI(heightCm, weightKg)
	if err != nil {
		return 0, "", err
	}
	return bmi, CategoryForBMI(bmi), nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
