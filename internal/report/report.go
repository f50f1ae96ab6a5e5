// Package report renders an assessment as plain text for terminals.
package report

import (
	"fmt"
	"strings"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

func Text(a *domain.Assessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Obesity category: %s\n", a.Category)
	fmt.Fprintf(&sb, "BMI: %.2f\n", a.BMI)
	if a.ModelPrediction != "" {
		fmt.Fprintf(&sb, "Model prediction: %s\n", a.ModelPrediction)
	}

	sb.WriteString("\nInput explanation:\n")
	fmt.Fprintf(&sb, "- Frequency of vegetable consumption: %s\n", a.Explanations.FCVC)
	fmt.Fprintf(&sb, "- Physical activity frequency: %s\n", a.Explanations.FAF)
	fmt.Fprintf(&sb, "- Time using technology: %s\n", a.Explanations.TUE)
	fmt.Fprintf(&sb, "- Daily water intake: %.1f liters\n", a.Input.CH2O)

	sb.WriteString("\nPersonalized advice:\n")
	for _, line := range a.Advice {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
