package scale

import "github.com/yusufkecer/obesity-advisor/internal/domain"

const (
	FCVC = "FCVC"
	FAF  = "FAF"
	TUE  = "TUE"

	Unknown = "Unknown"
)

var explanations = map[string]map[int]string{
	FCVC: {
		0: "Never (do not consume vegetables)",
		1: "Sometimes",
		2: "Often",
		3: "Always",
	},
	FAF: {
		0: "Never (no physical activity)",
		1: "Rarely",
		2: "Sometimes",
		3: "Always",
	},
	TUE: {
		0: "0-1 hour using technology",
		1: "1-2 hours",
		2: "2-3 hours",
		3: "More than 3 hours",
	},
}

// Explain returns the readable meaning of a 0-3 survey answer, or Unknown.
func Explain(param string, value int) string {
	if text, ok := explanations[param][value]; ok {
		return text
	}
	return Unknown
}

func ExplainAll(in domain.InputRecord) domain.ScaleExplanations {
	return domain.ScaleExplanations{
		FCVC: Explain(FCVC, in.FCVC),
		FAF:  Explain(FAF, in.FAF),
		TUE:  Explain(TUE, in.TUE),
	}
}
