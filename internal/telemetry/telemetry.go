package telemetry

import (
	"math"

	gometrics "github.com/rcrowley/go-metrics"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

const (
	MetricAssessments        = "assessments"
	MetricPredictorFailures  = "predictor.failures"
	MetricModelAgreements    = "model.agreements"
	MetricModelDisagreements = "model.disagreements"
	MetricBMI                = "bmi.centi"

	reservoirSize = 1028
)

// Telemetry counts assessments and how often the model agrees with the
// BMI classifier.
type Telemetry struct {
	registry           gometrics.Registry
	assessments        gometrics.Counter
	predictorFailures  gometrics.Counter
	modelAgreements    gometrics.Counter
	modelDisagreements gometrics.Counter
	bmi                gometrics.Histogram
	categories         map[domain.Category]gometrics.Counter
}

type Snapshot struct {
	Assessments        int64            `json:"assessments"`
	PredictorFailures  int64            `json:"predictor_failures"`
	ModelAgreements    int64            `json:"model_agreements"`
	ModelDisagreements int64            `json:"model_disagreements"`
	Categories         map[string]int64 `json:"categories"`
	MeanBMI            float64          `json:"mean_bmi"`
}

func New() *Telemetry {
	t := &Telemetry{
		registry:           gometrics.NewRegistry(),
		assessments:        gometrics.NewCounter(),
		predictorFailures:  gometrics.NewCounter(),
		modelAgreements:    gometrics.NewCounter(),
		modelDisagreements: gometrics.NewCounter(),
		bmi:                gometrics.NewHistogram(gometrics.NewUniformSample(reservoirSize)),
		categories:         make(map[domain.Category]gometrics.Counter),
	}
	t.registry.Register(MetricAssessments, t.assessments)
	t.registry.Register(MetricPredictorFailures, t.predictorFailures)
	t.registry.Register(MetricModelAgreements, t.modelAgreements)
	t.registry.Register(MetricModelDisagreements, t.modelDisagreements)
	t.registry.Register(MetricBMI, t.bmi)
	for _, c := range domain.Categories() {
		counter := gometrics.NewCounter()
		t.categories[c] = counter
		t.registry.Register("category."+string(c), counter)
	}
	return t
}

// Registry exposes the underlying registry for reporters.
func (t *Telemetry) Registry() gometrics.Registry {
	return t.registry
}

func (t *Telemetry) RecordAssessment(a *domain.Assessment) {
	t.assessments.Inc(1)
	if c, ok := t.categories[a.Category]; ok {
		c.Inc(1)
	}
	t.bmi.Update(int64(math.Round(a.BMI * 100)))
	if a.ModelAgrees != nil {
		if *a.ModelAgrees {
			t.modelAgreements.Inc(1)
		} else {
			t.modelDisagreements.Inc(1)
		}
	}
}

func (t *Telemetry) RecordPredictorFailure() {
	t.predictorFailures.Inc(1)
}

func (t *Telemetry) Snapshot() Snapshot {
	s := Snapshot{
		Assessments:        t.assessments.Count(),
		PredictorFailures:  t.predictorFailures.Count(),
		ModelAgreements:    t.modelAgreements.Count(),
		ModelDisagreements: t.modelDisagreements.Count(),
		Categories:         make(map[string]int64, len(t.categories)),
	}
	for c, counter := range t.categories {
		s.Categories[string(c)] = counter.Count()
	}
	if s.Assessments > 0 {
		s.MeanBMI = t.bmi.Snapshot().Mean() / 100
	}
	return s
}
