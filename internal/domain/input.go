package domain

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// Frequency answers CAEC and CALC.
type Frequency string

const (
	Never      Frequency = "no"
	Sometimes  Frequency = "Sometimes"
	Frequently Frequency = "Frequently"
	Always     Frequency = "Always"
)

// Habitual reports whether f is Frequently or Always.
func (f Frequency) Habitual() bool {
	return f == Frequently || f == Always
}

type Transport string

const (
	PublicTransportation Transport = "Public_Transportation"
	Walking              Transport = "Walking"
	Automobile           Transport = "Automobile"
	Motorbike            Transport = "Motorbike"
	Bike                 Transport = "Bike"
)

// Motorized reports whether t is a private motor vehicle.
func (t Transport) Motorized() bool {
	return t == Automobile || t == Motorbike
}

// InputRecord is one set of survey answers. JSON names follow the
// obesity dataset columns so a record can be sent to the model server as-is.
type InputRecord struct {
	Gender        Gender    `json:"Gender" validate:"required,oneof=Male Female"`
	Age           int       `json:"Age" validate:"gte=10,lte=100"`
	Height        float64   `json:"Height" validate:"gt=0"`
	Weight        float64   `json:"Weight" validate:"gt=0"`
	FamilyHistory YesNo     `json:"family_history_with_overweight" validate:"required,oneof=yes no"`
	FAVC          YesNo     `json:"FAVC" validate:"required,oneof=yes no"`
	FCVC          int       `json:"FCVC" validate:"gte=0,lte=3"`
	NCP           int       `json:"NCP" validate:"gte=1,lte=5"`
	CAEC          Frequency `json:"CAEC" validate:"required,oneof=no Sometimes Frequently Always"`
	Smoke         YesNo     `json:"SMOKE" validate:"required,oneof=yes no"`
	CH2O          float64   `json:"CH2O" validate:"gte=0,lte=10"`
	SCC           YesNo     `json:"SCC" validate:"required,oneof=yes no"`
	FAF           int       `json:"FAF" validate:"gte=0,lte=3"`
	TUE           int       `json:"TUE" validate:"gte=0,lte=3"`
	CALC          Frequency `json:"CALC" validate:"required,oneof=no Sometimes Frequently Always"`
	MTRANS        Transport `json:"MTRANS" validate:"required,oneof=Public_Transportation Walking Automobile Motorbike Bike"`
}
