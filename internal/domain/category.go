package domain

// Category is a body-weight classification, ordered by increasing severity.
type Category string

const (
	SeverelyUnderweight Category = "Severely Underweight"
	Underweight         Category = "Underweight"
	NormalWeight        Category = "Normal Weight"
	Overweight          Category = "Overweight"
	ObesityI            Category = "Obesity I"
	ObesityII           Category = "Obesity II"
	ObesityIII          Category = "Obesity III"
)

var categories = []Category{
	SeverelyUnderweight,
	Underweight,
	NormalWeight,
	Overweight,
	ObesityI,
	ObesityII,
	ObesityIII,
}

// Categories returns all categories from least to most severe.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Severity is the zero-based rank of c, or -1 for an unknown category.
func (c Category) Severity() int {
	for i, known := range categories {
		if known == c {
			return i
		}
	}
	return -1
}

func (c Category) Valid() bool {
	return c.Severity() >= 0
}

func (c Category) String() string {
	return string(c)
}
