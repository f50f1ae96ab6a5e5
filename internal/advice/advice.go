// Package advice turns a category and survey answers into ordered,
// human-readable recommendations.
package advice

import (
	"strings"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

// Bullet prefixes every advice line.
const Bullet = "• "

const (
	lineObesityRisk     = "Your category indicates obesity. It is important to adopt a healthier lifestyle to reduce risks."
	lineObesityConsult  = "Consult a healthcare professional for personalized guidance."
	lineOverweight      = "You are overweight. Focus on balanced diet and regular physical activity."
	lineUnderweight     = "You are underweight. Consider increasing calorie intake and consult a healthcare professional if needed."
	lineHealthyRange    = "Your weight is within a healthy range. Maintain your current healthy habits."
	lineFemale          = "Women may benefit from strength training to improve metabolism."
	lineMale            = "Men should monitor muscle mass and cardiovascular health regularly."
	lineUnder18         = "Since you are under 18, focus on growth-friendly nutrition and physical activities."
	lineOver60          = "Older adults should focus on maintaining muscle mass and bone health."
	lineFamilyHistory   = "Family history indicates a higher risk; regular check-ups and healthy lifestyle are key."
	lineHighCalorieFood = "Reduce frequent consumption of high-calorie foods to control weight."
	lineVegetables      = "Increase vegetable consumption to improve nutrient intake and digestion."
	lineTooFewMeals     = "Consider eating 3 balanced meals daily to maintain energy levels."
	lineTooManyMeals    = "Avoid excessive meals to prevent unnecessary calorie intake."
	lineSnacking        = "Limit snacking between meals to avoid excess calories."
	lineSmoking         = "Quit smoking to improve overall health and metabolism."
	lineWater           = "Increase daily water intake; aim for at least 2 liters per day."
	lineCalorieMonitor  = "Monitor calorie intake to better manage your diet."
	lineActivity        = "Increase physical activity frequency to at least 3 times per week."
	lineSedentary       = "Limit sedentary time spent on technology; try to stand up and move every hour."
	lineAlcohol         = "Reduce alcohol consumption as it adds empty calories."
	lineTransport       = "Use more active transportation like walking or biking when possible."
	lineFallback        = "Keep maintaining your healthy lifestyle!"
)

// Rule inspects the category and answers and returns the lines it contributes.
type Rule struct {
	ID    string
	Lines func(c domain.Category, in domain.InputRecord) []string
}

// when builds a rule that emits line whenever match holds.
func when(id string, match func(in domain.InputRecord) bool, line string) Rule {
	return Rule{
		ID: id,
		Lines: func(_ domain.Category, in domain.InputRecord) []string {
			if match(in) {
				return []string{line}
			}
			return nil
		},
	}
}

// rules run in this order and the output keeps it.
var rules = []Rule{
	{ID: "category", Lines: categoryLines},
	{ID: "gender", Lines: genderLines},
	{ID: "age", Lines: ageLines},
	when("family_history", func(in domain.InputRecord) bool { return in.FamilyHistory == domain.Yes }, lineFamilyHistory),
	when("high_calorie_food", func(in domain.InputRecord) bool { return in.FAVC == domain.Yes }, lineHighCalorieFood),
	when("vegetables", func(in domain.InputRecord) bool { return in.FCVC <= 1 }, lineVegetables),
	{ID: "meals", Lines: mealLines},
	when("snacking", func(in domain.InputRecord) bool { return in.CAEC.Habitual() }, lineSnacking),
	when("smoking", func(in domain.InputRecord) bool { return in.Smoke == domain.Yes }, lineSmoking),
	when("water", func(in domain.InputRecord) bool { return in.CH2O < 2 }, lineWater),
	when("calorie_monitoring", func(in domain.InputRecord) bool { return in.SCC == domain.No }, lineCalorieMonitor),
	when("activity", func(in domain.InputRecord) bool { return in.FAF <= 1 }, lineActivity),
	when("technology", func(in domain.InputRecord) bool { return in.TUE >= 2 }, lineSedentary),
	when("alcohol", func(in domain.InputRecord) bool { return in.CALC.Habitual() }, lineAlcohol),
	when("transport", func(in domain.InputRecord) bool { return in.MTRANS.Motorized() }, lineTransport),
}

// Advise evaluates every rule in order and returns the bulleted lines of
// all rules that fired. The result is never empty.
func Advise(c domain.Category, in domain.InputRecord) []string {
	return evaluate(rules, c, in)
}

func evaluate(rs []Rule, c domain.Category, in domain.InputRecord) []string {
	var lines []string
	for _, r := range rs {
		for _, l := range r.Lines(c, in) {
			lines = append(lines, Bullet+l)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, Bullet+lineFallback)
	}
	return lines
}

// RuleIDs lists the rule identifiers in evaluation order.
func RuleIDs() []string {
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	return ids
}

func categoryLines(c domain.Category, _ domain.InputRecord) []string {
	name := string(c)
	switch {
	case strings.Contains(name, "Obesity"):
		return []string{lineObesityRisk, lineObesityConsult}
	case c == domain.Overweight:
		return []string{lineOverweight}
	case strings.Contains(name, "Underweight"):
		return []string{lineUnderweight}
	default:
		return []string{lineHealthyRange}
	}
}

func genderLines(_ domain.Category, in domain.InputRecord) []string {
	if in.Gender == domain.Female {
		return []string{lineFemale}
	}
	return []string{lineMale}
}

func ageLines(_ domain.Category, in domain.InputRecord) []string {
	switch {
	case in.Age < 18:
		return []string{lineUnder18}
	case in.Age > 60:
		return []string{lineOver60}
	}
	return nil
}

func mealLines(_ domain.Category, in domain.InputRecord) []string {
	switch {
	case in.NCP < 3:
		return []string{lineTooFewMeals}
	case in.NCP > 4:
		return []string{lineTooManyMeals}
	}
	return nil
}
