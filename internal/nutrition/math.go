package nutrition

import (
	"math"

	"github.com/minhvu/cutcoach/internal/model"
)

// Calorie adjustment applied on top of TDEE per goal.
const (
	CutAdjustmentPct      = -0.20
	MaintainAdjustmentPct = 0
	BulkAdjustmentPct     = +0.15
)

// Protein targets in g/kg body weight, switched on body-fat percentage.
const (
	LeanProteinFactor    = 2.0
	DefaultProteinFactor = 1.7
	LeanBodyFatCutoff    = 15.0
	// Body fat assumed when the profile has none recorded; lands on the
	// lower protein factor.
	AssumedBodyFatPct = 20.0
)

// FatFactor is the fixed daily fat target in g/kg, regardless of goal.
const FatFactor = 0.6

// ActivityFactor returns the TDEE multiplier for a level. Unrecognized
// levels fall back to the moderate multiplier.
func ActivityFactor(level model.ActivityLevel) float64 {
	switch level {
	case model.ActivitySedentary:
		return 1.2
	case model.ActivityLight:
		return 1.375
	case model.ActivityModerate:
		return 1.55
	case model.ActivityActive:
		return 1.725
	case model.ActivityVeryActive:
		return 1.9
	default:
		return 1.55
	}
}

// GoalAdjustment returns the calorie adjustment for a goal. Unrecognized
// goals fall back to maintain.
func GoalAdjustment(goal model.Goal) float64 {
	switch goal {
	case model.GoalCut:
		return CutAdjustmentPct
	case model.GoalMaintain:
		return MaintainAdjustmentPct
	case model.GoalBulk:
		return BulkAdjustmentPct
	default:
		return MaintainAdjustmentPct
	}
}

// CalcBMI returns weight(kg) / height(m)^2 to one decimal, or 0 when either
// input is missing. Callers treat 0 as "profile incomplete".
func CalcBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return round1(weightKg / (h * h))
}

// CalcTDEE estimates daily energy expenditure from Mifflin-St Jeor BMR and
// the activity multiplier. Returns 0 for an incomplete profile.
func CalcTDEE(p model.UserProfile) int {
	if p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return 0
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == model.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr * ActivityFactor(p.ActivityLevel)))
}

// CalcMacroTargets derives the daily calorie and macro targets. A zero TDEE
// (incomplete profile) propagates as an all-zero summary. Carbs take the
// calories left after protein and fat; every macro is floored at zero so an
// aggressive cut cannot produce negative targets.
func CalcMacroTargets(p model.UserProfile) model.MacroSummary {
	tdee := CalcTDEE(p)
	if tdee == 0 {
		return model.MacroSummary{}
	}

	calories := int(math.Round(float64(tdee) * (1 + GoalAdjustment(p.Goal))))

	bodyFat := AssumedBodyFatPct
	if p.BodyFatPercentage != nil && *p.BodyFatPercentage > 0 {
		bodyFat = *p.BodyFatPercentage
	}
	proteinFactor := DefaultProteinFactor
	if bodyFat < LeanBodyFatCutoff {
		proteinFactor = LeanProteinFactor
	}

	protein := math.Round(p.WeightKg * proteinFactor)
	fat := math.Round(p.WeightKg * FatFactor)
	carbs := math.Round((float64(calories) - protein*4 - fat*9) / 4)

	return model.MacroSummary{
		Calories: calories,
		Protein:  math.Max(0, protein),
		Carbs:    math.Max(0, carbs),
		Fat:      math.Max(0, fat),
	}
}

// CalcNutrition scales per-100g facts to the consumed amount. Calories are
// rounded to whole kcal, macro grams to one decimal.
func CalcNutrition(facts model.NutritionFacts, grams float64) model.MacroSummary {
	r := grams / 100
	return model.MacroSummary{
		Calories: int(math.Round(facts.Calories * r)),
		Protein:  round1(facts.Protein * r),
		Carbs:    round1(facts.Carbs * r),
		Fat:      round1(facts.Fat * r),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
