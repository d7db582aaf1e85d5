// Package nutrition aggregates recipe macros and scores the result against a
// ketogenic target ratio. Everything here is a pure function over its inputs.
package nutrition

import "math"

// Atwater factors, kcal per gram.
const (
	CaloriesPerGramProtein = 4
	CaloriesPerGramFat     = 9
	CaloriesPerGramCarbs   = 4
)

type (
	// Portion is one weighed ingredient: the macro density of the food item
	// (grams per 100g) together with the grams used in the recipe.
	Portion struct {
		ProteinPer100g float64
		FatPer100g     float64
		CarbsPer100g   float64
		Grams          float64
	}

	// MacroSummary carries totals already rounded for display: macros to one
	// decimal, the keto ratio to two, calories to the nearest integer.
	MacroSummary struct {
		TotalProtein       float64 `json:"total_protein"`
		TotalFat           float64 `json:"total_fat"`
		TotalCarbs         float64 `json:"total_carbs"`
		TotalCalories      int     `json:"total_calories"`
		CaloriesPerServing int     `json:"calories_per_serving"`
		KetoRatio          float64 `json:"keto_ratio"`
	}
)

// ComputeMacros sums macros over the portions and derives calories and the
// keto ratio (fat / (protein + carbs), 0 when the denominator is zero).
// Rounding happens once, here at the reporting boundary, never while
// accumulating.
func ComputeMacros(portions []Portion, servings int) MacroSummary {
	var protein, fat, carbs float64
	for _, p := range portions {
		multiplier := p.Grams / 100
		protein += p.ProteinPer100g * multiplier
		fat += p.FatPer100g * multiplier
		carbs += p.CarbsPer100g * multiplier
	}

	calories := protein*CaloriesPerGramProtein + fat*CaloriesPerGramFat + carbs*CaloriesPerGramCarbs

	perServing := 0.0
	if servings > 0 {
		perServing = calories / float64(servings)
	}

	ratio := 0.0
	if protein+carbs > 0 {
		ratio = fat / (protein + carbs)
	}

	return MacroSummary{
		TotalProtein:       round1(protein),
		TotalFat:           round1(fat),
		TotalCarbs:         round1(carbs),
		TotalCalories:      int(math.Round(calories)),
		CaloriesPerServing: int(math.Round(perServing)),
		KetoRatio:          round2(ratio),
	}
}

type Severity string

const (
	SeverityOnTarget  Severity = "on_target"
	SeverityCaution   Severity = "caution"
	SeverityOffTarget Severity = "off_target"
)

// ClassifyRatio buckets the deviation from the target ratio into warning
// tiers: within 0.5 is on target, within 1.0 a caution, anything beyond is
// off target.
func ClassifyRatio(computed, target float64) Severity {
	diff := math.Abs(computed - target)
	switch {
	case diff <= 0.5:
		return SeverityOnTarget
	case diff <= 1.0:
		return SeverityCaution
	default:
		return SeverityOffTarget
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
