package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMacros_EmptyIngredients(t *testing.T) {
	for _, servings := range []int{1, 4, 12} {
		summary := ComputeMacros(nil, servings)

		assert.Zero(t, summary.TotalProtein)
		assert.Zero(t, summary.TotalFat)
		assert.Zero(t, summary.TotalCarbs)
		assert.Zero(t, summary.TotalCalories)
		assert.Zero(t, summary.CaloriesPerServing)
		assert.Zero(t, summary.KetoRatio)
	}
}

func TestComputeMacros_SingleIngredient(t *testing.T) {
	// 200g of a food with 21/50/20 per 100g.
	portions := []Portion{
		{ProteinPer100g: 21, FatPer100g: 50, CarbsPer100g: 20, Grams: 200},
	}

	summary := ComputeMacros(portions, 2)

	assert.Equal(t, 42.0, summary.TotalProtein)
	assert.Equal(t, 100.0, summary.TotalFat)
	assert.Equal(t, 40.0, summary.TotalCarbs)
	// 42*4 + 100*9 + 40*4 = 1228
	assert.Equal(t, 1228, summary.TotalCalories)
	assert.Equal(t, 614, summary.CaloriesPerServing)
	// 100 / (42 + 40) = 1.2195... -> 1.22
	assert.Equal(t, 1.22, summary.KetoRatio)
}

func TestComputeMacros_RoundingAppliedOnce(t *testing.T) {
	// Unrounded sums: protein 1.23, fat 4.56, carbs 0.07 per 33g of density
	// values chosen to make intermediate rounding visible if it happened.
	portions := []Portion{
		{ProteinPer100g: 3.73, FatPer100g: 13.82, CarbsPer100g: 0.212, Grams: 33},
	}

	protein := 3.73 * 0.33
	fat := 13.82 * 0.33
	carbs := 0.212 * 0.33
	wantCalories := int(math.Round(protein*4 + fat*9 + carbs*4))

	summary := ComputeMacros(portions, 1)

	// Calories must derive from the unrounded sums, not the displayed ones.
	assert.Equal(t, wantCalories, summary.TotalCalories)
	assert.Equal(t, math.Round(protein*10)/10, summary.TotalProtein)
}

func TestComputeMacros_RatioScaleInvariant(t *testing.T) {
	base := []Portion{
		{ProteinPer100g: 2.1, FatPer100g: 37, CarbsPer100g: 2.9, Grams: 120},
		{ProteinPer100g: 25, FatPer100g: 49, CarbsPer100g: 16, Grams: 40},
	}
	doubled := make([]Portion, len(base))
	for i, p := range base {
		p.Grams *= 2
		doubled[i] = p
	}

	a := ComputeMacros(base, 3)
	b := ComputeMacros(doubled, 3)

	assert.Equal(t, a.KetoRatio, b.KetoRatio)
	assert.InDelta(t, a.TotalFat*2, b.TotalFat, 0.1)
	assert.InDelta(t, float64(a.TotalCalories)*2, float64(b.TotalCalories), 1)
}

func TestComputeMacros_ZeroDenominatorRatio(t *testing.T) {
	// Pure fat: denominator protein+carbs is zero, ratio must fall back to 0
	// instead of propagating +Inf.
	portions := []Portion{
		{ProteinPer100g: 0, FatPer100g: 100, CarbsPer100g: 0, Grams: 50},
	}

	summary := ComputeMacros(portions, 1)

	assert.Equal(t, 0.0, summary.KetoRatio)
	assert.Equal(t, 50.0, summary.TotalFat)
}

func TestClassifyRatio(t *testing.T) {
	tests := []struct {
		name     string
		computed float64
		target   float64
		want     Severity
	}{
		{"exact match", 3.0, 3.0, SeverityOnTarget},
		{"within half", 3.2, 3.0, SeverityOnTarget},
		{"boundary on target", 3.5, 3.0, SeverityOnTarget},
		{"caution band", 3.8, 3.0, SeverityCaution},
		{"boundary caution", 4.0, 3.0, SeverityCaution},
		{"off target", 5.0, 3.0, SeverityOffTarget},
		{"below target caution", 2.2, 3.0, SeverityCaution},
		{"below target off", 1.0, 3.0, SeverityOffTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRatio(tt.computed, tt.target))
		})
	}
}
