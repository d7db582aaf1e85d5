package food

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFoodItemsCSVSimpleLine(t *testing.T) {
	result := ParseFoodItemsCSV("chicken breast,31,3.6,0")

	require.Len(t, result.Items, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, ParsedFoodItem{Name: "chicken breast", Protein: 31, Fat: 3.6, Carbs: 0}, result.Items[0])
}

func TestParseFoodItemsCSVSkipsHeader(t *testing.T) {
	result := ParseFoodItemsCSV("Item,Protein,Fat,Carbs\nbutter,0.9,81,0.1")

	require.Len(t, result.Items, 1)
	assert.Equal(t, "butter", result.Items[0].Name)
	assert.Equal(t, 1, result.Total)
}

func TestParseFoodItemsCSVQuotedName(t *testing.T) {
	result := ParseFoodItemsCSV("\"avocado\",2,15,9")

	require.Len(t, result.Items, 1)
	assert.Equal(t, "avocado", result.Items[0].Name)
}

func TestParseFoodItemsCSVQuotedComma(t *testing.T) {
	result := ParseFoodItemsCSV("\"cheese, cheddar\",25,33,1.3")

	require.Len(t, result.Items, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "cheese, cheddar", result.Items[0].Name)
}

func TestParseFoodItemsCSVSingleQuotedName(t *testing.T) {
	result := ParseFoodItemsCSV("'Almonds',21,50,20")

	require.Len(t, result.Items, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Almonds", result.Items[0].Name)
}

func TestParseFoodItemsCSVTrimsInsideQuotes(t *testing.T) {
	result := ParseFoodItemsCSV("\" Heavy Cream \",2.1,37,2.9")

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Heavy Cream", result.Items[0].Name)
}

func TestParseFoodItemsCSVExtraColumnsIgnored(t *testing.T) {
	result := ParseFoodItemsCSV("Almonds,21,50,20,extra")

	require.Len(t, result.Items, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, ParsedFoodItem{Name: "Almonds", Protein: 21, Fat: 50, Carbs: 20}, result.Items[0])
}

func TestParseFoodItemsCSVTooFewColumns(t *testing.T) {
	result := ParseFoodItemsCSV("salmon,20,13")

	assert.Empty(t, result.Items)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Line 1: Invalid format - expected 4 columns", result.Errors[0])
}

func TestParseFoodItemsCSVTrailingCommaDropsField(t *testing.T) {
	// The trailing comma leaves three fields, so this is a column count
	// failure rather than a numeric one.
	result := ParseFoodItemsCSV("salmon,20,13,")

	assert.Empty(t, result.Items)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Line 1: Invalid format - expected 4 columns", result.Errors[0])
}

func TestParseFoodItemsCSVTrailingCommaWithSpaceKeepsEmptyField(t *testing.T) {
	// Whitespace after the last comma keeps the fourth field alive, so the
	// failure is the empty number, not the column count.
	result := ParseFoodItemsCSV("salmon,20,13, ")

	assert.Empty(t, result.Items)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Line 1: Invalid numeric values", result.Errors[0])
}

func TestParseFoodItemsCSVMissingName(t *testing.T) {
	result := ParseFoodItemsCSV("\"\",10,5,2")

	assert.Empty(t, result.Items)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Line 1: Missing item name", result.Errors[0])
}

func TestParseFoodItemsCSVInvalidNumbers(t *testing.T) {
	result := ParseFoodItemsCSV("eggs,lots,11,1.1")

	assert.Empty(t, result.Items)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Line 1: Invalid numeric values", result.Errors[0])
}

func TestParseFoodItemsCSVLineNumbersSkipBlanks(t *testing.T) {
	// Raw file line 4 is the second surviving data line after the header and
	// a blank line are dropped, so it reports as line 2.
	content := "Item,Protein,Fat,Carbs\nchicken,31,3.6,0\n\nbad line"
	result := ParseFoodItemsCSV(content)

	require.Len(t, result.Items, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "Line 2: Invalid format - expected 4 columns", result.Errors[0])
}

func TestParseFoodItemsCSVMixedGoodAndBad(t *testing.T) {
	content := "chicken,31,3.6,0\nbroken\nbutter,0.9,81,0.1\neggs,abc,11,1.1"
	result := ParseFoodItemsCSV(content)

	assert.Equal(t, 4, result.Total)
	require.Len(t, result.Items, 2)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "chicken", result.Items[0].Name)
	assert.Equal(t, "butter", result.Items[1].Name)
	assert.Equal(t, "Line 2: Invalid format - expected 4 columns", result.Errors[0])
	assert.Equal(t, "Line 4: Invalid numeric values", result.Errors[1])
}

func TestParseFoodItemsCSVIsIdempotent(t *testing.T) {
	content := "chicken,31,3.6,0\nbroken\nbutter,0.9,81,0.1"

	first := ParseFoodItemsCSV(content)
	second := ParseFoodItemsCSV(content)

	assert.Equal(t, first, second)
}

func TestParseFoodItemsCSVAcceptsNegativeValues(t *testing.T) {
	// Range checking is not the parser's job.
	result := ParseFoodItemsCSV("weird,-1,2,3")

	require.Len(t, result.Items, 1)
	assert.Equal(t, float64(-1), result.Items[0].Protein)
}

func TestParseFoodItemsCSVEmptyInput(t *testing.T) {
	result := ParseFoodItemsCSV("")

	assert.Empty(t, result.Items)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 0, result.Total)
}
