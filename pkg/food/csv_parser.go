package food

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	ParsedFoodItem struct {
		Name    string
		Protein float64
		Fat     float64
		Carbs   float64
	}

	CSVParseResult struct {
		Items  []ParsedFoodItem
		Errors []string
		Total  int
	}
)

// ParseFoodItemsCSV reads rows of "name,protein,fat,carbs" the way users
// actually paste them: blank lines are dropped, a header row mentioning "item"
// is skipped, and quoted names may contain commas. Each bad line produces one
// error; good lines around it still parse. Line numbers count the surviving
// data lines, not the raw file lines.
func ParseFoodItemsCSV(content string) CSVParseResult {
	result := CSVParseResult{
		Items:  []ParsedFoodItem{},
		Errors: []string{},
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > 0 && strings.Contains(strings.ToLower(lines[0]), "item") {
		lines = lines[1:]
	}

	result.Total = len(lines)

	for i, line := range lines {
		lineNumber := i + 1

		parts := splitCSVLine(line)
		if len(parts) < 4 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Line %d: Invalid format - expected 4 columns", lineNumber))
			continue
		}
		// Extra fields beyond the fourth are ignored.

		name := stripOuterQuotes(parts[0])
		if name == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Line %d: Missing item name", lineNumber))
			continue
		}

		protein, errProtein := strconv.ParseFloat(parts[1], 64)
		fat, errFat := strconv.ParseFloat(parts[2], 64)
		carbs, errCarbs := strconv.ParseFloat(parts[3], 64)
		if errProtein != nil || errFat != nil || errCarbs != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Line %d: Invalid numeric values", lineNumber))
			continue
		}

		result.Items = append(result.Items, ParsedFoodItem{
			Name:    name,
			Protein: protein,
			Fat:     fat,
			Carbs:   carbs,
		})
	}

	return result
}

// splitCSVLine splits on commas outside double quotes. Quotes stay attached to
// their field so the name can be unwrapped afterwards. The final field is kept
// only when something, even just whitespace, follows the last comma.
func splitCSVLine(line string) []string {
	parts := make([]string, 0, 4)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}

	return parts
}

// stripOuterQuotes removes one leading and one trailing single or double
// quote, then trims the whitespace that was protected inside them.
func stripOuterQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}
