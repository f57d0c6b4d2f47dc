// Package recipe parses free-text ingredient lists into structured
// ingredients with target weights in grams, and tracks per-ingredient
// weighing progress.
package recipe

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dipampaul17/chefscale/units"
)

// Ingredient is one entry of a parsed recipe. Name and TargetWeight are
// fixed at parse time; CurrentWeight and IsComplete track weighing
// progress as physical weight accrues.
type Ingredient struct {
	Name          string
	TargetWeight  float64
	CurrentWeight float64
	IsComplete    bool
}

// Completion tolerance: an ingredient counts as complete when the
// current weight is within 2% of the target, but never tighter than 2 g.
const (
	completionTolerancePercent = 0.02
	minCompletionTolerance     = 2.0
)

// CompletionTolerance returns the absolute weight tolerance within
// which an ingredient of the given target counts as complete.
func CompletionTolerance(targetWeight float64) float64 {
	return math.Max(minCompletionTolerance, targetWeight*completionTolerancePercent)
}

// SetCurrentWeight records the accrued weight and updates the
// completion flag against [CompletionTolerance].
func (ing *Ingredient) SetCurrentWeight(weight float64) {
	ing.CurrentWeight = weight
	ing.IsComplete = math.Abs(weight-ing.TargetWeight) <= CompletionTolerance(ing.TargetWeight)
}

// Parse turns a comma-separated ingredient list into a sequence of
// ingredients, in source order.
//
// Each component is trimmed and split on its first whitespace run into a
// quantity token and a name (internal whitespace in the name is kept).
// Components with fewer than two tokens are silently skipped. The
// quantity resolves to grams by the first matching rule:
//
//   - trailing "g": numeric prefix in grams
//   - trailing "oz": numeric prefix times 28.35
//   - exactly "1" with a name starting "cup": 120 g (one cup of flour)
//   - exactly "1" with a name starting "tbsp": 15 g
//   - exactly "2" with a name starting "tbsp": 30 g
//   - otherwise the token itself parsed as a number
//
// Unparseable quantities degrade silently to a zero-weight ingredient;
// Parse never fails and always returns a (possibly empty) slice. The
// volumetric rules match only the literal quantity strings "1" and "2":
// "1.0 cup flour" or "3 tbsp oil" fall through to plain numeric parsing.
func Parse(text string) []Ingredient {
	components := strings.Split(text, ",")
	ingredients := make([]Ingredient, 0, len(components))

	for _, component := range components {
		component = strings.TrimSpace(component)

		quantity, name, ok := splitComponent(component)
		if !ok {
			continue
		}

		ingredients = append(ingredients, Ingredient{
			Name:         name,
			TargetWeight: resolveWeight(quantity, name),
		})
	}

	return ingredients
}

// splitComponent splits a trimmed component on its first whitespace run.
func splitComponent(component string) (quantity, name string, ok bool) {
	i := strings.IndexFunc(component, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}

	quantity = component[:i]
	name = strings.TrimLeftFunc(component[i:], unicode.IsSpace)

	if quantity == "" || name == "" {
		return "", "", false
	}

	return quantity, name, true
}

// resolveWeight maps a quantity token and ingredient name to grams.
// Rule order is fixed; the first match wins.
func resolveWeight(quantity, name string) float64 {
	switch {
	case strings.HasSuffix(quantity, "g"):
		return parseFloat(strings.TrimSuffix(quantity, "g"))
	case strings.HasSuffix(quantity, "oz"):
		return parseFloat(strings.TrimSuffix(quantity, "oz")) * units.GramsPerOunce
	case quantity == "1" && strings.HasPrefix(name, "cup"):
		return units.GramsPerCupFlour
	case quantity == "1" && strings.HasPrefix(name, "tbsp"):
		return units.GramsPerTablespoon
	case quantity == "2" && strings.HasPrefix(name, "tbsp"):
		return 2 * units.GramsPerTablespoon
	default:
		return parseFloat(quantity)
	}
}

// parseFloat parses s as a float64, degrading to 0 on failure.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}
