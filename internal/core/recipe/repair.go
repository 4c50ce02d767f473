package recipe

import (
	"math"
	"regexp"
	"strings"

	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"
)

// Fix kinds recorded by the repairer.
const (
	FixNullQuantity  = "null-quantity"
	FixLongDecimal   = "long-decimal"
	FixMalformedName = "malformed-name"
)

// Fix records one repaired ingredient field.
type Fix struct {
	RecipeID   string `json:"recipeId"`
	RecipeName string `json:"recipeName"`
	Ingredient string `json:"ingredient"`
	Kind       string `json:"kind"`
	Before     string `json:"before"`
	After      string `json:"after"`
}

// nameFix is one targeted substitution in the repair cascade. Fixes apply
// cumulatively: each pattern is tested against the output of the previous
// fix, so a name carrying several artifacts is cleaned in a single pass.
type nameFix struct {
	pattern     *regexp.Regexp
	replacement string
}

var nameFixes = []nameFix{
	// leading "to N " left over from a split range ("2 to 3 shells")
	{regexp.MustCompile(`^to \d+\s+`), ""},
	// leading "g / N " from a mis-split metric quantity
	{regexp.MustCompile(`^g\s*/\s*\d+\s*`), ""},
	// leading "/ N" from a broken fraction
	{regexp.MustCompile(`^/\s*\d+\s*`), ""},
	// leading "EACH " from per-item listings
	{regexp.MustCompile(`^EACH\s+`), ""},
	// doubled parentheses
	{regexp.MustCompile(`\(\(`), "("},
	{regexp.MustCompile(`\)\)`), ")"},
	// leading comma
	{regexp.MustCompile(`^\s*,\s*`), ""},
	// a quantity+unit embedded at the front of the name itself
	{regexp.MustCompile(`(?i)^\d+(?:\.\d+)?\s*(?:` + knownUnits + `)\s+`), ""},
}

var (
	leadingPunct  = regexp.MustCompile(`^[\s,.;:/\-]+`)
	trailingPunct = regexp.MustCompile(`[\s,.;:/\-(]+$`)
)

// cleanName runs the cumulative fix cascade, then the generic cleanup:
// strip boundary punctuation and collapse internal whitespace. The cascade
// repeats until the name stops changing, so one artifact peeling away can
// expose another and the result is a fixed point. Every substitution
// strictly shortens the string, so the loop terminates.
func cleanName(name string) string {
	cleaned := name
	for {
		before := cleaned
		for _, fix := range nameFixes {
			cleaned = fix.pattern.ReplaceAllString(cleaned, fix.replacement)
		}
		if cleaned == before {
			break
		}
	}

	cleaned = leadingPunct.ReplaceAllString(cleaned, "")
	cleaned = trailingPunct.ReplaceAllString(cleaned, "")
	cleaned = common.CollapseWhitespace(cleaned)

	// An unbalanced open paren with no close survives the trailing strip
	// when text follows it; drop the orphan.
	if strings.Count(cleaned, "(") > strings.Count(cleaned, ")") {
		cleaned = common.CollapseWhitespace(strings.Replace(cleaned, "(", " ", 1))
	}

	return cleaned
}

// cleanPreparation strips boundary punctuation artifacts from a preparation
// note.
func cleanPreparation(prep string) string {
	cleaned := leadingPunct.ReplaceAllString(prep, "")
	cleaned = trailingPunct.ReplaceAllString(cleaned, "")
	return common.CollapseWhitespace(cleaned)
}

// RepairRecipe applies the ingredient data repairs to one recipe and
// returns the repaired copy plus a record of every fix. Running it on
// already-clean data is a no-op.
func RepairRecipe(r Recipe) (Recipe, []Fix) {
	var fixes []Fix

	repaired := r
	repaired.Ingredients = make([]Ingredient, len(r.Ingredients))
	copy(repaired.Ingredients, r.Ingredients)

	for i := range repaired.Ingredients {
		ing := &repaired.Ingredients[i]

		if ing.Quantity == nil {
			// the source never specified an amount ("to taste")
			ing.Quantity = QuantityOf(0)
			fixes = append(fixes, Fix{
				RecipeID:   r.ID,
				RecipeName: r.Name,
				Ingredient: ing.Name,
				Kind:       FixNullQuantity,
				Before:     "null",
				After:      "0",
			})
		} else if rounded := math.Round(*ing.Quantity*100) / 100; rounded != *ing.Quantity {
			before := common.ToString(*ing.Quantity)
			ing.Quantity = QuantityOf(rounded)
			fixes = append(fixes, Fix{
				RecipeID:   r.ID,
				RecipeName: r.Name,
				Ingredient: ing.Name,
				Kind:       FixLongDecimal,
				Before:     before,
				After:      common.ToString(rounded),
			})
		}

		if cleaned := cleanName(ing.Name); cleaned != ing.Name && cleaned != "" {
			fixes = append(fixes, Fix{
				RecipeID:   r.ID,
				RecipeName: r.Name,
				Ingredient: ing.Name,
				Kind:       FixMalformedName,
				Before:     ing.Name,
				After:      cleaned,
			})
			ing.Name = cleaned
		}

		if ing.Preparation != "" {
			ing.Preparation = cleanPreparation(ing.Preparation)
		}
	}

	return repaired, fixes
}

// RepairLibrary repairs every recipe in the library, preserving order.
func RepairLibrary(recipes []Recipe) ([]Recipe, []Fix) {
	repaired := make([]Recipe, 0, len(recipes))
	var fixes []Fix

	for _, r := range recipes {
		fixed, recipeFixes := RepairRecipe(r)
		repaired = append(repaired, fixed)
		fixes = append(fixes, recipeFixes...)
	}

	return repaired, fixes
}
