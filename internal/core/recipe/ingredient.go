package recipe

import (
	"regexp"
	"strings"
)

// knownUnits is the alternation of recognized unit synonyms, plurals and
// abbreviations included. Single-letter forms are safe because the line
// patterns require whitespace after the unit.
const knownUnits = `tablespoons?|tbsp\.?|tbs\.?|teaspoons?|tsp\.?|cups?|c\.?|ounces?|oz\.?|pounds?|lbs?\.?|grams?|g\.?|kilograms?|kg\.?|milliliters?|ml\.?|liters?|l\.?|quarts?|qts?\.?|pints?|pts?\.?|gallons?|gal\.?|cloves?|pinch(?:es)?|dash(?:es)?|cans?|packages?|pkgs?\.?|slices?|sticks?|bunch(?:es)?|sprigs?|heads?|stalks?|pieces?|handfuls?`

var (
	qtyUnitLine = regexp.MustCompile(`(?i)^([\d\s/\-.]+)\s+(` + knownUnits + `)\s+(.+)$`)
	qtyOnlyLine = regexp.MustCompile(`^([\d\s/\-.]+)\s+(.+)$`)
	parenSuffix = regexp.MustCompile(`^(.*\S)\s*\(([^()]*)\)$`)
)

// ParseIngredient splits one raw ingredient line (already entity-decoded)
// into quantity, unit, name and preparation, and assigns a category. A blank
// line yields nil; callers filter those out.
func ParseIngredient(line string) *Ingredient {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}

	var (
		quantity *float64
		unit     string
		rest     string
	)

	if m := qtyUnitLine.FindStringSubmatch(text); m != nil {
		quantity = ParseQuantity(m[1])
		unit = normalizeUnit(m[2])
		rest = m[3]
	} else if m := qtyOnlyLine.FindStringSubmatch(text); m != nil {
		quantity = ParseQuantity(m[1])
		rest = m[2]
	} else {
		rest = text
	}

	name, preparation := splitNamePreparation(rest)

	return &Ingredient{
		Name:        name,
		Quantity:    quantity,
		Unit:        unit,
		Preparation: preparation,
		Category:    GuessCategory(name),
		Optional:    false,
	}
}

// normalizeUnit lowercases a matched unit and strips a trailing period.
func normalizeUnit(unit string) string {
	return strings.TrimSuffix(strings.ToLower(unit), ".")
}

// splitNamePreparation separates the free-text remainder into a name and an
// optional preparation. A trailing parenthesized group wins over a comma.
func splitNamePreparation(rest string) (string, string) {
	rest = strings.TrimSpace(rest)

	if m := parenSuffix.FindStringSubmatch(rest); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}

	if idx := strings.Index(rest, ","); idx >= 0 {
		return strings.TrimSpace(rest[:idx]), strings.TrimSpace(rest[idx+1:])
	}

	return rest, ""
}
