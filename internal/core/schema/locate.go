package schema

import "strings"

// isRecipeType reports whether a schema.org @type value names Recipe. The
// value may be a single string or an array of strings.
func isRecipeType(typeVal interface{}) bool {
	switch t := typeVal.(type) {
	case string:
		return strings.Contains(t, "Recipe")
	case []interface{}:
		for _, el := range t {
			if s, ok := el.(string); ok && strings.Contains(s, "Recipe") {
				return true
			}
		}
	}
	return false
}

// LocateRecipe returns the first candidate typed as a Recipe, descending into
// @graph arrays before moving on. A nil return is the normal "no recipe on
// this page" outcome, not an error.
func LocateRecipe(candidates []map[string]interface{}) map[string]interface{} {
	for _, candidate := range candidates {
		if isRecipeType(candidate["@type"]) {
			return candidate
		}

		if graph, ok := candidate["@graph"].([]interface{}); ok {
			for _, el := range graph {
				node, ok := el.(map[string]interface{})
				if !ok {
					continue
				}
				if isRecipeType(node["@type"]) {
					return node
				}
			}
		}
	}
	return nil
}
