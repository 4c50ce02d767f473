package recipe

import "strings"

// Change kinds recorded by the metadata updater.
const (
	ChangeMealType = "meal-type"
	ChangeTag      = "tag"
)

// Change records one metadata addition proposed by the updater.
type Change struct {
	RecipeID   string `json:"recipeId"`
	RecipeName string `json:"recipeName"`
	Kind       string `json:"kind"`
	Value      string `json:"value"`
}

// UpdateRecipe re-runs meal-type and tag inference over one recipe and
// merges the result additively: labels are only ever added, never removed.
// Snack is never auto-added to a recipe that already carries dinner unless
// the recipe name itself says "snack".
func UpdateRecipe(r Recipe) (Recipe, []Change) {
	var changes []Change

	updated := r
	updated.MealTypes = append([]string(nil), r.MealTypes...)
	updated.Tags = append([]string(nil), r.Tags...)

	for _, mealType := range InferMealTypes(r.Name, r.Tags, r.Ingredients) {
		if updated.HasMealType(mealType) {
			continue
		}
		if mealType == MealSnack && updated.HasMealType(MealDinner) &&
			!strings.Contains(strings.ToLower(r.Name), "snack") {
			continue
		}
		updated.MealTypes = append(updated.MealTypes, mealType)
		changes = append(changes, Change{
			RecipeID:   r.ID,
			RecipeName: r.Name,
			Kind:       ChangeMealType,
			Value:      mealType,
		})
	}

	for _, tag := range InferTags(&updated) {
		updated.Tags = append(updated.Tags, tag)
		changes = append(changes, Change{
			RecipeID:   r.ID,
			RecipeName: r.Name,
			Kind:       ChangeTag,
			Value:      tag,
		})
	}

	return updated, changes
}

// UpdateLibrary runs the metadata updater over every recipe, preserving
// order, and returns the additive diff.
func UpdateLibrary(recipes []Recipe) ([]Recipe, []Change) {
	updated := make([]Recipe, 0, len(recipes))
	var changes []Change

	for _, r := range recipes {
		u, recipeChanges := UpdateRecipe(r)
		updated = append(updated, u)
		changes = append(changes, recipeChanges...)
	}

	return updated, changes
}
