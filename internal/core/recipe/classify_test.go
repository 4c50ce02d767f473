package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		ingredient string
		want       string
	}{
		{"boneless chicken thighs", CategoryMeat},
		{"ground beef", CategoryMeat},
		{"salmon fillet", CategorySeafood},
		{"shredded cheddar cheese", CategoryDairy},
		{"yellow onion", CategoryProduce},
		{"fresh cilantro", CategoryProduce},
		{"all-purpose flour", CategoryPantry},
		{"vegetable broth", CategoryPantry},
		{"smoked paprika", CategorySpices},
		{"soy sauce", CategoryCondiments},
		{"crusty french bread", CategoryBakery},
		{"pumpkin puree", CategoryCanned},
		{"mystery garnish", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.ingredient, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessCategory(tt.ingredient))
		})
	}
}

// Family order is load-bearing: a broth named after its protein belongs with
// the protein, not the pantry.
func TestGuessCategoryPrecedence(t *testing.T) {
	assert.Equal(t, CategoryMeat, GuessCategory("chicken broth"))
	assert.Equal(t, CategorySeafood, GuessCategory("fish stock"))
	assert.Equal(t, CategoryPantry, GuessCategory("vegetable broth"))
}

func TestInferMealTypes(t *testing.T) {
	tests := []struct {
		name   string
		recipe string
		tags   []string
		want   []string
	}{
		{"breakfast by name", "Blueberry Pancakes", nil, []string{MealBreakfast}},
		{"dessert by name", "Chocolate Chip Cookies", nil, []string{MealDessert}},
		{"dinner by name", "Beef Stew", nil, []string{MealDinner}},
		{"tacos span lunch and dinner", "Chicken Tacos", nil, []string{MealLunch, MealDinner}},
		{"tag surface counts", "Weekend Special", []string{"casserole"}, []string{MealDinner}},
		{"dessert pie must be compound", "Chicken Pot Pie", nil, []string{MealDinner}},
		{"apple pie is dessert", "Grandma's Apple Pie", nil, []string{MealDessert}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferMealTypes(tt.recipe, tt.tags, nil))
		})
	}
}

func TestInferMealTypesFallbacks(t *testing.T) {
	// Snack indicators only fire when no primary family matched.
	assert.Equal(t, []string{MealSnack}, InferMealTypes("Spinach Artichoke Dip", nil, nil))

	// Main-dish anchors in the name promote to dinner.
	assert.Equal(t, []string{MealDinner}, InferMealTypes("Garlic Herb Chicken", nil, nil))

	// Then main-dish anchors among the ingredients.
	ingredients := []Ingredient{{Name: "chicken breast"}, {Name: "lemon"}}
	assert.Equal(t, []string{MealDinner}, InferMealTypes("Mystery Bake", nil, ingredients))

	// Nothing matches: no labels at all.
	assert.Nil(t, InferMealTypes("Fruit Medley", nil, []Ingredient{{Name: "apples"}}))
}

func TestInferMealTypesIgnoresDescription(t *testing.T) {
	// Only name and tags are consulted, so prose like "great for breakfast"
	// in a description can never leak in. The API enforces this by never
	// receiving the description in the first place.
	got := InferMealTypes("Beef Chili", []string{"hearty"}, nil)
	assert.Equal(t, []string{MealDinner}, got)
}

func TestInferTags(t *testing.T) {
	r := &Recipe{
		Name: "Spaghetti Bolognese",
		Ingredients: []Ingredient{
			{Name: "ground beef"},
			{Name: "spaghetti"},
			{Name: "crushed tomatoes"},
		},
	}

	tags := InferTags(r)
	assert.Contains(t, tags, "italian")
	assert.Contains(t, tags, "pasta")
	assert.NotContains(t, tags, "vegetarian")
}

func TestInferTagsVegetarianByAbsence(t *testing.T) {
	r := &Recipe{
		Name: "Caprese Salad",
		Ingredients: []Ingredient{
			{Name: "tomatoes"},
			{Name: "fresh mozzarella"},
			{Name: "basil"},
		},
	}

	tags := InferTags(r)
	assert.Contains(t, tags, "salad")
	assert.Contains(t, tags, "vegetarian")
}

func TestInferTagsEmptyRecipeNeverVegetarian(t *testing.T) {
	r := &Recipe{Name: "Placeholder"}
	assert.NotContains(t, InferTags(r), "vegetarian")
}

func TestInferTagsChecksIngredients(t *testing.T) {
	r := &Recipe{
		Name: "Weeknight Skillet",
		Ingredients: []Ingredient{
			{Name: "chicken thighs"},
			{Name: "soy sauce"},
		},
	}

	tags := InferTags(r)
	assert.Contains(t, tags, "chicken")
	assert.Contains(t, tags, "asian")
	assert.Contains(t, tags, "quick")
}

func TestInferTagsSkipsExisting(t *testing.T) {
	r := &Recipe{
		Name:        "Pasta Primavera",
		Tags:        []string{"Pasta"},
		Ingredients: []Ingredient{{Name: "penne"}},
	}

	assert.NotContains(t, InferTags(r), "pasta")
}

func TestInferTagsNameOnlyRules(t *testing.T) {
	// "broth" as an ingredient must not make the recipe a soup.
	r := &Recipe{
		Name:        "Braised Short Ribs",
		Ingredients: []Ingredient{{Name: "beef broth"}},
	}
	assert.NotContains(t, InferTags(r), "soup")
}
