package recipe

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssembler(customTags ...string) *Assembler {
	a := NewAssembler(customTags)
	a.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return a
}

func soupSchema() map[string]interface{} {
	return map[string]interface{}{
		"@type":       "Recipe",
		"name":        "Simple Soup",
		"description": "A weeknight classic.",
		"author":      map[string]interface{}{"@type": "Person", "name": "Jane Doe"},
		"image":       []interface{}{"https://example.com/soup.jpg"},
		"prepTime":    "PT10M",
		"cookTime":    "PT20M",
		"recipeYield": "4 servings",
		"keywords":    "easy, comfort food",
		"recipeIngredient": []interface{}{
			"2 cups chicken broth",
			"1 onion, diced",
			"salt to taste",
		},
		"recipeInstructions": "Simmer the broth.\nAdd the onion.\nSeason and serve.",
		"nutrition": map[string]interface{}{
			"@type":          "NutritionInformation",
			"calories":       "240 calories",
			"proteinContent": "12 g",
		},
	}
}

func TestAssemble(t *testing.T) {
	r, err := testAssembler().Assemble(soupSchema(), "https://example.com/simple-soup")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(r.ID, "simple-soup-"), "id %q", r.ID)
	assert.Len(t, r.ID, len("simple-soup-")+4)

	assert.Equal(t, "Simple Soup", r.Name)
	assert.Equal(t, "A weeknight classic.", r.Description)
	assert.Equal(t, "Jane Doe", r.Author)
	assert.Equal(t, "https://example.com/soup.jpg", r.ImageURL)
	assert.Equal(t, "PT10M", r.PrepTime)
	assert.Equal(t, "medium", r.Difficulty)
	assert.Equal(t, Servings{Default: 4, Unit: "servings"}, r.Servings)
	assert.Equal(t, "https://example.com/simple-soup", r.SourceURL)
	assert.False(t, r.IsCustom)
	assert.Equal(t, "2025-06-01T12:00:00Z", r.CreatedAt)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)

	require.Len(t, r.Ingredients, 3)
	assert.Equal(t, "chicken broth", r.Ingredients[0].Name)
	assert.Equal(t, CategoryMeat, r.Ingredients[0].Category)
	assert.Nil(t, r.Ingredients[2].Quantity)

	require.Len(t, r.Instructions, 1)
	assert.Len(t, r.Instructions[0].Steps, 3)

	require.NotNil(t, r.Nutrition)
	assert.Equal(t, 240.0, r.Nutrition.Calories)
	assert.Equal(t, 12.0, r.Nutrition.ProteinG)
	assert.Equal(t, "imported", r.Nutrition.Source)

	// Keywords survive, and the classifier contributes its own labels.
	assert.Contains(t, r.Tags, "easy")
	assert.Contains(t, r.Tags, "comfort food")
	assert.Contains(t, r.Tags, "soup")
	assert.Contains(t, r.Tags, "chicken")
}

func TestAssembleMealTypesNeverNull(t *testing.T) {
	obj := map[string]interface{}{
		"@type":            "Recipe",
		"name":             "Fruit Medley",
		"recipeIngredient": []interface{}{"2 apples, cored"},
	}

	r, err := testAssembler().Assemble(obj, "https://example.com/x")
	require.NoError(t, err)

	// Nothing classifies, but the document shape stays an array.
	assert.NotNil(t, r.MealTypes)
	assert.Empty(t, r.MealTypes)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mealTypes":[]`)
	assert.NotContains(t, string(data), `"mealTypes":null`)
}

func TestAssembleMissingName(t *testing.T) {
	obj := soupSchema()
	delete(obj, "name")

	_, err := testAssembler().Assemble(obj, "https://example.com/x")
	assert.ErrorIs(t, err, common.ErrMissingName)
}

func TestAssembleNoIngredients(t *testing.T) {
	obj := soupSchema()
	obj["recipeIngredient"] = []interface{}{}

	_, err := testAssembler().Assemble(obj, "https://example.com/x")
	assert.ErrorIs(t, err, common.ErrNoIngredients)
}

func TestAssembleDecodesEntities(t *testing.T) {
	obj := soupSchema()
	obj["name"] = "Mac &amp; Cheese"
	obj["recipeIngredient"] = []interface{}{"2 cups elbow macaroni"}

	r, err := testAssembler().Assemble(obj, "https://example.com/x")
	require.NoError(t, err)
	assert.Equal(t, "Mac & Cheese", r.Name)
}

func TestAssembleCustomTags(t *testing.T) {
	obj := soupSchema()

	r, err := testAssembler("family favorite").Assemble(obj, "https://example.com/x")
	require.NoError(t, err)
	assert.Contains(t, r.Tags, "family favorite")
}

func TestParseYield(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"number", 6.0, 6},
		{"numeric string", "8", 8},
		{"string with unit", "4 servings", 4},
		{"array form", []interface{}{"4", "4 servings"}, 4},
		{"missing defaults", nil, 4},
		{"garbage defaults", "serves a crowd", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseYield(tt.value)
			assert.Equal(t, tt.want, got.Default)
			assert.Equal(t, "servings", got.Unit)
		})
	}
}

func TestAuthorName(t *testing.T) {
	assert.Equal(t, "Jane", authorName("Jane"))
	assert.Equal(t, "Jane", authorName(map[string]interface{}{"name": "Jane"}))
	assert.Equal(t, "", authorName(nil))
	assert.Equal(t, "", authorName(42))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "a.jpg", imageURL("a.jpg"))
	assert.Equal(t, "a.jpg", imageURL([]interface{}{"a.jpg", "b.jpg"}))
	assert.Equal(t, "a.jpg", imageURL([]interface{}{map[string]interface{}{"url": "a.jpg"}}))
	assert.Equal(t, "a.jpg", imageURL(map[string]interface{}{"@type": "ImageObject", "url": "a.jpg"}))
	assert.Equal(t, "", imageURL(nil))
	assert.Equal(t, "", imageURL([]interface{}{}))
}

func TestDedupeTags(t *testing.T) {
	got := dedupeTags([]string{"Easy", "easy", " easy ", "soup", "", "Soup"})
	assert.Equal(t, []string{"Easy", "soup"}, got)
}

func TestDedupeTagsCap(t *testing.T) {
	var tags []string
	for _, s := range strings.Split("a b c d e f g h i j k l m n o p q r", " ") {
		tags = append(tags, s)
	}
	assert.Len(t, dedupeTags(tags), 15)
}
