package recipe

import (
	"regexp"
	"strings"
	"time"

	"github.com/snoozie-v/dinner-sub000/internal/core/schema"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"
)

const (
	defaultServings   = 4
	defaultDifficulty = "medium"
	maxTags           = 15
	maxSlugLength     = 40
)

var leadingInt = regexp.MustCompile(`(\d+)`)

// Assembler composes normalized Recipe records from located schema objects.
// Custom tags come from configuration, never from ambient environment
// lookups, so assembly stays a pure function of its inputs.
type Assembler struct {
	customTags []string
	now        func() time.Time
}

// NewAssembler creates an assembler. customTags are appended to every
// assembled recipe before deduplication and truncation.
func NewAssembler(customTags []string) *Assembler {
	return &Assembler{
		customTags: customTags,
		now:        time.Now,
	}
}

// Assemble builds a Recipe from a located schema object and its source URL.
// A schema without a name, or whose ingredient lines all fail to parse,
// is rejected.
func (a *Assembler) Assemble(schemaObj map[string]interface{}, sourceURL string) (*Recipe, error) {
	name := schema.DecodeEntities(common.ToString(schemaObj["name"]))
	if name == "" {
		return nil, common.ErrMissingName
	}

	ingredients := parseIngredientList(schemaObj["recipeIngredient"])
	if len(ingredients) == 0 {
		return nil, common.ErrNoIngredients
	}

	now := a.now().UTC()

	r := &Recipe{
		ID:           recipeID(name),
		Name:         name,
		Description:  schema.DecodeEntities(common.ToString(schemaObj["description"])),
		Author:       authorName(schemaObj["author"]),
		ImageURL:     imageURL(schemaObj["image"]),
		PrepTime:     common.ToString(schemaObj["prepTime"]),
		CookTime:     common.ToString(schemaObj["cookTime"]),
		TotalTime:    common.ToString(schemaObj["totalTime"]),
		Difficulty:   defaultDifficulty,
		Servings:     parseYield(schemaObj["recipeYield"]),
		Cuisine:      schema.DecodeEntities(common.ToString(schemaObj["recipeCuisine"])),
		Ingredients:  ingredients,
		Instructions: ParseInstructions(schemaObj["recipeInstructions"]),
		Nutrition:    parseNutrition(schemaObj["nutrition"]),
		SourceURL:    sourceURL,
		IsCustom:     false,
		CreatedAt:    now.Format(time.RFC3339),
		UpdatedAt:    now.Format(time.RFC3339),
	}

	tags := keywordTags(schemaObj["keywords"])
	tags = append(tags, categoryTags(schemaObj["recipeCategory"])...)
	tags = append(tags, a.customTags...)
	r.Tags = dedupeTags(tags)

	// Like tags, mealTypes always marshals as an array, never null.
	r.MealTypes = InferMealTypes(r.Name, r.Tags, r.Ingredients)
	if r.MealTypes == nil {
		r.MealTypes = []string{}
	}
	r.Tags = dedupeTags(append(r.Tags, InferTags(r)...))

	return r, nil
}

// recipeID builds "slug(name)[:40]-random4".
func recipeID(name string) string {
	slug := common.Slugify(name)
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return slug + "-" + common.RandomSuffix(4)
}

func parseIngredientList(value interface{}) []Ingredient {
	lines, ok := value.([]interface{})
	if !ok {
		return nil
	}

	var ingredients []Ingredient
	for _, line := range lines {
		raw, ok := line.(string)
		if !ok {
			continue
		}
		if ing := ParseIngredient(schema.DecodeEntities(raw)); ing != nil {
			ingredients = append(ingredients, *ing)
		}
	}
	return ingredients
}

// authorName accepts either a plain string or a {name} object.
func authorName(value interface{}) string {
	switch v := value.(type) {
	case string:
		return schema.DecodeEntities(v)
	case map[string]interface{}:
		return schema.DecodeEntities(common.ToString(v["name"]))
	}
	return ""
}

// imageURL accepts a string, an array whose first element is a string or a
// {url} object, or a single {url} object.
func imageURL(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []interface{}:
		if len(v) == 0 {
			return ""
		}
		switch first := v[0].(type) {
		case string:
			return first
		case map[string]interface{}:
			return common.ToString(first["url"])
		}
	case map[string]interface{}:
		return common.ToString(v["url"])
	}
	return ""
}

// parseYield resolves recipeYield: numeric, a string carrying a leading
// integer, or the default of 4 servings.
func parseYield(value interface{}) Servings {
	servings := Servings{Default: defaultServings, Unit: "servings"}

	if n, ok := common.ToNumber(value); ok && n > 0 {
		servings.Default = int(n)
		return servings
	}

	switch v := value.(type) {
	case string:
		if m := leadingInt.FindString(v); m != "" {
			if n, ok := common.ToNumber(m); ok && n > 0 {
				servings.Default = int(n)
			}
		}
	case []interface{}:
		// Some sites publish yield as ["4", "4 servings"].
		if len(v) > 0 {
			if m := leadingInt.FindString(common.ToString(v[0])); m != "" {
				if n, ok := common.ToNumber(m); ok && n > 0 {
					servings.Default = int(n)
				}
			}
		}
	}

	return servings
}

// keywordTags accepts a comma-separated string or an array of strings.
func keywordTags(value interface{}) []string {
	switch v := value.(type) {
	case string:
		var tags []string
		for _, part := range strings.Split(v, ",") {
			if tag := schema.DecodeEntities(part); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	case []interface{}:
		var tags []string
		for _, el := range v {
			if tag := schema.DecodeEntities(common.ToString(el)); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	}
	return nil
}

// categoryTags folds recipeCategory values (string or array) into the tag
// list so the classifier can see them.
func categoryTags(value interface{}) []string {
	return keywordTags(value)
}

// dedupeTags removes case-insensitive duplicates, preserving first-seen
// order, and caps the list at 15 entries.
func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	deduped := make([]string, 0, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, strings.TrimSpace(tag))
		if len(deduped) == maxTags {
			break
		}
	}
	return deduped
}

var numberInText = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// parseNutrition maps a schema.org nutrition object onto imported nutrition
// facts. Unparsable values become zero rather than failing the recipe.
func parseNutrition(value interface{}) *Nutrition {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}

	return &Nutrition{
		Calories: nutritionNumber(obj["calories"]),
		ProteinG: nutritionNumber(obj["proteinContent"]),
		CarbsG:   nutritionNumber(obj["carbohydrateContent"]),
		FatG:     nutritionNumber(obj["fatContent"]),
		FiberG:   nutritionNumber(obj["fiberContent"]),
		Source:   "imported",
	}
}

// nutritionNumber extracts the first number from values like "240 calories"
// or "4 g", defaulting to zero.
func nutritionNumber(value interface{}) float64 {
	if n, ok := common.ToNumber(value); ok {
		return n
	}
	if s := common.ToString(value); s != "" {
		if m := numberInText.FindString(s); m != "" {
			if n, ok := common.ToNumber(m); ok {
				return n
			}
		}
	}
	return 0
}
