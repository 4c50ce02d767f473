package recipe

import "strings"

// Ingredient categories used for shopping-list grouping. GuessCategory only
// ever returns one of these.
const (
	CategoryMeat       = "protein/meat"
	CategorySeafood    = "protein/seafood"
	CategoryDairy      = "dairy"
	CategoryProduce    = "produce"
	CategoryPantry     = "pantry"
	CategorySpices     = "spices"
	CategoryCondiments = "condiments"
	CategoryBakery     = "bakery"
	CategoryCanned     = "canned goods"
	CategoryOther      = "other"
)

// Meal-type labels. A recipe may carry several at once.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealDessert   = "dessert"
	MealSnack     = "snack"
)

// Recipe is the normalized record produced by the assembler and stored in
// the library document.
type Recipe struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Author       string               `json:"author,omitempty"`
	ImageURL     string               `json:"imageUrl,omitempty"`
	PrepTime     string               `json:"prepTime,omitempty"`
	CookTime     string               `json:"cookTime,omitempty"`
	TotalTime    string               `json:"totalTime,omitempty"`
	Difficulty   string               `json:"difficulty"`
	Servings     Servings             `json:"servings"`
	Tags         []string             `json:"tags"`
	MealTypes    []string             `json:"mealTypes"`
	Cuisine      string               `json:"cuisine,omitempty"`
	Ingredients  []Ingredient         `json:"ingredients"`
	Instructions []InstructionSection `json:"instructions"`
	Nutrition    *Nutrition           `json:"nutrition,omitempty"`
	SourceURL    string               `json:"sourceUrl"`
	IsCustom     bool                 `json:"isCustom"`
	CreatedAt    string               `json:"createdAt"`
	UpdatedAt    string               `json:"updatedAt"`
}

// Servings is the default serving count plus its unit.
type Servings struct {
	Default int    `json:"default"`
	Unit    string `json:"unit"`
}

// Ingredient is one parsed ingredient line. A nil Quantity means the amount
// was unspecified in the source ("salt to taste"); only the repairer ever
// turns that into a concrete zero.
type Ingredient struct {
	Name        string   `json:"name"`
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Preparation string   `json:"preparation,omitempty"`
	Category    string   `json:"category"`
	Optional    bool     `json:"optional"`
}

// InstructionSection groups ordered steps under a section heading.
type InstructionSection struct {
	Section string   `json:"section"`
	Steps   []string `json:"steps"`
}

// Nutrition holds imported per-serving nutrition facts. Unparsable source
// values default to zero.
type Nutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	Source   string  `json:"source"`
}

// QuantityOf returns a pointer to v, for building ingredient literals.
func QuantityOf(v float64) *float64 {
	return &v
}

// HasMealType reports whether r already carries the given meal type.
func (r *Recipe) HasMealType(mealType string) bool {
	for _, mt := range r.MealTypes {
		if mt == mealType {
			return true
		}
	}
	return false
}

// HasTag reports whether r already carries the tag, compared
// case-insensitively.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
