package recipe

import (
	"regexp"
	"strings"
)

// categoryRule pairs a category label with its pattern family. The rules are
// evaluated strictly in slice order and the first match wins, so an
// ingredient like "chicken broth" lands in protein/meat before the pantry
// family is ever consulted. That precedence is documented behavior.
type categoryRule struct {
	category string
	pattern  *regexp.Regexp
}

var categoryRules = []categoryRule{
	{CategoryMeat, regexp.MustCompile(`\b(chicken|beef|pork|lamb|turkey|duck|veal|bacon|ham|sausage|chorizo|prosciutto|pepperoni|steak|brisket|ribs?|meatballs?|ground\s+(?:beef|turkey|pork|chicken))\b`)},
	{CategorySeafood, regexp.MustCompile(`\b(fish|salmon|tuna|shrimp|prawns?|cod|tilapia|halibut|trout|crab|lobster|scallops?|clams?|mussels?|oysters?|anchov(?:y|ies)|sardines?|calamari)\b`)},
	{CategoryDairy, regexp.MustCompile(`\b(milk|cheese|butter|cream|yogurt|yoghurt|mozzarella|cheddar|parmesan|feta|ricotta|goat cheese|cream cheese|half.and.half|buttermilk|eggs?)\b`)},
	{CategoryProduce, regexp.MustCompile(`\b(onions?|garlic|tomato(?:es)?|bell peppers?|jalape[ñn]os?|carrots?|celery|potato(?:es)?|lettuce|spinach|kale|arugula|broccoli|cauliflower|zucchini|squash|cucumbers?|mushrooms?|avocados?|lemons?|limes?|oranges?|apples?|bananas?|berr(?:y|ies)|strawberr(?:y|ies)|blueberr(?:y|ies)|cilantro|parsley|basil|mint|dill|chives|ginger|scallions?|shallots?|leeks?|cabbage|corn|peas|green beans|asparagus|eggplant|sweet potato(?:es)?)\b`)},
	{CategoryPantry, regexp.MustCompile(`\b(flour|sugar|rice|pasta|spaghetti|noodles?|oats?|oatmeal|quinoa|broth|stock|oil|olive oil|vinegar|breadcrumbs?|panko|cornstarch|corn starch|baking soda|baking powder|yeast|honey|maple syrup|molasses|lentils?|beans?|chickpeas?|nuts?|almonds?|walnuts?|pecans?|peanuts?|peanut butter|cashews?|chocolate|cocoa|vanilla(?:\s+extract)?|raisins?|dates?|couscous)\b`)},
	{CategorySpices, regexp.MustCompile(`\b(salt|peppercorns?|black pepper|white pepper|paprika|cumin|oregano|thyme|rosemary|sage|cinnamon|nutmeg|cloves|allspice|chili powder|cayenne|turmeric|coriander|curry powder|garam masala|bay lea(?:f|ves)|red pepper flakes|onion powder|garlic powder|italian seasoning|seasoning|pepper)\b`)},
	{CategoryCondiments, regexp.MustCompile(`\b(ketchup|mustard|mayonnaise|mayo|soy sauce|tamari|worcestershire|hot sauce|sriracha|salsa|bbq sauce|barbecue sauce|fish sauce|oyster sauce|hoisin|teriyaki|relish|dressing|tahini|pesto)\b`)},
	{CategoryBakery, regexp.MustCompile(`\b(bread|tortillas?|buns?|rolls?|bagels?|croissants?|pita|naan|baguette|english muffins?|crackers?)\b`)},
	{CategoryCanned, regexp.MustCompile(`\b(canned|tomato sauce|tomato paste|crushed tomatoes|diced tomatoes|coconut milk|condensed|evaporated milk|pumpkin puree)\b`)},
}

// GuessCategory classifies one ingredient name into the fixed category
// vocabulary. Unmatched names fall through to "other".
func GuessCategory(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(lower) {
			return rule.category
		}
	}
	return CategoryOther
}

// mealTypeRule pairs a meal-type label with its word-boundary-anchored
// pattern family. Exclusions are baked into the patterns themselves: the
// dessert family deliberately matches only compound pie forms so savory pot
// pies stay untagged.
type mealTypeRule struct {
	mealType string
	pattern  *regexp.Regexp
}

var mealTypeRules = []mealTypeRule{
	{MealBreakfast, regexp.MustCompile(`\bbreakfast\b|\bbrunch\b|\bpancakes?\b|\bwaffles?\b|\bomelet(?:te)?s?\b|\bfrench toast\b|\bgranola\b|\boatmeal\b|\bporridge\b|\bscrambled eggs?\b|\bfrittata\b|\bhash browns?\b|\bsmoothie\b`)},
	{MealLunch, regexp.MustCompile(`\blunch\b|\bsandwich(?:es)?\b|\bwraps?\b|\bpanini\b|\bsliders?\b|\btacos?\b|\bquesadillas?\b|\bsalads?\b|\bblt\b`)},
	{MealDinner, regexp.MustCompile(`\bdinner\b|\bsupper\b|\bcasseroles?\b|\broasts?\b|\blasagn[ea]\b|\bstir[ -]?fry\b|\bcurry\b|\btacos?\b|\benchiladas?\b|\bpot roast\b|\bmeatloaf\b|\bpaella\b|\brisotto\b|\bstews?\b|\bpot pies?\b|\bbolognese\b`)},
	{MealDessert, regexp.MustCompile(`\bdesserts?\b|\bcakes?\b|\bcookies?\b|\bbrownies?\b|\bice cream\b|\bcheesecake\b|\bpuddings?\b|\bcupcakes?\b|\btarts?\b|\bfudge\b|\bcobblers?\b|\bmacarons?\b|\b(?:apple|pumpkin|pecan|cherry|key lime|banana cream|lemon meringue) pie\b`)},
	{MealSnack, regexp.MustCompile(`\bsnacks?\b|\btrail mix\b|\bpopcorn\b|\bgranola bars?\b|\benergy (?:balls?|bites?)\b|\bhummus\b|\bparty mix\b`)},
}

// snackIndicators is the looser fallback family consulted only when no
// primary meal-type family matched.
var snackIndicators = regexp.MustCompile(`\bdips?\b|\bbites?\b|\bchips?\b|\bcrackers?\b|\bnuts?\b|\bpretzels?\b`)

// mainDishIndicators marks recipes that are almost certainly a main course:
// proteins, pasta, stews and similar anchors.
var mainDishIndicators = regexp.MustCompile(`\b(chicken|beef|pork|lamb|turkey|fish|salmon|shrimp|tofu|sausage|steak|pasta|spaghetti|noodles?|rice|stew|chili|gnocchi)\b`)

// InferMealTypes infers meal-type labels from the recipe name and tags.
// Descriptions are deliberately excluded: casual prose mentions ("great for
// breakfast!") cause false positives. Multiple labels are normal: "tacos"
// legitimately matches both lunch and dinner.
func InferMealTypes(name string, tags []string, ingredients []Ingredient) []string {
	surface := strings.ToLower(name + " " + strings.Join(tags, " "))

	var mealTypes []string
	for _, rule := range mealTypeRules {
		if rule.pattern.MatchString(surface) {
			mealTypes = append(mealTypes, rule.mealType)
		}
	}
	if len(mealTypes) > 0 {
		return mealTypes
	}

	// Fallback: snack indicators first, then main-dish anchors over the
	// name/tags and finally over ingredient names.
	if snackIndicators.MatchString(surface) {
		return []string{MealSnack}
	}
	if mainDishIndicators.MatchString(surface) {
		return []string{MealDinner}
	}
	for _, ing := range ingredients {
		if mainDishIndicators.MatchString(strings.ToLower(ing.Name)) {
			return []string{MealDinner}
		}
	}

	return nil
}

// tagRule describes one inferable tag. Patterns run against name+tags by
// default; nameOnly restricts them to the name, checkIngredients extends
// them to each ingredient name individually.
type tagRule struct {
	tag              string
	pattern          *regexp.Regexp
	checkIngredients bool
	nameOnly         bool
}

var tagRules = []tagRule{
	{tag: "italian", pattern: regexp.MustCompile(`\bitalian\b|\bpasta\b|\blasagn[ea]\b|\brisotto\b|\bgnocchi\b|\bbolognese\b|\bcarbonara\b`)},
	{tag: "mexican", pattern: regexp.MustCompile(`\bmexican\b|\btacos?\b|\bburritos?\b|\benchiladas?\b|\bquesadillas?\b|\bfajitas?\b|\bsalsa\b`)},
	{tag: "asian", pattern: regexp.MustCompile(`\basian\b|\bthai\b|\bchinese\b|\bjapanese\b|\bkorean\b|\bstir[ -]?fry\b|\bteriyaki\b|\bramen\b|\bsoy sauce\b|\bsesame oil\b`), checkIngredients: true},
	{tag: "spicy", pattern: regexp.MustCompile(`\bspicy\b|\bjalape[ñn]os?\b|\bsriracha\b|\bcayenne\b|\bchil[ie]s?\b|\bhot sauce\b`), checkIngredients: true},
	{tag: "soup", pattern: regexp.MustCompile(`\bsoups?\b|\bchowder\b|\bbisque\b|\bbroth\b`), nameOnly: true},
	{tag: "salad", pattern: regexp.MustCompile(`\bsalads?\b`), nameOnly: true},
	{tag: "pasta", pattern: regexp.MustCompile(`\bpastas?\b|\bspaghetti\b|\bpenne\b|\bfettuccine\b|\bnoodles?\b`), checkIngredients: true},
	{tag: "chicken", pattern: regexp.MustCompile(`\bchicken\b`), checkIngredients: true},
	{tag: "seafood", pattern: regexp.MustCompile(`\bseafood\b|\bfish\b|\bsalmon\b|\bshrimp\b|\btuna\b|\bcod\b|\bscallops?\b`), checkIngredients: true},
	{tag: "grilled", pattern: regexp.MustCompile(`\bgrilled?\b|\bbbq\b|\bbarbecued?\b`), nameOnly: true},
	{tag: "baked", pattern: regexp.MustCompile(`\bbaked\b|\broasted\b`), nameOnly: true},
	{tag: "slow-cooker", pattern: regexp.MustCompile(`\bslow[ -]?cooker\b|\bcrock[ -]?pot\b`)},
	{tag: "quick", pattern: regexp.MustCompile(`\bquick\b|\beasy\b|\b(?:15|20|30)[ -]?minute\b|\bweeknight\b`)},
	{tag: "healthy", pattern: regexp.MustCompile(`\bhealthy\b|\blow[ -]?carb\b|\bketo\b|\bwhole30\b|\bgluten[ -]?free\b`)},
}

// meatIndicators backs the vegetarian special case: the tag is added only
// when this family matches nothing anywhere on the recipe.
var meatIndicators = regexp.MustCompile(`\b(chicken|beef|pork|lamb|turkey|duck|veal|bacon|ham|sausage|chorizo|pepperoni|steak|brisket|ribs?|meatballs?|fish|salmon|tuna|shrimp|prawns?|crab|lobster|anchov(?:y|ies)|gelatin)\b`)

// InferTags returns the tags to add to a recipe, in rule order. Tags the
// recipe already carries (case-insensitively) are never repeated.
func InferTags(r *Recipe) []string {
	surface := strings.ToLower(r.Name + " " + strings.Join(r.Tags, " "))
	nameSurface := strings.ToLower(r.Name)

	var added []string
	for _, rule := range tagRules {
		if r.HasTag(rule.tag) || containsFold(added, rule.tag) {
			continue
		}

		text := surface
		if rule.nameOnly {
			text = nameSurface
		}

		matched := rule.pattern.MatchString(text)
		if !matched && rule.checkIngredients {
			for _, ing := range r.Ingredients {
				if rule.pattern.MatchString(strings.ToLower(ing.Name)) {
					matched = true
					break
				}
			}
		}
		if matched {
			added = append(added, rule.tag)
		}
	}

	// Vegetarian is inferred by absence: no meat anywhere, and at least one
	// ingredient so an empty recipe is never auto-tagged.
	if !r.HasTag("vegetarian") && !containsFold(added, "vegetarian") && len(r.Ingredients) > 0 && !hasMeat(r) {
		added = append(added, "vegetarian")
	}

	return added
}

func hasMeat(r *Recipe) bool {
	surface := strings.ToLower(r.Name + " " + strings.Join(r.Tags, " "))
	if meatIndicators.MatchString(surface) {
		return true
	}
	for _, ing := range r.Ingredients {
		if meatIndicators.MatchString(strings.ToLower(ing.Name)) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, el := range list {
		if strings.EqualFold(el, s) {
			return true
		}
	}
	return false
}
