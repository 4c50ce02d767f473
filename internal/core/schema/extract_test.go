package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONLD(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{"@type": "Organization", "name": "Example Kitchen"}</script>
<script TYPE='application/ld+json'>
{"@type": "Recipe", "name": "Weeknight Chili"}
</script>
</head><body></body></html>`

	candidates := ExtractJSONLD(page)

	require.Len(t, candidates, 2)
	assert.Equal(t, "Organization", candidates[0]["@type"])
	assert.Equal(t, "Weeknight Chili", candidates[1]["name"])
}

func TestExtractJSONLDFlattensArrays(t *testing.T) {
	page := `<script type="application/ld+json">
[{"@type": "WebSite"}, {"@type": "Recipe", "name": "Stew"}]
</script>`

	candidates := ExtractJSONLD(page)

	require.Len(t, candidates, 2)
	assert.Equal(t, "Recipe", candidates[1]["@type"])
}

func TestExtractJSONLDSkipsBrokenBlocks(t *testing.T) {
	page := `<script type="application/ld+json">{not valid json</script>
<script type="application/ld+json">{"@type": "Recipe", "name": "Survivor"}</script>
<script type="application/ld+json"></script>`

	candidates := ExtractJSONLD(page)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Survivor", candidates[0]["name"])
}

func TestExtractJSONLDIgnoresOtherScripts(t *testing.T) {
	page := `<script type="text/javascript">var a = {"@type": "Recipe"};</script>
<script>console.log("hi")</script>`

	assert.Empty(t, ExtractJSONLD(page))
}

func TestLocateRecipe(t *testing.T) {
	candidates := []map[string]interface{}{
		{"@type": "Organization"},
		{"@type": "Recipe", "name": "Direct Hit"},
	}

	located := LocateRecipe(candidates)
	require.NotNil(t, located)
	assert.Equal(t, "Direct Hit", located["name"])
}

func TestLocateRecipeTypeArray(t *testing.T) {
	candidates := []map[string]interface{}{
		{"@type": []interface{}{"Thing", "Recipe"}, "name": "Array Typed"},
	}

	located := LocateRecipe(candidates)
	require.NotNil(t, located)
	assert.Equal(t, "Array Typed", located["name"])
}

func TestLocateRecipeDescendsGraph(t *testing.T) {
	candidates := []map[string]interface{}{
		{
			"@context": "https://schema.org",
			"@graph": []interface{}{
				map[string]interface{}{"@type": "WebPage"},
				map[string]interface{}{"@type": "Recipe", "name": "Nested"},
			},
		},
	}

	located := LocateRecipe(candidates)
	require.NotNil(t, located)
	assert.Equal(t, "Nested", located["name"])
}

func TestLocateRecipeNone(t *testing.T) {
	candidates := []map[string]interface{}{
		{"@type": "Organization"},
		{"@graph": []interface{}{map[string]interface{}{"@type": "WebPage"}}},
	}

	assert.Nil(t, LocateRecipe(candidates))
	assert.Nil(t, LocateRecipe(nil))
}

func TestDecodeEntities(t *testing.T) {
	assert.Equal(t, "Mac & Cheese", DecodeEntities("Mac &amp; Cheese"))
	assert.Equal(t, "Crème brûlée", DecodeEntities("Cr&egrave;me br&ucirc;l&eacute;e"))
	assert.Equal(t, "1/2 cup", DecodeEntities("  1&#47;2 cup  "))
	assert.Equal(t, "", DecodeEntities("   "))
}
