package schema

import (
	"html"
	"regexp"
	"strings"

	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"go.uber.org/zap"
)

// scriptPattern matches <script type="application/ld+json"> blocks. Tag and
// attribute matching is case-insensitive; attribute order around type is not.
var scriptPattern = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)

// DecodeEntities resolves named and numeric HTML entities and trims the
// result.
func DecodeEntities(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

// ExtractJSONLD scans raw HTML for ld+json script blocks and returns every
// parsed candidate object in document order. Blocks that fail to parse are
// skipped; top-level arrays are flattened into the candidate list.
func ExtractJSONLD(rawHTML string) []map[string]interface{} {
	var candidates []map[string]interface{}

	for _, match := range scriptPattern.FindAllStringSubmatch(rawHTML, -1) {
		body := strings.TrimSpace(match[1])
		if body == "" {
			continue
		}

		var parsed interface{}
		if err := common.ParseJSON(body, &parsed); err != nil {
			common.LogDebug("skipping unparsable ld+json block",
				zap.Error(err),
				zap.Int("block_length", len(body)),
			)
			continue
		}

		switch v := parsed.(type) {
		case []interface{}:
			for _, el := range v {
				if obj, ok := el.(map[string]interface{}); ok {
					candidates = append(candidates, obj)
				}
			}
		case map[string]interface{}:
			candidates = append(candidates, v)
		}
	}

	return candidates
}
