package recipe

import (
	"regexp"
	"strings"

	"github.com/snoozie-v/dinner-sub000/internal/core/schema"
)

const defaultSection = "Instructions"

var newlineRuns = regexp.MustCompile(`\n+`)

// ParseInstructions normalizes a schema.org recipeInstructions value (a
// plain string, an array of strings, or an array of HowToStep/HowToSection
// objects) into ordered sections of steps. Sections that end up with zero
// steps are dropped.
func ParseInstructions(value interface{}) []InstructionSection {
	var sections []InstructionSection

	switch v := value.(type) {
	case string:
		if steps := splitLines(v); len(steps) > 0 {
			sections = append(sections, InstructionSection{Section: defaultSection, Steps: steps})
		}

	case []interface{}:
		// Plain steps collected outside any named section accumulate here
		// and flush as their own "Instructions" section when a named
		// section begins, and once more after the loop.
		var loose []string
		flush := func() {
			if len(loose) > 0 {
				sections = append(sections, InstructionSection{Section: defaultSection, Steps: loose})
				loose = nil
			}
		}

		for _, el := range v {
			switch step := el.(type) {
			case string:
				if text := schema.DecodeEntities(step); text != "" {
					loose = append(loose, text)
				}

			case map[string]interface{}:
				if step["@type"] == "HowToSection" {
					items, ok := step["itemListElement"].([]interface{})
					if !ok {
						continue
					}
					flush()

					name := sectionName(step["name"])
					var steps []string
					for _, item := range items {
						if text := stepText(item); text != "" {
							steps = append(steps, text)
						}
					}
					if len(steps) > 0 {
						sections = append(sections, InstructionSection{Section: name, Steps: steps})
					}
					continue
				}

				if text, ok := step["text"].(string); ok {
					if decoded := schema.DecodeEntities(text); decoded != "" {
						loose = append(loose, decoded)
					}
					continue
				}

				// A bare name on a non-section object is a step, not a
				// heading.
				if name, ok := step["name"].(string); ok {
					if decoded := schema.DecodeEntities(name); decoded != "" {
						loose = append(loose, decoded)
					}
				}
			}
		}
		flush()
	}

	return sections
}

// splitLines breaks a newline-delimited instruction string into decoded,
// non-blank steps.
func splitLines(s string) []string {
	var steps []string
	for _, line := range newlineRuns.Split(s, -1) {
		if text := schema.DecodeEntities(line); text != "" {
			steps = append(steps, text)
		}
	}
	return steps
}

// sectionName resolves a HowToSection name, stripping a trailing colon.
func sectionName(v interface{}) string {
	name, _ := v.(string)
	name = strings.TrimSuffix(schema.DecodeEntities(name), ":")
	if name == "" {
		return defaultSection
	}
	return name
}

// stepText pulls the step text out of an itemListElement entry: a string,
// or an object's text or name field.
func stepText(item interface{}) string {
	switch s := item.(type) {
	case string:
		return schema.DecodeEntities(s)
	case map[string]interface{}:
		if text, ok := s["text"].(string); ok {
			return schema.DecodeEntities(text)
		}
		if name, ok := s["name"].(string); ok {
			return schema.DecodeEntities(name)
		}
	}
	return ""
}
