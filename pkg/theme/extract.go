package theme

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extract parses an external theme export into a palette. It never fails:
// structured parsing (JSON, then YAML) is attempted first, then a line-based
// key=value format, and any field that no tier can fill keeps its built-in
// default.
func Extract(text string) Colors {
	if doc, ok := parseStructured(text); ok {
		return extractStructured(doc)
	}
	return extractLines(text)
}

// parseStructured decodes text as a JSON object or a YAML mapping. Scalar and
// list documents do not count; the extractor needs keyed lookups.
func parseStructured(text string) (map[string]interface{}, bool) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(text), &doc); err == nil && doc != nil {
		return doc, true
	}
	doc = nil
	if err := yaml.Unmarshal([]byte(text), &doc); err == nil && doc != nil {
		return doc, true
	}
	return nil, false
}

func extractStructured(doc map[string]interface{}) Colors {
	// Nested export (matugen-style): a "colors" section keyed by color role,
	// recognized by the presence of colors.primary.
	if section, ok := doc["colors"].(map[string]interface{}); ok {
		if _, ok := section["primary"]; ok {
			return Colors{
				Background: pickColor(section, []string{"surface", "background"}, DefaultBackground),
				Primary:    pickColor(section, []string{"primary"}, DefaultPrimary),
				Secondary:  pickColor(section, []string{"secondary", "tertiary"}, DefaultSecondary),
				Text:       pickColor(section, []string{"on_surface", "on_background", "text"}, DefaultText),
				Danger:     pickColor(section, []string{"error", "danger"}, DefaultDanger),
			}
		}
	}

	// Flat export: the five roles as top-level keys.
	return Colors{
		Background: pickColor(doc, []string{"background"}, DefaultBackground),
		Primary:    pickColor(doc, []string{"primary"}, DefaultPrimary),
		Secondary:  pickColor(doc, []string{"secondary"}, DefaultSecondary),
		Text:       pickColor(doc, []string{"text"}, DefaultText),
		Danger:     pickColor(doc, []string{"danger"}, DefaultDanger),
	}
}

// pickColor returns the first candidate key that resolves to a non-empty
// string, either directly or through a nested object's "hex" field.
func pickColor(doc map[string]interface{}, keys []string, fallback string) string {
	for _, key := range keys {
		value, ok := doc[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]interface{}:
			if hex, ok := v["hex"].(string); ok && hex != "" {
				return hex
			}
		}
	}
	return fallback
}

// extractLines parses the simple "key = value" format: blank lines and
// #-comments are skipped, keys are lowercased, values lose surrounding
// quotes, and only the five known keys are recognized.
func extractLines(text string) Colors {
	colors := DefaultColors()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if value == "" {
			continue
		}

		switch key {
		case "background":
			colors.Background = value
		case "primary":
			colors.Primary = value
		case "secondary":
			colors.Secondary = value
		case "text":
			colors.Text = value
		case "danger":
			colors.Danger = value
		}
	}

	return colors
}
