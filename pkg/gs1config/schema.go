package gs1config

// BuildDecodeOptionsJSONSchema returns a JSON-Schema (draft 2020-12
// subset) as a generic map, used both to validate an operator-supplied
// decode-options file and, incidentally, as documentation of the
// accepted shape.
func BuildDecodeOptionsJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"century_pivot":    map[string]any{"type": "integer", "minimum": 0, "maximum": 99},
			"allow_ambiguous":  map[string]any{"type": "boolean"},
			"max_alternatives": map[string]any{"type": "integer", "minimum": 0, "maximum": 50},
			"beam_width":       map[string]any{"type": "integer", "minimum": 1, "maximum": 5000},
			"max_iterations":   map[string]any{"type": "integer", "minimum": 1, "maximum": 200},
			"vendor_whitelist": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "pattern": `^9[0-9]$`},
			},
			"gs_characters": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
		},
	}
}
