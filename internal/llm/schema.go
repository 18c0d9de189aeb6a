package llm

// BuildLabelJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We ask the model for an object of this shape and validate the
// reply against the same schema locally.
func BuildLabelJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"titles": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"nr":         map[string]any{"type": "string"},
			"scale":      map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"titles"},
	}
}
