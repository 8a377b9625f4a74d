package problemgen

// problemFileSchema is the JSON Schema a problem file must satisfy:
// a non-empty array of {id, text} objects.
var problemFileSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "integer",
				"description": "Problem identifier, unique within the file",
			},
			"text": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Display text, expression plus trailing '= ' marker",
			},
		},
		"required":             []any{"id", "text"},
		"additionalProperties": false,
	},
}
