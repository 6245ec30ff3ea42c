package question

// bankSchema is the JSON schema every question bank must satisfy before
// it is accepted into the in-memory pools. Banks are build-time content,
// so a violation is a packaging error and fails the load.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"category": map[string]any{
						"type": "string",
						"enum": []any{"verbal", "numerical", "spatial", "logical", "memory", "pattern"},
					},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 5,
					},
					"points": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
				},
				"required":             []any{"id", "category", "difficulty", "points", "prompt", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}
