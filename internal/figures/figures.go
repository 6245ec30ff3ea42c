// Package figures holds the roster of historical geniuses a player can
// challenge: opponent profiles plus the biography facts behind the
// review cards. Roster content is embedded at build time and validated
// on load, like the question bank.
package figures

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/pathgenius/genius/internal/bot"
	"github.com/pathgenius/genius/internal/question"
)

//go:embed roster.json
var rosterJSON []byte

// Figure is one historical genius: a challengeable opponent and the
// source of that figure's review cards.
type Figure struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Era                 string             `json:"era"`
	Field               string             `json:"field"`
	BaseResponseSeconds float64            `json:"base_response_seconds"`
	Accuracy            map[string]float64 `json:"accuracy"`
	Facts               []string           `json:"facts"`
}

// Profile converts the figure into a bot opponent profile.
func (f Figure) Profile() bot.Profile {
	acc := make(map[question.Category]float64, len(f.Accuracy))
	for k, v := range f.Accuracy {
		acc[question.Category(k)] = v
	}
	return bot.Profile{
		ID:                  f.ID,
		Name:                f.Name,
		AccuracyByCategory:  acc,
		BaseResponseSeconds: f.BaseResponseSeconds,
	}
}

// Roster is the loaded set of figures, ordered as authored.
type Roster struct {
	figures []Figure
	byID    map[string]Figure
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load parses and validates the embedded roster.
func Load() (*Roster, error) {
	return LoadBytes(rosterJSON)
}

// LoadBytes parses a roster from raw JSON after schema validation.
func LoadBytes(data []byte) (*Roster, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	schema, err := rosterJSONSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("roster schema: %w", err)
	}

	var file struct {
		Figures []Figure `json:"figures"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	r := &Roster{byID: make(map[string]Figure)}
	for _, f := range file.Figures {
		if _, dup := r.byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate figure id %q", f.ID)
		}
		r.byID[f.ID] = f
		r.figures = append(r.figures, f)
	}
	return r, nil
}

// All returns every figure in authored order.
func (r *Roster) All() []Figure {
	out := make([]Figure, len(r.figures))
	copy(out, r.figures)
	return out
}

// Get returns the figure with the given id.
func (r *Roster) Get(id string) (Figure, error) {
	f, ok := r.byID[id]
	if !ok {
		return Figure{}, fmt.Errorf("unknown figure %q", id)
	}
	return f, nil
}

// Size returns the number of figures in the roster.
func (r *Roster) Size() int {
	return len(r.figures)
}

// CardID returns the review card id for the i-th fact of a figure.
func CardID(figureID string, i int) string {
	return fmt.Sprintf("%s#%d", figureID, i)
}

// FactForCard resolves a review card id back to its figure and fact text.
func (r *Roster) FactForCard(cardID string) (Figure, string, error) {
	sep := strings.LastIndex(cardID, "#")
	if sep < 0 {
		return Figure{}, "", fmt.Errorf("malformed card id %q", cardID)
	}
	f, err := r.Get(cardID[:sep])
	if err != nil {
		return Figure{}, "", err
	}
	idx, err := strconv.Atoi(cardID[sep+1:])
	if err != nil || idx < 0 || idx >= len(f.Facts) {
		return Figure{}, "", fmt.Errorf("card id %q: no such fact", cardID)
	}
	return f, f.Facts[idx], nil
}

func rosterJSONSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := json.Marshal(rosterSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal roster schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse roster schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://roster.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://roster.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile roster schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// rosterSchema is the JSON schema the roster must satisfy.
var rosterSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"figures": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"name":  map[string]any{"type": "string", "minLength": 1},
					"era":   map[string]any{"type": "string"},
					"field": map[string]any{"type": "string"},
					"base_response_seconds": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
					},
					"accuracy": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":    "number",
							"minimum": 0,
							"maximum": 1,
						},
					},
					"facts": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
				},
				"required":             []any{"id", "name", "base_response_seconds", "accuracy", "facts"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"figures"},
	"additionalProperties": false,
}
