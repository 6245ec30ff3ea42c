package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank.json
var bankJSON []byte

// Bank holds the loaded question pools, keyed by category. It is
// immutable after load and safe for concurrent readers.
type Bank struct {
	pools map[Category][]Question
	byID  map[string]Question
	all   []Question
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load parses and validates the embedded question bank.
func Load() (*Bank, error) {
	return LoadBytes(bankJSON)
}

// LoadBytes parses a question bank from raw JSON, validating it against
// the bank schema first. Duplicate question ids are a content error.
func LoadBytes(data []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	schema, err := bankJSONSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question bank schema: %w", err)
	}

	var file struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	b := &Bank{
		pools: make(map[Category][]Question),
		byID:  make(map[string]Question),
	}
	for _, q := range file.Questions {
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		cat := CategoryOf(q)
		q.Category = cat
		b.byID[q.ID] = q
		b.pools[cat] = append(b.pools[cat], q)
		b.all = append(b.all, q)
	}
	return b, nil
}

// Pool returns the questions for one category. The returned slice is a
// copy; callers may reorder it freely.
func (b *Bank) Pool(c Category) []Question {
	pool := b.pools[c]
	out := make([]Question, len(pool))
	copy(out, pool)
	return out
}

// Pools returns a copy of every category pool.
func (b *Bank) Pools() map[Category][]Question {
	out := make(map[Category][]Question, len(b.pools))
	for c := range b.pools {
		out[c] = b.Pool(c)
	}
	return out
}

// All returns a copy of every question in the bank.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.all))
	copy(out, b.all)
	return out
}

// Get looks a question up by id.
func (b *Bank) Get(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Size returns the total number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.all)
}

// bankJSONSchema compiles the bank schema once and caches it.
func bankJSONSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go literals.
		// Round-trip through encoding/json to get a clean representation.
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-bank.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://question-bank.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile bank schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}
