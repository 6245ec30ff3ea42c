package figures

import (
	"testing"

	"github.com/pathgenius/genius/internal/question"
)

func TestLoad_EmbeddedRoster(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Size() == 0 {
		t.Fatal("roster is empty")
	}

	for _, f := range r.All() {
		// Every figure must cover the full category enumeration so bot
		// simulation never falls back to the default accuracy.
		for _, c := range question.AllCategories() {
			if _, ok := f.Accuracy[string(c)]; !ok {
				t.Errorf("figure %s missing accuracy for %s", f.ID, c)
			}
		}
		if len(f.Facts) == 0 {
			t.Errorf("figure %s has no review facts", f.ID)
		}
	}
}

func TestGet(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	f, err := r.Get("ada-lovelace")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if f.Name != "Ada Lovelace" {
		t.Errorf("Name = %q", f.Name)
	}

	if _, err := r.Get("isaac-newton"); err == nil {
		t.Error("expected error for unknown figure")
	}
}

func TestProfile_Conversion(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f, err := r.Get("srinivasa-ramanujan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	p := f.Profile()
	if p.ID != f.ID || p.Name != f.Name {
		t.Errorf("profile identity mismatch: %+v", p)
	}
	if p.Accuracy(question.CategoryNumerical) != 0.97 {
		t.Errorf("numerical accuracy = %v, want 0.97", p.Accuracy(question.CategoryNumerical))
	}
}

func TestLoadBytes_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty figures", `{"figures": []}`},
		{"missing facts", `{"figures": [{"id": "x", "name": "X", "base_response_seconds": 5, "accuracy": {}}]}`},
		{"accuracy above one", `{"figures": [{"id": "x", "name": "X", "base_response_seconds": 5, "accuracy": {"verbal": 1.2}, "facts": ["f"]}]}`},
		{"zero response time", `{"figures": [{"id": "x", "name": "X", "base_response_seconds": 0, "accuracy": {}, "facts": ["f"]}]}`},
	}
	for _, tt := range tests {
		if _, err := LoadBytes([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestLoadBytes_DuplicateID(t *testing.T) {
	data := `{"figures": [
		{"id": "x", "name": "X", "base_response_seconds": 5, "accuracy": {"verbal": 0.5}, "facts": ["f"]},
		{"id": "x", "name": "Y", "base_response_seconds": 6, "accuracy": {"verbal": 0.6}, "facts": ["g"]}
	]}`
	if _, err := LoadBytes([]byte(data)); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestFactForCard(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fig := r.All()[0]

	cardID := CardID(fig.ID, 1)
	got, fact, err := r.FactForCard(cardID)
	if err != nil {
		t.Fatalf("FactForCard(%q): %v", cardID, err)
	}
	if got.ID != fig.ID {
		t.Errorf("figure = %q, want %q", got.ID, fig.ID)
	}
	if fact != fig.Facts[1] {
		t.Errorf("fact = %q, want %q", fact, fig.Facts[1])
	}
}

func TestFactForCard_Malformed(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fig := r.All()[0]

	for _, id := range []string{"no-separator", "unknown#0", CardID(fig.ID, 99), fig.ID + "#x"} {
		if _, _, err := r.FactForCard(id); err == nil {
			t.Errorf("FactForCard(%q): expected error", id)
		}
	}
}
