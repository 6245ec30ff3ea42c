package bot

import (
	"fmt"
	"testing"

	"github.com/pathgenius/genius/internal/question"
)

func testProfile() Profile {
	return Profile{
		ID:   "ada-lovelace",
		Name: "Ada Lovelace",
		AccuracyByCategory: map[question.Category]float64{
			question.CategoryVerbal:    0.80,
			question.CategoryNumerical: 0.95,
			question.CategorySpatial:   0.70,
			question.CategoryLogical:   0.90,
			question.CategoryMemory:    0.75,
			question.CategoryPattern:   0.85,
		},
		BaseResponseSeconds: 8,
	}
}

func testQuestions(n int) []question.Question {
	cats := question.AllCategories()
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:         fmt.Sprintf("q%02d", i),
			Category:   cats[i%len(cats)],
			Difficulty: i%5 + 1,
			Points:     10,
		}
	}
	return qs
}

func TestSimulate_Deterministic(t *testing.T) {
	qs := testQuestions(15)
	p := testProfile()

	a := Simulate(qs, p)
	b := Simulate(qs, p)

	if len(a) != 15 || len(b) != 15 {
		t.Fatalf("got %d and %d records, want 15", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimulate_RecordOrderMatchesQuestions(t *testing.T) {
	qs := testQuestions(10)
	records := Simulate(qs, testProfile())
	for i, rec := range records {
		if rec.QuestionID != qs[i].ID {
			t.Errorf("record %d references %s, want %s", i, rec.QuestionID, qs[i].ID)
		}
	}
}

func TestSimulate_DifferentProfilesDiffer(t *testing.T) {
	qs := testQuestions(30)
	a := Simulate(qs, testProfile())

	other := testProfile()
	other.ID = "nikola-tesla"
	b := Simulate(qs, other)

	same := true
	for i := range a {
		if a[i].IsCorrect != b[i].IsCorrect || a[i].TimeSpentSeconds != b[i].TimeSpentSeconds {
			same = false
			break
		}
	}
	if same {
		t.Error("two distinct opponents produced identical answer runs")
	}
}

func TestSimulate_TimeFloor(t *testing.T) {
	p := testProfile()
	p.BaseResponseSeconds = 0.5 // would round below the floor without it
	records := Simulate(testQuestions(20), p)
	for i, rec := range records {
		if rec.TimeSpentSeconds < MinResponseSeconds {
			t.Errorf("record %d: %ds below the %ds floor", i, rec.TimeSpentSeconds, MinResponseSeconds)
		}
	}
}

func TestSimulate_MissingCategoryUsesDefault(t *testing.T) {
	p := Profile{ID: "gap", BaseResponseSeconds: 10}
	qs := testQuestions(5)

	// Must not panic, and must draw against the documented default.
	records := Simulate(qs, p)
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	if got := p.Accuracy(question.CategoryVerbal); got != DefaultAccuracy {
		t.Errorf("Accuracy fallback = %v, want %v", got, DefaultAccuracy)
	}
}

func TestAdjustedAccuracy_Bounds(t *testing.T) {
	for _, base := range []float64{0.0, 0.15, 0.5, 0.85, 0.98, 1.0} {
		for difficulty := 1; difficulty <= 5; difficulty++ {
			acc := AdjustedAccuracy(base, difficulty)
			if acc < MinAccuracy || acc > MaxAccuracy {
				t.Errorf("AdjustedAccuracy(%v, %d) = %v, outside [%v, %v]",
					base, difficulty, acc, MinAccuracy, MaxAccuracy)
			}
		}
	}
}

func TestAdjustedAccuracy_DifficultyPenalty(t *testing.T) {
	tests := []struct {
		base       float64
		difficulty int
		want       float64
	}{
		{0.80, 3, 0.80}, // average difficulty: no change
		{0.80, 5, 0.68}, // -2*0.06
		{0.80, 1, 0.92}, // +2*0.06
		{0.10, 3, 0.15}, // clamped up
		{1.00, 1, 0.98}, // clamped down
	}
	for _, tt := range tests {
		got := AdjustedAccuracy(tt.base, tt.difficulty)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("AdjustedAccuracy(%v, %d) = %v, want %v", tt.base, tt.difficulty, got, tt.want)
		}
	}
}

func TestPseudoRandom_Range(t *testing.T) {
	for seed := int64(-500); seed < 500; seed++ {
		v := pseudoRandom(seed)
		if v < 0 || v >= 1 {
			t.Fatalf("pseudoRandom(%d) = %v, out of [0,1)", seed, v)
		}
	}
}
