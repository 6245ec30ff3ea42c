package challenge

import (
	"testing"
	"time"

	"github.com/pathgenius/genius/internal/bot"
	"github.com/pathgenius/genius/internal/question"
)

func testBank(t *testing.T) *question.Bank {
	t.Helper()
	b, err := question.Load()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	return b
}

func testOpponent() bot.Profile {
	return bot.Profile{
		ID:                  "marie-curie",
		Name:                "Marie Curie",
		AccuracyByCategory:  map[question.Category]float64{},
		BaseResponseSeconds: 8,
	}
}

func TestBuildDailyTest_StableWithinDay(t *testing.T) {
	bank := testBank(t)
	morning := time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 5, 20, 22, 45, 0, 0, time.UTC)

	a := BuildDailyTest(morning, bank)
	b := BuildDailyTest(evening, bank)

	if a.ID != b.ID || a.Seed != b.Seed {
		t.Fatalf("same day produced different tests: %+v vs %+v", a, b)
	}
	if len(a.Questions) != DailyQuestionCount {
		t.Fatalf("got %d questions, want %d", len(a.Questions), DailyQuestionCount)
	}
	for i := range a.Questions {
		if a.Questions[i].ID != b.Questions[i].ID {
			t.Fatalf("question %d differs: %s vs %s", i, a.Questions[i].ID, b.Questions[i].ID)
		}
	}
}

func TestBuildDailyTest_ChangesAcrossDays(t *testing.T) {
	bank := testBank(t)
	day1 := BuildDailyTest(time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC), bank)
	day2 := BuildDailyTest(time.Date(2026, 5, 21, 12, 0, 0, 0, time.UTC), bank)

	if day1.Seed == day2.Seed {
		t.Fatal("consecutive days share a seed")
	}
	same := true
	for i := range day1.Questions {
		if day1.Questions[i].ID != day2.Questions[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Error("consecutive days produced identical question order")
	}
}

func TestNewSeededRun_Composition(t *testing.T) {
	bank := testBank(t)
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

	run := NewSeededRun(now, 424242, bank, testOpponent())
	if len(run.Questions) != ChallengeQuestionCount {
		t.Fatalf("got %d questions, want %d", len(run.Questions), ChallengeQuestionCount)
	}
	if run.AttemptID == "" {
		t.Error("missing attempt id")
	}

	// Same seed recomposes the same set regardless of attempt identity.
	again := NewSeededRun(now, 424242, bank, testOpponent())
	for i := range run.Questions {
		if run.Questions[i].ID != again.Questions[i].ID {
			t.Fatalf("question %d differs between identically seeded runs", i)
		}
	}
	if run.AttemptID == again.AttemptID {
		t.Error("attempt ids should be unique per run")
	}
}

func TestFinish_ScoresBothSides(t *testing.T) {
	bank := testBank(t)
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	run := NewRun(now, bank, testOpponent())

	// Answer everything correctly and instantly-ish.
	answers := make([]question.AnswerRecord, len(run.Questions))
	var wantScore int
	for i, q := range run.Questions {
		answers[i] = question.AnswerRecord{QuestionID: q.ID, IsCorrect: true, TimeSpentSeconds: 2}
		wantScore += q.Points
	}

	res := run.Finish(answers)
	if res.UserScore != wantScore {
		t.Errorf("UserScore = %d, want %d", res.UserScore, wantScore)
	}
	if len(res.BotAnswers) != len(run.Questions) {
		t.Errorf("got %d bot answers, want %d", len(res.BotAnswers), len(run.Questions))
	}
	if res.BotScore > res.UserScore {
		t.Errorf("bot outscored a perfect run: %d > %d", res.BotScore, res.UserScore)
	}

	// Replay stability: finishing again yields the same bot run.
	res2 := run.Finish(answers)
	if res2.BotScore != res.BotScore || res2.BotTime != res.BotTime {
		t.Errorf("replay diverged: (%d,%d) vs (%d,%d)",
			res.BotScore, res.BotTime, res2.BotScore, res2.BotTime)
	}
}
