package challenge

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	chal "github.com/pathgenius/genius/internal/challenge"
	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/question"
)

func testBank(t *testing.T) *question.Bank {
	t.Helper()
	bank, err := question.Load()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	return bank
}

func testRoster(t *testing.T) *figures.Roster {
	t.Helper()
	roster, err := figures.Load()
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	return roster
}

func TestDaily_QuestionCount(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := NewDaily(now, testBank(t), nil)
	if len(s.questions) != chal.DailyQuestionCount {
		t.Errorf("question count = %d, want %d", len(s.questions), chal.DailyQuestionCount)
	}
	if s.Title() != "Daily Test" {
		t.Errorf("Title = %q, want %q", s.Title(), "Daily Test")
	}
}

func TestDaily_SameDaySameQuestions(t *testing.T) {
	bank := testBank(t)
	morning := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 1, 22, 30, 0, 0, time.UTC)

	a := NewDaily(morning, bank, nil)
	b := NewDaily(evening, bank, nil)

	if len(a.questions) != len(b.questions) {
		t.Fatalf("lengths differ: %d vs %d", len(a.questions), len(b.questions))
	}
	for i := range a.questions {
		if a.questions[i].ID != b.questions[i].ID {
			t.Errorf("question %d differs: %s vs %s", i, a.questions[i].ID, b.questions[i].ID)
		}
	}
}

func TestVersus_StartsAtPicker(t *testing.T) {
	s := NewVersus(time.Now(), testBank(t), testRoster(t), nil)
	if !s.picking {
		t.Error("expected versus screen to start at the opponent picker")
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty picker view")
	}
}

func TestVersus_PickStartsRun(t *testing.T) {
	s := NewVersus(time.Now(), testBank(t), testRoster(t), nil)

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = next.(*ChallengeScreen)

	if s.picking {
		t.Fatal("expected picking to end after Enter")
	}
	if s.run == nil {
		t.Fatal("expected a run to be composed")
	}
	if len(s.questions) != chal.ChallengeQuestionCount {
		t.Errorf("question count = %d, want %d", len(s.questions), chal.ChallengeQuestionCount)
	}
	if len(s.botAnswers) != len(s.questions) {
		t.Errorf("bot answers = %d, want %d", len(s.botAnswers), len(s.questions))
	}
}

func TestDaily_AnswerAdvances(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := NewDaily(now, testBank(t), nil)
	s.Init()

	// Submit whatever the current input offers.
	if s.mcActive {
		next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		s = next.(*ChallengeScreen)
	} else {
		s.recordAnswer(false)
	}

	if !s.showingFeedback {
		t.Fatal("expected feedback after submitting an answer")
	}
	if len(s.answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(s.answers))
	}

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = next.(*ChallengeScreen)
	if s.showingFeedback {
		t.Error("expected feedback dismissed")
	}
	if s.index != 1 {
		t.Errorf("index = %d, want 1", s.index)
	}
}

func TestQuitConfirm(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := NewDaily(now, testBank(t), nil)
	s.Init()

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = next.(*ChallengeScreen)
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation on Esc")
	}

	next, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = next.(*ChallengeScreen)
	if s.showingQuitConfirm {
		t.Error("expected Esc to cancel the confirmation")
	}
}

func TestCorrectIndex(t *testing.T) {
	q := question.Question{
		Options: []string{"12", "14", "16"},
		Answer:  "14",
	}
	if got := correctIndex(q); got != 1 {
		t.Errorf("correctIndex = %d, want 1", got)
	}

	typed := question.Question{Answer: "7"}
	if got := correctIndex(typed); got != -1 {
		t.Errorf("correctIndex on typed question = %d, want -1", got)
	}
}
