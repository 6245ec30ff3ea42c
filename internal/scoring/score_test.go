package scoring

import (
	"testing"

	"github.com/pathgenius/genius/internal/question"
)

var scoreQuestions = []question.Question{
	{ID: "q1", Points: 10, Answer: "A"},
	{ID: "q2", Points: 5, Answer: "B"},
}

func TestTotal_Basic(t *testing.T) {
	answers := []question.AnswerRecord{
		{QuestionID: "q1", IsCorrect: true},
		{QuestionID: "q2", IsCorrect: false},
	}
	if got := Total(answers, scoreQuestions); got != 10 {
		t.Errorf("Total = %d, want 10", got)
	}
}

func TestTotal_UnmatchedAnswerContributesNothing(t *testing.T) {
	answers := []question.AnswerRecord{
		{QuestionID: "q1", IsCorrect: true},
		{QuestionID: "q99", IsCorrect: true},
	}
	if got := Total(answers, scoreQuestions); got != 10 {
		t.Errorf("Total = %d, want 10", got)
	}
}

func TestTotal_DuplicateAnswersEachCount(t *testing.T) {
	answers := []question.AnswerRecord{
		{QuestionID: "q1", IsCorrect: true},
		{QuestionID: "q1", IsCorrect: true},
	}
	if got := Total(answers, scoreQuestions); got != 20 {
		t.Errorf("Total = %d, want 20 (duplicates are not deduped)", got)
	}
}

func TestTotal_Empty(t *testing.T) {
	if got := Total(nil, scoreQuestions); got != 0 {
		t.Errorf("Total(nil) = %d, want 0", got)
	}
	if got := Total([]question.AnswerRecord{{QuestionID: "q1", IsCorrect: true}}, nil); got != 0 {
		t.Errorf("Total with no questions = %d, want 0", got)
	}
}

func TestCorrectCount(t *testing.T) {
	answers := []question.AnswerRecord{
		{QuestionID: "q1", IsCorrect: true},
		{QuestionID: "q2", IsCorrect: false},
		{QuestionID: "q99", IsCorrect: true},
	}
	if got := CorrectCount(answers, scoreQuestions); got != 1 {
		t.Errorf("CorrectCount = %d, want 1", got)
	}
}

func TestTotalTimeSeconds(t *testing.T) {
	answers := []question.AnswerRecord{
		{QuestionID: "q1", TimeSpentSeconds: 4},
		{QuestionID: "q2", TimeSpentSeconds: 11},
	}
	if got := TotalTimeSeconds(answers); got != 15 {
		t.Errorf("TotalTimeSeconds = %d, want 15", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name                   string
		userScore, botScore    int
		userTime, botTime      int
		want                   Outcome
	}{
		{"higher score wins", 50, 40, 100, 50, OutcomeWin},
		{"lower score loses", 30, 40, 10, 50, OutcomeLoss},
		{"tie broken by faster time", 40, 40, 45, 60, OutcomeWin},
		{"tie broken by slower time", 40, 40, 80, 60, OutcomeLoss},
		{"full tie draws", 40, 40, 60, 60, OutcomeDraw},
	}
	for _, tt := range tests {
		got := Compare(tt.userScore, tt.botScore, tt.userTime, tt.botTime)
		if got != tt.want {
			t.Errorf("%s: Compare = %d, want %d", tt.name, got, tt.want)
		}
	}
}
