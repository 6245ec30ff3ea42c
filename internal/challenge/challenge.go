// Package challenge assembles playable tests from the core pieces: the
// daily seed, the question selector, the bot simulator and the scorer.
// "Today" is always an explicit argument; nothing here reads a clock or
// keeps hidden state, so any test or replay can be rebuilt from its
// seed.
package challenge

import (
	"time"

	"github.com/google/uuid"

	"github.com/pathgenius/genius/internal/bot"
	"github.com/pathgenius/genius/internal/daily"
	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/scoring"
	"github.com/pathgenius/genius/internal/selection"
)

const (
	// DailyQuestionCount is the length of the daily IQ test.
	DailyQuestionCount = 10

	// ChallengeQuestionCount is the length of a genius challenge,
	// balanced across all categories.
	ChallengeQuestionCount = 15
)

// DailyTest is the seeded question set everyone sees on a given UTC day.
type DailyTest struct {
	ID        string
	Seed      int64
	Questions []question.Question
}

// BuildDailyTest selects today's test from the full bank. Repeated calls
// on the same UTC day return the same questions in the same order.
func BuildDailyTest(now time.Time, bank *question.Bank) DailyTest {
	seed := daily.Seed(now)
	picked, _, _ := selection.Select(bank.All(), DailyQuestionCount, seed)
	return DailyTest{
		ID:        daily.TestID(now),
		Seed:      seed,
		Questions: picked,
	}
}

// Run is one challenge attempt against a genius: the composed question
// set plus the opponent it will be scored against.
type Run struct {
	AttemptID string
	Seed      int64
	StartedAt time.Time
	Opponent  bot.Profile
	Questions []question.Question
}

// NewRun composes a challenge seeded by now's UTC date.
func NewRun(now time.Time, bank *question.Bank, opponent bot.Profile) *Run {
	return NewSeededRun(now, daily.Seed(now), bank, opponent)
}

// NewSeededRun composes a challenge from an explicit seed, for replays
// and rematches independent of the calendar.
func NewSeededRun(now time.Time, seed int64, bank *question.Bank, opponent bot.Profile) *Run {
	return &Run{
		AttemptID: uuid.NewString(),
		Seed:      seed,
		StartedAt: now,
		Opponent:  opponent,
		Questions: selection.Compose(bank.Pools(), ChallengeQuestionCount, seed),
	}
}

// Result is a finished challenge: both answer runs and their scores.
type Result struct {
	AttemptID   string
	Seed        int64
	Opponent    bot.Profile
	Questions   []question.Question
	UserAnswers []question.AnswerRecord
	BotAnswers  []question.AnswerRecord
	UserScore   int
	BotScore    int
	UserTime    int
	BotTime     int
	Outcome     scoring.Outcome
}

// Finish simulates the opponent over the run's questions, scores both
// sides and returns the comparison. Pure function of the run and the
// user's answers; calling it twice yields identical results.
func (r *Run) Finish(userAnswers []question.AnswerRecord) Result {
	botAnswers := bot.Simulate(r.Questions, r.Opponent)

	userScore := scoring.Total(userAnswers, r.Questions)
	botScore := scoring.Total(botAnswers, r.Questions)
	userTime := scoring.TotalTimeSeconds(userAnswers)
	botTime := scoring.TotalTimeSeconds(botAnswers)

	return Result{
		AttemptID:   r.AttemptID,
		Seed:        r.Seed,
		Opponent:    r.Opponent,
		Questions:   r.Questions,
		UserAnswers: userAnswers,
		BotAnswers:  botAnswers,
		UserScore:   userScore,
		BotScore:    botScore,
		UserTime:    userTime,
		BotTime:     botTime,
		Outcome:     scoring.Compare(userScore, botScore, userTime, botTime),
	}
}
