package challenge

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/pathgenius/genius/internal/bot"
	chal "github.com/pathgenius/genius/internal/challenge"
	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/review"
	"github.com/pathgenius/genius/internal/router"
	"github.com/pathgenius/genius/internal/scoring"
	"github.com/pathgenius/genius/internal/screen"
	"github.com/pathgenius/genius/internal/screens/summary"
	"github.com/pathgenius/genius/internal/store"
	"github.com/pathgenius/genius/internal/ui/components"
	"github.com/pathgenius/genius/internal/ui/layout"
)

// ChallengeScreen runs a daily test or a challenge against a genius.
type ChallengeScreen struct {
	bank   *question.Bank
	roster *figures.Roster
	st     *store.Store
	daily  bool

	// Opponent pick phase (versus mode only).
	picking   bool
	figureIdx int

	run        *chal.Run
	test       chal.DailyTest
	opponent   figures.Figure
	questions  []question.Question
	botAnswers []question.AnswerRecord
	index      int
	answers    []question.AnswerRecord

	mcActive bool
	mc       components.MultiChoice
	input    components.TextInput

	startedAt     time.Time
	questionStart time.Time
	elapsed       time.Duration

	showingFeedback    bool
	lastCorrect        bool
	showingQuitConfirm bool
	finished           bool
	errMsg             string
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// NewDaily creates the screen for today's seeded test.
func NewDaily(now time.Time, bank *question.Bank, st *store.Store) *ChallengeScreen {
	s := &ChallengeScreen{
		bank:  bank,
		st:    st,
		daily: true,
		test:  chal.BuildDailyTest(now, bank),
	}
	s.questions = s.test.Questions
	return s
}

// NewVersus creates the screen for a challenge, starting at the
// opponent picker.
func NewVersus(now time.Time, bank *question.Bank, roster *figures.Roster, st *store.Store) *ChallengeScreen {
	return &ChallengeScreen{
		bank:    bank,
		roster:  roster,
		st:      st,
		picking: true,
	}
}

func (s *ChallengeScreen) Init() tea.Cmd {
	if s.picking {
		return nil
	}
	return s.startPlay()
}

func (s *ChallengeScreen) Title() string {
	if s.daily {
		return "Daily Test"
	}
	return "Challenge"
}

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	if s.picking {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose opponent"},
			{Key: "Enter", Description: "Challenge"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case attemptSavedMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.NewVersus(msg.Result, s.opponent, msg.Vs),
			}
		}

	case dailySavedMsg:
		score := scoring.Total(s.answers, s.questions)
		correct := scoring.CorrectCount(s.answers, s.questions)
		timeSecs := scoring.TotalTimeSeconds(s.answers)
		testID := s.test.ID
		total := len(s.questions)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.NewDaily(testID, score, correct, total, timeSecs),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to the text input while answering a typed question.
	if s.playing() && !s.mcActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// playing reports whether a question is actively being answered.
func (s *ChallengeScreen) playing() bool {
	return !s.picking && !s.finished &&
		!s.showingFeedback && !s.showingQuitConfirm && s.errMsg == ""
}

func (s *ChallengeScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.picking || s.finished || s.errMsg != "" {
		return s, nil
	}
	s.elapsed = time.Since(s.startedAt)
	return s, tickCmd()
}

func (s *ChallengeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.picking {
		return s.handlePickKey(key)
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.finished {
		return s, nil
	}

	// Feedback overlay: any key advances.
	if s.showingFeedback {
		return s.advance()
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		if !s.mcActive {
			if s.input.Value() == "" {
				return s, nil
			}
			q := s.questions[s.index]
			s.recordAnswer(q.IsCorrect(s.input.Value()))
			return s, nil
		}
	}

	if s.mcActive {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			s.recordAnswer(s.mc.IsCorrect())
		}
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChallengeScreen) handlePickKey(key string) (screen.Screen, tea.Cmd) {
	all := s.roster.All()
	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.figureIdx > 0 {
			s.figureIdx--
		}
	case "down", "j":
		if s.figureIdx < len(all)-1 {
			s.figureIdx++
		}
	case "enter":
		if len(all) == 0 {
			return s, nil
		}
		s.opponent = all[s.figureIdx]
		s.run = chal.NewRun(time.Now(), s.bank, s.opponent.Profile())
		s.questions = s.run.Questions
		s.botAnswers = bot.Simulate(s.run.Questions, s.run.Opponent)
		s.picking = false
		return s, s.startPlay()
	}
	return s, nil
}

// startPlay begins the question loop.
func (s *ChallengeScreen) startPlay() tea.Cmd {
	s.startedAt = time.Now()
	prep := s.prepareQuestion()
	return tea.Batch(tickCmd(), prep)
}

// prepareQuestion sets up the input component for the current question.
func (s *ChallengeScreen) prepareQuestion() tea.Cmd {
	q := s.questions[s.index]
	s.questionStart = time.Now()
	if len(q.Options) > 0 {
		s.mcActive = true
		s.mc = components.NewMultiChoice(q.Prompt, q.Options, correctIndex(q))
		return nil
	}
	s.mcActive = false
	s.input = components.NewTextInput("Type your answer...", true, 12)
	return s.input.Init()
}

// correctIndex finds the position of the right answer among the options.
func correctIndex(q question.Question) int {
	for i, opt := range q.Options {
		if q.IsCorrect(opt) {
			return i
		}
	}
	return -1
}

// recordAnswer stores the answer with time spent and shows feedback.
func (s *ChallengeScreen) recordAnswer(correct bool) {
	q := s.questions[s.index]
	s.answers = append(s.answers, question.AnswerRecord{
		QuestionID:       q.ID,
		IsCorrect:        correct,
		TimeSpentSeconds: int(time.Since(s.questionStart).Seconds()),
	})
	s.lastCorrect = correct
	s.showingFeedback = true
}

// advance moves to the next question or ends the run.
func (s *ChallengeScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.index++
	if s.index >= len(s.questions) {
		s.finished = true
		return s, s.finishCmd()
	}
	return s, s.prepareQuestion()
}

// finishCmd scores the run and persists the attempt. Persistence errors
// are swallowed; the summary still shows.
func (s *ChallengeScreen) finishCmd() tea.Cmd {
	if s.daily {
		answers := s.answers
		questions := s.questions
		test := s.test
		st := s.st
		return func() tea.Msg {
			if st != nil {
				_ = st.AttemptRepo().Append(context.Background(), store.AttemptRecord{
					ID:           uuid.NewString(),
					Kind:         store.KindDaily,
					TestID:       test.ID,
					Seed:         test.Seed,
					UserScore:    scoring.Total(answers, questions),
					UserTimeSecs: scoring.TotalTimeSeconds(answers),
					FinishedAt:   time.Now(),
				})
			}
			return dailySavedMsg{}
		}
	}

	run := s.run
	answers := s.answers
	opponent := s.opponent
	st := s.st
	return func() tea.Msg {
		res := run.Finish(answers)

		var vs *store.VsRecord
		if st != nil {
			ctx := context.Background()
			_ = st.AttemptRepo().Append(ctx, store.AttemptRecord{
				ID:           res.AttemptID,
				Kind:         store.KindChallenge,
				Seed:         res.Seed,
				OpponentID:   opponent.ID,
				UserScore:    res.UserScore,
				BotScore:     res.BotScore,
				UserTimeSecs: res.UserTime,
				BotTimeSecs:  res.BotTime,
				Outcome:      int(res.Outcome),
				FinishedAt:   time.Now(),
			})

			// A win unlocks the opponent's biography cards for review.
			if res.Outcome == scoring.OutcomeWin {
				introduceCards(ctx, st, opponent)
			}

			if rec, err := st.AttemptRepo().Versus(ctx, opponent.ID); err == nil {
				vs = &rec
			}
		}

		return attemptSavedMsg{Result: res, Vs: vs}
	}
}

// introduceCards registers the figure's facts with the review scheduler.
// Already-known cards keep their schedule.
func introduceCards(ctx context.Context, st *store.Store, fig figures.Figure) {
	snap, err := st.ReviewRepo().Load(ctx)
	if err != nil {
		return
	}
	sched := review.NewScheduler(snap)
	now := time.Now()
	for i := range fig.Facts {
		sched.InitCard(figures.CardID(fig.ID, i), fig.ID, now)
	}
	_ = st.ReviewRepo().Save(ctx, sched.SnapshotData())
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
