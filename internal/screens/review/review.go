package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathgenius/genius/internal/figures"
	rev "github.com/pathgenius/genius/internal/review"
	"github.com/pathgenius/genius/internal/router"
	"github.com/pathgenius/genius/internal/screen"
	"github.com/pathgenius/genius/internal/store"
	"github.com/pathgenius/genius/internal/ui/layout"
	"github.com/pathgenius/genius/internal/ui/theme"
)

type cardsLoadedMsg struct {
	Scheduler *rev.Scheduler
	Due       []string
	Err       error
}

// ReviewScreen walks through due biography cards one at a time.
type ReviewScreen struct {
	roster *figures.Roster
	st     *store.Store

	sched    *rev.Scheduler
	due      []string
	idx      int
	revealed bool
	hits     int
	misses   int
	loaded   bool
	done     bool
	errMsg   string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a new ReviewScreen.
func New(roster *figures.Roster, st *store.Store) *ReviewScreen {
	return &ReviewScreen{roster: roster, st: st}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.st == nil {
			return cardsLoadedMsg{Scheduler: rev.NewScheduler(nil)}
		}
		snap, err := s.st.ReviewRepo().Load(context.Background())
		if err != nil {
			return cardsLoadedMsg{Err: err}
		}
		sched := rev.NewScheduler(snap)
		return cardsLoadedMsg{Scheduler: sched, Due: sched.DueCards(time.Now())}
	}
}

func (s *ReviewScreen) Title() string {
	return "Review Cards"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if s.done || !s.loaded || len(s.due) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if !s.revealed {
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Y", Description: "Remembered"},
		{Key: "N", Description: "Forgot"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sched = msg.Scheduler
			s.due = msg.Due
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *ReviewScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" || key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.loaded {
		return s, nil
	}
	if s.done || len(s.due) == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if !s.revealed {
		if key == " " || key == "space" || key == "enter" {
			s.revealed = true
		}
		return s, nil
	}

	switch key {
	case "y", "Y":
		return s.record(true)
	case "n", "N":
		return s.record(false)
	}
	return s, nil
}

// record grades the current card and advances, saving at the end.
func (s *ReviewScreen) record(remembered bool) (screen.Screen, tea.Cmd) {
	s.sched.RecordReview(s.due[s.idx], remembered, time.Now())
	if remembered {
		s.hits++
	} else {
		s.misses++
	}

	s.revealed = false
	s.idx++
	if s.idx >= len(s.due) {
		s.done = true
		if s.st != nil {
			_ = s.st.ReviewRepo().Save(context.Background(), s.sched.SnapshotData())
		}
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading cards...")
	}
	if len(s.due) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No cards due. Defeat a genius to unlock more!")
	}
	if s.done {
		return s.viewDone(width)
	}
	return s.viewCard(width)
}

func (s *ReviewScreen) viewCard(width int) string {
	cardID := s.due[s.idx]
	fig, fact, err := s.roster.FactForCard(cardID)
	if err != nil {
		// Orphaned card, most likely from an edited roster. Skippable.
		fig = figures.Figure{Name: "Unknown"}
		fact = "(card no longer in the roster)"
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Card %d of %d", s.idx+1, len(s.due))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fig.Name))
	b.WriteString("\n\n")

	if !s.revealed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Can you recall a fact about this genius?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Space to reveal"))
		return b.String()
	}

	factBlock := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(fact)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, factBlock))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Did you remember it?  [Y] yes   [N] no"))

	return b.String()
}

func (s *ReviewScreen) viewDone(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Review complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Remembered: %d        Forgot: %d", s.hits, s.misses)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
