package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/router"
	"github.com/pathgenius/genius/internal/screen"
	"github.com/pathgenius/genius/internal/store"
	"github.com/pathgenius/genius/internal/ui/layout"
	"github.com/pathgenius/genius/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Err      error
}

// HistoryScreen displays past attempts, newest first.
type HistoryScreen struct {
	roster   *figures.Roster
	st       *store.Store
	attempts []store.AttemptRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(roster *figures.Roster, st *store.Store) *HistoryScreen {
	return &HistoryScreen{roster: roster, st: st}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.st == nil {
			return historyLoadedMsg{}
		}
		attempts, err := s.st.AttemptRepo().Recent(context.Background(), 50)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take the daily test!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		dateStr := a.FinishedAt.Format("Jan 02, 2006")

		var desc string
		switch a.Kind {
		case store.KindDaily:
			desc = fmt.Sprintf("daily %s  score %d  %d:%02d",
				a.TestID, a.UserScore, a.UserTimeSecs/60, a.UserTimeSecs%60)
		default:
			name := a.OpponentID
			if f, err := s.roster.Get(a.OpponentID); err == nil {
				name = f.Name
			}
			desc = fmt.Sprintf("vs %s  %d-%d  %s", name, a.UserScore, a.BotScore, outcomeWord(a.Outcome))
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s", prefix, dateStr, desc)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func outcomeWord(outcome int) string {
	switch {
	case outcome > 0:
		return "WIN"
	case outcome < 0:
		return "LOSS"
	default:
		return "DRAW"
	}
}
