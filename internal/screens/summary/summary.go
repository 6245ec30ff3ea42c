package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chal "github.com/pathgenius/genius/internal/challenge"
	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/router"
	"github.com/pathgenius/genius/internal/scoring"
	"github.com/pathgenius/genius/internal/screen"
	"github.com/pathgenius/genius/internal/store"
	"github.com/pathgenius/genius/internal/ui/layout"
	"github.com/pathgenius/genius/internal/ui/theme"
)

// SummaryScreen displays the result of a finished attempt.
type SummaryScreen struct {
	daily bool

	// Daily test result.
	testID   string
	score    int
	correct  int
	total    int
	timeSecs int

	// Challenge result.
	res chal.Result
	fig figures.Figure
	vs  *store.VsRecord
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// NewDaily creates the summary for a finished daily test.
func NewDaily(testID string, score, correct, total, timeSecs int) *SummaryScreen {
	return &SummaryScreen{
		daily:    true,
		testID:   testID,
		score:    score,
		correct:  correct,
		total:    total,
		timeSecs: timeSecs,
	}
}

// NewVersus creates the summary for a finished challenge.
func NewVersus(res chal.Result, fig figures.Figure, vs *store.VsRecord) *SummaryScreen {
	return &SummaryScreen{
		res: res,
		fig: fig,
		vs:  vs,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.daily {
		return "Daily Result"
	}
	return "Challenge Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.daily {
		return s.viewDaily(width)
	}
	return s.viewVersus(width)
}

func (s *SummaryScreen) viewDaily(width int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Daily test %s complete!", s.testID)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d        Correct: %d/%d        Time: %s",
		s.score, s.correct, s.total, formatSecs(s.timeSecs))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Everyone gets the same questions today. Come back tomorrow!"))

	return b.String()
}

func (s *SummaryScreen) viewVersus(width int) string {
	var b strings.Builder

	b.WriteString("\n\n")

	var headline string
	var headlineColor = theme.Primary
	switch s.res.Outcome {
	case scoring.OutcomeWin:
		headline = fmt.Sprintf("You defeated %s!", s.fig.Name)
		headlineColor = theme.Success
	case scoring.OutcomeLoss:
		headline = fmt.Sprintf("%s wins this round", s.fig.Name)
		headlineColor = theme.Error
	default:
		headline = fmt.Sprintf("A draw with %s", s.fig.Name)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(headlineColor).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	youLine := fmt.Sprintf("  You        %3d pts   %s", s.res.UserScore, formatSecs(s.res.UserTime))
	botLine := fmt.Sprintf("  %-10s %3d pts   %s", s.fig.Name, s.res.BotScore, formatSecs(s.res.BotTime))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(youLine)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(botLine)))
	b.WriteString("\n\n")

	if s.vs != nil {
		record := fmt.Sprintf("Record vs %s: %dW %dL %dD",
			s.fig.Name, s.vs.Wins, s.vs.Losses, s.vs.Draws)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(record))
		b.WriteString("\n\n")
	}

	if s.res.Outcome == scoring.OutcomeWin && len(s.fig.Facts) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("New review cards unlocked!"))
		b.WriteString("\n")
		fact := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Italic(true).
			Render("Did you know? " + s.fig.Facts[0])
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fact))
		b.WriteString("\n")
	}

	return b.String()
}

func formatSecs(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
