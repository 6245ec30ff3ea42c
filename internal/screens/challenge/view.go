package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/scoring"
	"github.com/pathgenius/genius/internal/ui/theme"
)

func (s *ChallengeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.picking {
		return s.renderPicker(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.finished {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Scoring...")
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderPicker renders the opponent selection list.
func (s *ChallengeScreen) renderPicker(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Choose your opponent"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, f := range s.roster.All() {
		prefix := "  "
		line := fmt.Sprintf("%s%-22s %-14s %s", prefix, f.Name, f.Era, f.Field)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.figureIdx {
			line = fmt.Sprintf("▸ %-22s %-14s %s", f.Name, f.Era, f.Field)
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		list.WriteString(style.Render(line))
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))
	return b.String()
}

// renderQuestion renders the active question display.
func (s *ChallengeScreen) renderQuestion(width int) string {
	q := s.questions[s.index]

	var b strings.Builder

	userScore := scoring.Total(s.answers, s.questions)
	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60

	var infoLeft string
	if s.daily {
		infoLeft = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("  Daily Test %s", s.test.ID))
	} else {
		infoLeft = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("  vs %s", s.opponent.Name))
	}

	right := fmt.Sprintf("Q %d/%d  You %d", s.index+1, len(s.questions), userScore)
	if !s.daily {
		botScore := scoring.Total(s.botAnswersSoFar(), s.questions)
		right += fmt.Sprintf("  %s %d", s.opponent.Name, botScore)
	}
	right += fmt.Sprintf("  %d:%02d", mins, secs)
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	catLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · difficulty %d · %d pts", q.Category, q.Difficulty, q.Points))
	b.WriteString(catLine)
	b.WriteString("\n\n")

	if s.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Prompt))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	return b.String()
}

// botAnswersSoFar returns the opponent's answers for questions the
// player has already passed, for the live score display.
func (s *ChallengeScreen) botAnswersSoFar() []question.AnswerRecord {
	if s.index > len(s.botAnswers) {
		return s.botAnswers
	}
	return s.botAnswers[:s.index]
}

// renderFeedback renders the correct/incorrect overlay.
func (s *ChallengeScreen) renderFeedback(width int) string {
	q := s.questions[s.index]

	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct!  +%d pts", q.Points)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.Answer)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this attempt?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing will be recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
