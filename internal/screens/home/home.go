package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/review"
	"github.com/pathgenius/genius/internal/router"
	"github.com/pathgenius/genius/internal/screen"
	challengescreen "github.com/pathgenius/genius/internal/screens/challenge"
	"github.com/pathgenius/genius/internal/screens/history"
	reviewscreen "github.com/pathgenius/genius/internal/screens/review"
	"github.com/pathgenius/genius/internal/store"
	"github.com/pathgenius/genius/internal/ui/components"
	"github.com/pathgenius/genius/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	wins       int
	losses     int
	reviewsDue int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(bank *question.Bank, roster *figures.Roster, st *store.Store) *HomeScreen {
	var wins, losses, reviewsDue int
	if st != nil {
		ctx := context.Background()
		for _, f := range roster.All() {
			vs, err := st.AttemptRepo().Versus(ctx, f.ID)
			if err != nil {
				continue
			}
			wins += vs.Wins
			losses += vs.Losses
		}
		if snap, err := st.ReviewRepo().Load(ctx); err == nil {
			sched := review.NewScheduler(snap)
			reviewsDue = len(sched.DueCards(time.Now()))
		}
	}

	items := []components.MenuItem{
		{Label: "DAILY TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: challengescreen.NewDaily(time.Now(), bank, st),
				}
			}
		}},
		{Label: "CHALLENGE A GENIUS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: challengescreen.NewVersus(time.Now(), bank, roster, st),
				}
			}
		}},
		{Label: "REVIEW CARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(roster, st)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(roster, st)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		wins:       wins,
		losses:     losses,
		reviewsDue: reviewsDue,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("PATH OF A GENIUS"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Match wits with history's greatest minds"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Record: %d W / %d L", h.wins, h.losses)
	if h.reviewsDue > 0 {
		stats += fmt.Sprintf("        %d review cards due", h.reviewsDue)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
