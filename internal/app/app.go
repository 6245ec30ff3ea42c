package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/router"
	"github.com/pathgenius/genius/internal/screen"
	"github.com/pathgenius/genius/internal/screens/home"
	"github.com/pathgenius/genius/internal/store"
	"github.com/pathgenius/genius/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Bank   *question.Bank
	Roster *figures.Roster
	Store  *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	wins   int
	losses int
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	var wins, losses int
	if opts.Store != nil && opts.Roster != nil {
		ctx := context.Background()
		for _, f := range opts.Roster.All() {
			vs, err := opts.Store.AttemptRepo().Versus(ctx, f.ID)
			if err != nil {
				continue
			}
			wins += vs.Wins
			losses += vs.Losses
		}
	}

	homeScreen := home.New(opts.Bank, opts.Roster, opts.Store)
	return AppModel{
		router: router.New(homeScreen),
		wins:   wins,
		losses: losses,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Esc is handled by each screen so mid-run confirmations work.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.wins, m.losses, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
