package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/screens/help"
	"github.com/abhisek/quizbox/internal/screens/play"
	"github.com/abhisek/quizbox/internal/screens/results"
	"github.com/abhisek/quizbox/internal/screens/start"
	"github.com/abhisek/quizbox/internal/ui/layout"
)

var (
	keyQuit = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("Q", "quit"),
	)
	keyBack = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	)
)

// Options holds the dependencies for the app.
type Options struct {
	Machine *quiz.Machine
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel wires the quiz screens together and starts on the welcome screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := opts.Machine

	var newPlay, newResults func() screen.Screen
	newPlay = func() screen.Screen { return play.New(m, log, newResults) }
	newResults = func() screen.Screen { return results.New(m, log, newPlay) }
	newHelp := func() screen.Screen { return help.New() }

	return AppModel{
		router: router.New(start.New(m, log, newPlay, newHelp)),
		log:    log,
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
		switch {
		case key.Matches(msg, keyQuit):
			m.log.Debug("quit requested")
			return m, tea.Quit
		case key.Matches(msg, keyBack) && m.router.Depth() > 1:
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

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

	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer.
func (m AppModel) render() string {
	active := m.router.Active()

	title, scoreLine, status := "", "", ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
		if qv, ok := active.(screen.QuizView); ok {
			snap := qv.Snapshot()
			if snap.Screen != quiz.ScreenStart {
				scoreLine = snap.ScoreLine()
			}
			status = qv.Status()
		}
	}
	hints = append(hints, layout.HintsFor(keyQuit)...)

	header := layout.RenderHeader(title, scoreLine, m.width)
	footer := layout.RenderFooter(hints, status, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
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
