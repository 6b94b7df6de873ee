package start

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// StartScreen is the welcome screen shown before the first question.
type StartScreen struct {
	machine *quiz.Machine
	log     *zap.Logger
	menu    components.Menu
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)
var _ screen.QuizView = (*StartScreen)(nil)

// New creates the start screen. playFactory builds the screen shown once the
// quiz starts; helpFactory builds the how-to-play screen.
func New(m *quiz.Machine, log *zap.Logger, playFactory, helpFactory func() screen.Screen) *StartScreen {
	s := &StartScreen{machine: m, log: log}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			snap := m.Start()
			log.Info("quiz started", zap.String("run_id", snap.RunID))
			next := playFactory()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}},
		{Label: "HOW TO PLAY", Action: func() tea.Cmd {
			help := helpFactory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: help} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return s
}

func (s *StartScreen) Init() tea.Cmd {
	return nil
}

func (s *StartScreen) Title() string {
	return "Welcome"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(components.KeyUp, components.KeyDown, components.KeyConfirm)
}

func (s *StartScreen) Snapshot() quiz.Snapshot {
	return s.machine.Snapshot()
}

func (s *StartScreen) Status() string {
	return ""
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *StartScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width), "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("How much do you know?")
	sections = append(sections, tagline)

	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(fmt.Sprintf("%d questions in the bank", s.machine.Snapshot().Total))
	sections = append(sections, count, "", s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
