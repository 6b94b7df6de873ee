package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

var keyRestart = key.NewBinding(
	key.WithKeys("r"),
	key.WithHelp("R", "play again"),
)

// ResultsScreen shows the final score and offers a restart.
type ResultsScreen struct {
	machine     *quiz.Machine
	log         *zap.Logger
	playFactory func() screen.Screen
	snap        quiz.Snapshot
	menu        components.Menu
	status      string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.QuizView = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished quiz. playFactory builds the
// screen shown after a restart.
func New(m *quiz.Machine, log *zap.Logger, playFactory func() screen.Screen) *ResultsScreen {
	r := &ResultsScreen{
		machine:     m,
		log:         log,
		playFactory: playFactory,
		snap:        m.Snapshot(),
	}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: r.restart},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) Snapshot() quiz.Snapshot {
	return r.snap
}

func (r *ResultsScreen) Status() string {
	return r.status
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(components.KeyUp, components.KeyDown, components.KeyConfirm, keyRestart)
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keyRestart) {
		return r, r.restart()
	}
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) restart() tea.Cmd {
	snap, err := r.machine.Restart()
	if err != nil {
		r.status = err.Error()
		r.log.Error("restart rejected", zap.Error(err))
		return nil
	}
	r.snap = snap
	r.log.Info("quiz restarted", zap.String("run_id", snap.RunID))
	next := r.playFactory()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Verdict returns the closing line for an accuracy in [0, 1].
func Verdict(answered int, accuracy float64) string {
	switch {
	case answered == 0:
		return "No questions answered this time."
	case accuracy == 1:
		return "Perfect score!"
	case accuracy >= 0.75:
		return "Great job!"
	case accuracy >= 0.5:
		return "Nice work, keep going!"
	default:
		return "Keep practicing!"
	}
}

func (r *ResultsScreen) View(width, height int) string {
	snap := r.snap
	var b strings.Builder

	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("You scored %s", snap.ScoreLine())))
	b.WriteString("\n")

	if snap.Answered > 0 {
		barWidth := min(width-8, 50)
		center(components.NewProgressBar("Accuracy", snap.Accuracy(), barWidth).View())
		b.WriteString("\n")
	}

	center(theme.Subtitle.Render(Verdict(snap.Answered, snap.Accuracy())))
	b.WriteString("\n")

	center(r.menu.View())

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
