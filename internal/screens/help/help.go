package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

var keyBack = key.NewBinding(
	key.WithKeys("esc", "enter", "backspace"),
	key.WithHelp("Esc", "back"),
)

var rules = []string{
	"Each question has one correct answer.",
	"Pick an option with the arrows + Enter, or press its number.",
	"Your first pick counts. The right answer is shown in green.",
	"Press N for the next question, F to see your results.",
	"Questions are drawn at random and can come up again.",
}

// HelpScreen explains how to play.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a new HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "How to Play"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(keyBack)
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keyBack) {
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	var b strings.Builder
	for i, r := range rules {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("•"))
		b.WriteString(" ")
		b.WriteString(theme.Body.Render(r))
		if i < len(rules)-1 {
			b.WriteString("\n\n")
		}
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
