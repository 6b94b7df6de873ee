package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	q := s.snap.Question
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No question on screen.")
	}

	var b strings.Builder

	// Info line.
	number := s.snap.Answered + 1
	if s.snap.HasSelection() {
		number = s.snap.Answered
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d", number))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(theme.Success).Render("Score"),
			s.snap.ScoreLine(),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Options, labeled from the current selection on every render.
	options := s.options.View(s.snap.OptionStates())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Render(options)))
	b.WriteString("\n")

	// Feedback.
	if s.snap.HasSelection() {
		var fb string
		if s.snap.AnsweredCorrectly() {
			fb = theme.Correct.Render("Correct!")
		} else {
			fb = theme.Incorrect.Render("Not quite.") + " " +
				theme.Body.Render(fmt.Sprintf("The answer is %s.", q.CorrectOption()))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n\n")
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(q.Options)))))
		b.WriteString("\n\n")
	}

	// Next is only active once an answer is chosen.
	buttons := components.NewButton("Next", s.snap.CanAdvance()).View() +
		"   " + components.NewButton("Finish", true).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))

	return b.String()
}
