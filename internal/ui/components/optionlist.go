package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// OptionList renders the options of a question with a movable cursor.
// Answer state comes from the caller on every render; the list only owns
// the cursor.
type OptionList struct {
	Options []string
	Cursor  int
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update moves the cursor. Locked lists ignore input.
func (l OptionList) Update(msg tea.Msg, locked bool) OptionList {
	if locked {
		return l
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l
	}
	switch {
	case key.Matches(kmsg, KeyUp):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case key.Matches(kmsg, KeyDown):
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	}
	return l
}

// View renders every option. states holds one entry per option; a nil
// slice renders all options as unanswered with the cursor visible.
func (l OptionList) View(states []quiz.OptionState) string {
	answered := false
	for _, s := range states {
		if s != quiz.OptionDefault {
			answered = true
			break
		}
	}

	var b strings.Builder
	for i, opt := range l.Options {
		prefix := "  "
		if !answered && i == l.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		state := quiz.OptionDefault
		if i < len(states) {
			state = states[i]
		}

		var style lipgloss.Style
		switch {
		case state == quiz.OptionCorrect:
			style = theme.Correct
			line += "  ✓"
		case state == quiz.OptionIncorrect:
			style = theme.Incorrect
			line += "  ✗"
		case answered:
			style = theme.OptionDimmed
		case i == l.Cursor:
			style = theme.Cursor
		default:
			style = theme.OptionDefault
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
