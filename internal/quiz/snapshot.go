package quiz

import "fmt"

// Snapshot is a read-only view of the machine after an operation.
type Snapshot struct {
	State

	// RunID identifies the current run from Start/Restart to End.
	RunID string

	// Question is the current question. Nil unless Screen is ScreenPlaying.
	Question *Question

	// Total is the size of the question set.
	Total int
}

// HasSelection reports whether an answer is chosen for the current question.
func (s Snapshot) HasSelection() bool {
	return s.Selected != NoSelection
}

// CanAdvance reports whether NextQuestion is legal.
func (s Snapshot) CanAdvance() bool {
	return s.Screen == ScreenPlaying && s.HasSelection()
}

// AnsweredCorrectly reports whether the current selection is the correct option.
func (s Snapshot) AnsweredCorrectly() bool {
	return s.Question != nil && s.HasSelection() && s.Selected == s.Question.CorrectIndex
}

// OptionStates returns the visual state of every option of the current
// question, recomputed from the selection on each call.
func (s Snapshot) OptionStates() []OptionState {
	if s.Question == nil {
		return nil
	}
	states := make([]OptionState, len(s.Question.Options))
	for i := range s.Question.Options {
		states[i] = OptionVisualState(s.Selected, s.Question.CorrectIndex, i)
	}
	return states
}

// ScoreLine formats the score as "score / answered".
func (s Snapshot) ScoreLine() string {
	return fmt.Sprintf("%d / %d", s.Score, s.Answered)
}

// Accuracy returns Score/Answered, or 0 when nothing has been answered.
func (s Snapshot) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Answered)
}
