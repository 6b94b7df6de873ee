package quiz

import "fmt"

// Question is a single multiple-choice question.
type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

// Validate checks that the question has at least two options and that the
// correct index points at one of them.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question has empty prompt")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q: need at least 2 options, got %d", q.Prompt, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q: correct index %d out of range [0, %d)",
			q.Prompt, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// clone returns a deep copy so callers cannot mutate the machine's set.
func (q Question) clone() Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}
