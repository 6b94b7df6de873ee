package quiz

// OptionState is how an option should be drawn.
type OptionState int

const (
	OptionDefault OptionState = iota
	OptionCorrect
	OptionIncorrect
)

func (s OptionState) String() string {
	switch s {
	case OptionCorrect:
		return "correct"
	case OptionIncorrect:
		return "incorrect"
	default:
		return "default"
	}
}

// OptionVisualState labels option given the selected and correct indexes.
// Before a selection every option is default. After one, the correct option
// is marked correct and a wrong selection is marked incorrect.
func OptionVisualState(selected, correct, option int) OptionState {
	if selected == NoSelection {
		return OptionDefault
	}
	switch option {
	case correct:
		return OptionCorrect
	case selected:
		return OptionIncorrect
	default:
		return OptionDefault
	}
}
