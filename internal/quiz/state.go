package quiz

// Screen is one of the three top-level views of the quiz.
type Screen int

const (
	ScreenStart   Screen = iota // Welcome screen, nothing answered yet
	ScreenPlaying               // A question is on screen
	ScreenEnd                   // Results
)

// String returns a lowercase name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenEnd:
		return "end"
	default:
		return "unknown"
	}
}

// NoSelection marks the absence of a selected option.
const NoSelection = -1

// State is the complete mutable quiz state.
type State struct {
	Screen        Screen
	Score         int
	Answered      int
	QuestionIndex int
	Selected      int
}

// initialState is the state on launch and after every reset.
func initialState() State {
	return State{
		Screen:   ScreenStart,
		Selected: NoSelection,
	}
}
