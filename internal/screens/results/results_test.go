package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "play" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// finishedMachine plays one correct and one wrong answer, then finishes.
func finishedMachine(t *testing.T) *quiz.Machine {
	t.Helper()
	m, err := quiz.New([]quiz.Question{{
		Prompt:       "What is the capital of France?",
		Options:      []string{"Paris", "London", "Berlin"},
		CorrectIndex: 0,
	}})
	if err != nil {
		t.Fatalf("quiz.New: %v", err)
	}
	m.Start()
	steps := []func() (quiz.Snapshot, error){
		func() (quiz.Snapshot, error) { return m.SelectAnswer(0) },
		m.NextQuestion,
		func() (quiz.Snapshot, error) { return m.SelectAnswer(1) },
		m.Finish,
	}
	for i, step := range steps {
		if _, err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return m
}

func testResults(t *testing.T) (*ResultsScreen, *quiz.Machine) {
	t.Helper()
	m := finishedMachine(t)
	return New(m, zap.NewNop(), func() screen.Screen { return &stubScreen{} }), m
}

func TestResultsScreen_Title(t *testing.T) {
	r, _ := testResults(t)
	if r.Title() != "Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Results")
	}
}

func TestResultsScreen_View(t *testing.T) {
	r, _ := testResults(t)
	view := r.View(80, 24)
	for _, want := range []string{"Quiz complete!", "You scored 1 / 2", "50%", "PLAY AGAIN"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_RestartKey(t *testing.T) {
	r, m := testResults(t)
	_, cmd := r.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a command on restart")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}

	snap := m.Snapshot()
	if snap.Screen != quiz.ScreenPlaying || snap.Score != 0 || snap.Answered != 0 {
		t.Errorf("after restart: screen=%v score=%s", snap.Screen, snap.ScoreLine())
	}
}

func TestResultsScreen_RestartMenu(t *testing.T) {
	r, m := testResults(t)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from PLAY AGAIN")
	}
	if m.Snapshot().Screen != quiz.ScreenPlaying {
		t.Error("expected machine to be playing after PLAY AGAIN")
	}
}

func TestResultsScreen_QuitMenu(t *testing.T) {
	r, _ := testResults(t)
	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestResultsScreen_RestartRejected(t *testing.T) {
	r, m := testResults(t)
	m.Start() // machine is playing again behind the screen's back

	_, cmd := r.Update(keyPress('r'))
	if cmd != nil {
		t.Error("expected no navigation when restart is rejected")
	}
	if r.Status() == "" {
		t.Error("expected status after rejected restart")
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		answered int
		accuracy float64
		want     string
	}{
		{0, 0, "No questions answered this time."},
		{4, 1, "Perfect score!"},
		{4, 0.75, "Great job!"},
		{4, 0.5, "Nice work, keep going!"},
		{4, 0.25, "Keep practicing!"},
	}
	for _, tt := range tests {
		if got := Verdict(tt.answered, tt.accuracy); got != tt.want {
			t.Errorf("Verdict(%d, %v) = %q, want %q", tt.answered, tt.accuracy, got, tt.want)
		}
	}
}
