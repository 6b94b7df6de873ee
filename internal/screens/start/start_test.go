package start

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.title }
func (s *stubScreen) Title() string                          { return s.title }

func testStart(t *testing.T) (*StartScreen, *quiz.Machine) {
	t.Helper()
	m, err := quiz.New(quiz.DefaultQuestions(), quiz.WithSource(quiz.NewSource(3)))
	if err != nil {
		t.Fatalf("quiz.New: %v", err)
	}
	s := New(m, zap.NewNop(),
		func() screen.Screen { return &stubScreen{title: "play"} },
		func() screen.Screen { return &stubScreen{title: "help"} },
	)
	return s, m
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func TestStartScreen_View(t *testing.T) {
	s, _ := testStart(t)
	view := s.View(80, 24)
	if !strings.Contains(view, "START QUIZ") {
		t.Error("expected start menu item")
	}
	if !strings.Contains(view, "7 questions") {
		t.Error("expected question count")
	}
}

func TestStartScreen_StartsQuiz(t *testing.T) {
	s, m := testStart(t)
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from START QUIZ")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "play" {
		t.Errorf("replaced with %q, want play", msg.Screen.Title())
	}

	snap := m.Snapshot()
	if snap.Screen != quiz.ScreenPlaying || snap.Score != 0 || snap.Answered != 0 {
		t.Errorf("after start: screen=%v score=%s", snap.Screen, snap.ScoreLine())
	}
}

func TestStartScreen_HowToPlay(t *testing.T) {
	s, m := testStart(t)
	s.Update(down())
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from HOW TO PLAY")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if m.Snapshot().Screen != quiz.ScreenStart {
		t.Error("help must not start the quiz")
	}
}

func TestStartScreen_Quit(t *testing.T) {
	s, _ := testStart(t)
	s.Update(down())
	s.Update(down())
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestStartScreen_NoScoreBeforeStart(t *testing.T) {
	s, _ := testStart(t)
	if s.Snapshot().Screen != quiz.ScreenStart {
		t.Error("expected start screen state")
	}
	if s.Title() != "Welcome" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestRenderBanner_Compact(t *testing.T) {
	if !strings.Contains(RenderBanner(30), "Q U I Z B O X") {
		t.Error("expected compact banner on narrow terminals")
	}
}
