package play

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/layout"
)

// PlayScreen shows the current question and forwards answers to the machine.
// It only issues operations that are legal for the current snapshot.
type PlayScreen struct {
	machine    *quiz.Machine
	log        *zap.Logger
	endFactory func() screen.Screen
	snap       quiz.Snapshot
	options    components.OptionList
	status     string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.QuizView = (*PlayScreen)(nil)

// New creates a PlayScreen over a machine that is already playing.
// endFactory builds the results screen shown after Finish.
func New(m *quiz.Machine, log *zap.Logger, endFactory func() screen.Screen) *PlayScreen {
	s := &PlayScreen{
		machine:    m,
		log:        log,
		endFactory: endFactory,
	}
	s.refresh(m.Snapshot())
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	return "Quiz"
}

func (s *PlayScreen) Snapshot() quiz.Snapshot {
	return s.snap
}

func (s *PlayScreen) Status() string {
	return s.status
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	next := keyNext
	next.SetEnabled(s.snap.CanAdvance())
	if s.snap.HasSelection() {
		return layout.HintsFor(next, keyFinish)
	}
	return layout.HintsFor(components.KeyUp, components.KeyDown, keySelect, keyPick, keyFinish)
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keyFinish):
		return s.finish()

	case key.Matches(kmsg, keyNext):
		// Next stays disabled until an answer is chosen.
		if !s.snap.CanAdvance() {
			return s, nil
		}
		return s.next()

	case key.Matches(kmsg, keySelect):
		if s.snap.CanAdvance() {
			return s.next()
		}
		return s.selectAnswer(s.options.Cursor)

	case key.Matches(kmsg, keyPick):
		idx := int(kmsg.String()[0] - '1')
		if s.snap.Question == nil || idx >= len(s.snap.Question.Options) {
			return s, nil
		}
		s.options.Cursor = idx
		return s.selectAnswer(idx)
	}

	s.options = s.options.Update(msg, s.snap.HasSelection())
	return s, nil
}

func (s *PlayScreen) selectAnswer(option int) (screen.Screen, tea.Cmd) {
	if s.snap.HasSelection() {
		return s, nil
	}
	snap, err := s.machine.SelectAnswer(option)
	if err != nil {
		s.fail("select answer", err)
		return s, nil
	}
	s.refresh(snap)
	return s, nil
}

func (s *PlayScreen) next() (screen.Screen, tea.Cmd) {
	snap, err := s.machine.NextQuestion()
	if err != nil {
		s.fail("next question", err)
		return s, nil
	}
	s.refresh(snap)
	return s, nil
}

func (s *PlayScreen) finish() (screen.Screen, tea.Cmd) {
	snap, err := s.machine.Finish()
	if err != nil {
		s.fail("finish", err)
		return s, nil
	}
	s.refresh(snap)
	s.log.Info("quiz finished",
		zap.String("run_id", snap.RunID),
		zap.Int("score", snap.Score),
		zap.Int("answered", snap.Answered))
	end := s.endFactory()
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: end} }
}

// refresh adopts a new snapshot, resetting the cursor when the question
// changes.
func (s *PlayScreen) refresh(snap quiz.Snapshot) {
	changed := s.snap.Question == nil ||
		snap.RunID != s.snap.RunID ||
		s.snap.HasSelection() && !snap.HasSelection()
	s.snap = snap
	s.status = ""
	if changed && snap.Question != nil {
		s.options = components.NewOptionList(snap.Question.Options)
	}
}

// fail records an operation the machine refused. This only happens when the
// screen and machine disagree, so it is logged loudly.
func (s *PlayScreen) fail(op string, err error) {
	s.status = err.Error()
	s.log.Error("quiz operation rejected",
		zap.String("op", op),
		zap.Bool("invalid_transition", errors.Is(err, quiz.ErrInvalidTransition)),
		zap.Error(err))
}
