package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Machine owns the quiz state and exposes the only legal transitions.
// It is not safe for concurrent use; callers serialize operations.
type Machine struct {
	questions []Question
	src       Source
	log       *zap.Logger
	state     State
	runID     string
}

// Option configures a Machine.
type Option func(*Machine)

// WithSource sets the random source used to pick questions.
func WithSource(src Source) Option {
	return func(m *Machine) {
		m.src = src
	}
}

// WithLogger sets the logger for transition events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// New creates a Machine on the start screen. The question set must be
// non-empty and every question valid.
func New(questions []Question, opts ...Option) (*Machine, error) {
	if len(questions) == 0 {
		return nil, errors.New("question set is empty")
	}
	qs := make([]Question, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		qs[i] = q.clone()
	}

	m := &Machine{
		questions: qs,
		log:       zap.NewNop(),
		state:     initialState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.src == nil {
		m.src = NewSource(0)
	}
	return m, nil
}

// Questions returns a copy of the question set.
func (m *Machine) Questions() []Question {
	out := make([]Question, len(m.questions))
	for i, q := range m.questions {
		out[i] = q.clone()
	}
	return out
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State: m.state,
		RunID: m.runID,
		Total: len(m.questions),
	}
	if m.state.Screen == ScreenPlaying {
		q := m.questions[m.state.QuestionIndex].clone()
		snap.Question = &q
	}
	return snap
}

// Start resets the score and serves a random question. Legal from any screen.
func (m *Machine) Start() Snapshot {
	m.reset()
	m.logTransition("start")
	return m.Snapshot()
}

// SelectAnswer records the answer for the current question. Once an answer
// is recorded, further calls are ignored until NextQuestion.
func (m *Machine) SelectAnswer(option int) (Snapshot, error) {
	const op = "select_answer"
	if m.state.Screen != ScreenPlaying {
		return m.Snapshot(), m.reject(op, "no question on screen")
	}
	if m.state.Selected != NoSelection {
		return m.Snapshot(), nil
	}
	q := m.questions[m.state.QuestionIndex]
	if option < 0 || option >= len(q.Options) {
		return m.Snapshot(), m.reject(op,
			fmt.Sprintf("option %d out of range [0, %d)", option, len(q.Options)))
	}

	m.state.Selected = option
	m.state.Answered++
	if option == q.CorrectIndex {
		m.state.Score++
	}
	m.logTransition(op, zap.Int("option", option), zap.Bool("correct", option == q.CorrectIndex))
	return m.Snapshot(), nil
}

// NextQuestion serves another random question and clears the selection.
// It requires an answer to the current question.
func (m *Machine) NextQuestion() (Snapshot, error) {
	const op = "next_question"
	if m.state.Screen != ScreenPlaying {
		return m.Snapshot(), m.reject(op, "no question on screen")
	}
	if m.state.Selected == NoSelection {
		return m.Snapshot(), m.reject(op, "current question not answered")
	}

	m.state.QuestionIndex = PickRandomIndex(len(m.questions), m.src)
	m.state.Selected = NoSelection
	m.logTransition(op)
	return m.Snapshot(), nil
}

// Finish moves to the results screen, keeping score and answered count.
func (m *Machine) Finish() (Snapshot, error) {
	const op = "finish"
	if m.state.Screen != ScreenPlaying {
		return m.Snapshot(), m.reject(op, "quiz not in progress")
	}

	m.state.Screen = ScreenEnd
	m.state.Selected = NoSelection
	m.logTransition(op)
	return m.Snapshot(), nil
}

// Restart begins a new run from the results screen. Same effect as Start.
func (m *Machine) Restart() (Snapshot, error) {
	const op = "restart"
	if m.state.Screen != ScreenEnd {
		return m.Snapshot(), m.reject(op, "quiz not finished")
	}

	m.reset()
	m.logTransition(op)
	return m.Snapshot(), nil
}

func (m *Machine) reset() {
	m.state = initialState()
	m.runID = uuid.New().String()
	m.state.QuestionIndex = PickRandomIndex(len(m.questions), m.src)
	m.state.Screen = ScreenPlaying
}

func (m *Machine) reject(op, reason string) error {
	err := &TransitionError{Op: op, Screen: m.state.Screen, Reason: reason}
	m.log.Warn("rejected transition",
		zap.String("run_id", m.runID),
		zap.String("op", op),
		zap.String("screen", m.state.Screen.String()),
		zap.String("reason", reason))
	return err
}

func (m *Machine) logTransition(op string, fields ...zap.Field) {
	fields = append(fields,
		zap.String("run_id", m.runID),
		zap.String("op", op),
		zap.String("screen", m.state.Screen.String()),
		zap.Int("score", m.state.Score),
		zap.Int("answered", m.state.Answered),
	)
	m.log.Debug("transition", fields...)
}
