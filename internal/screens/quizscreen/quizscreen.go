// Package quizscreen runs the interactive quiz: it owns the session
// controller and acts as its timer-dispatch layer, scheduling the
// elapsed ticker and the delayed auto-advance as Bubble Tea commands.
package quizscreen

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cnkang/mathgenie-sub000/internal/i18n"
	"github.com/cnkang/mathgenie-sub000/internal/quiz"
	"github.com/cnkang/mathgenie-sub000/internal/router"
	"github.com/cnkang/mathgenie-sub000/internal/screen"
	"github.com/cnkang/mathgenie-sub000/internal/screens/summary"
	"github.com/cnkang/mathgenie-sub000/internal/ui/components"
	"github.com/cnkang/mathgenie-sub000/internal/ui/layout"
)

// QuizScreen drives one quiz session.
type QuizScreen struct {
	ctrl      *quiz.Controller
	problems  []quiz.Problem
	translate i18n.Translator
	input     components.AnswerInput
	feedback  string
	waiting   bool // an advance is scheduled; input is paused
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen over the given raw problems. onComplete is
// forwarded to the controller's completion sink.
func New(problems []quiz.Problem, translate i18n.Translator, onComplete func(quiz.Result)) *QuizScreen {
	return &QuizScreen{
		ctrl:      quiz.NewController(translate, onComplete),
		problems:  problems,
		translate: translate,
		input:     components.NewAnswerInput(translate("quiz.prompt", nil)),
	}
}

func (s *QuizScreen) Title() string {
	return s.translate("quiz.title", nil)
}

// Status surfaces the elapsed time in the header.
func (s *QuizScreen) Status() string {
	if s.ctrl.Phase() != quiz.PhaseActive {
		return ""
	}
	return s.ctrl.FormatElapsed()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "←/→", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	// Resolution is synchronous; the controller leaves Loading as soon as
	// the set is non-empty.
	s.ctrl.SetProblems(s.problems)
	return tea.Batch(s.input.Init(), s.tickCmd())
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)

	case advanceMsg:
		return s.handleAdvance(msg)

	case retryRequestedMsg:
		s.ctrl.Retry()
		s.feedback = ""
		s.waiting = false
		s.input = components.NewAnswerInput(s.translate("quiz.prompt", nil))
		return s, tea.Batch(s.input.Init(), s.tickCmd())

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	// A stale chain (pre-retry, pre-replacement) ends here.
	if msg.generation != s.ctrl.Generation() {
		return s, nil
	}
	s.ctrl.Tick()
	if s.ctrl.Phase() != quiz.PhaseActive {
		return s, nil
	}
	return s, s.tickCmd()
}

func (s *QuizScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	s.ctrl.CompleteAdvance(msg.pending)
	s.feedback = ""
	s.waiting = false

	if s.ctrl.Phase() == quiz.PhaseCompleted {
		return s, s.showSummary()
	}

	s.input = components.NewAnswerInput(s.translate("quiz.prompt", nil))
	return s, s.input.Init()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Esc abandons the session and returns home, whatever the phase.
	if msg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.ctrl.Phase() != quiz.PhaseActive || s.waiting {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		return s.submit()
	case "left":
		s.ctrl.GoToPrevious()
		return s, nil
	case "right":
		s.ctrl.GoToNext()
		return s, nil
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	current := s.ctrl.Current()
	if current == nil || current.IsAnswered {
		return s, nil
	}

	answer, ok := s.input.Number()
	if !ok {
		return s, nil
	}

	pending := s.ctrl.SubmitAnswer(current.ID, answer)
	if pending == nil {
		return s, nil
	}

	if s.ctrl.Current().IsCorrect {
		s.feedback = s.translate("quiz.correct", nil)
	} else {
		s.feedback = s.translate("quiz.incorrect", map[string]any{
			"answer": formatAnswer(s.ctrl.Current().CorrectAnswer),
		})
	}
	s.waiting = true

	effect := *pending
	return s, tea.Tick(quiz.AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{pending: effect}
	})
}

// showSummary pushes the summary screen, wiring its retry action back to
// this screen.
func (s *QuizScreen) showSummary() tea.Cmd {
	result := *s.ctrl.Result()
	elapsed := s.ctrl.FormatElapsed()
	retry := tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return retryRequestedMsg{} },
	)
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summary.New(result, elapsed, s.translate, retry),
		}
	}
}

func (s *QuizScreen) acceptingInput() bool {
	return s.ctrl.Phase() == quiz.PhaseActive && !s.waiting
}

// tickCmd schedules the next one-second tick, tagged with the current
// session generation.
func (s *QuizScreen) tickCmd() tea.Cmd {
	generation := s.ctrl.Generation()
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{generation: generation, at: t}
	})
}

// formatAnswer trims float noise for display: integers print bare.
func formatAnswer(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
