package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cnkang/mathgenie-sub000/internal/i18n"
)

// AdvanceDelay is how long a submitted answer stays on screen before the
// session auto-advances to the next problem (or finishes).
const AdvanceDelay = 1500 * time.Millisecond

// Phase is the controller's lifecycle state.
type Phase int

const (
	// PhaseLoading means no problems are loaded yet. An empty problem set
	// keeps the controller here indefinitely.
	PhaseLoading Phase = iota

	// PhaseActive means problems are resolved and answers are accepted.
	PhaseActive

	// PhaseCompleted means a result has been computed. Only Retry leaves
	// this phase.
	PhaseCompleted
)

// PendingAdvance is the effect value a submission produces in place of a
// closure over mutable state. The dispatch layer waits AdvanceDelay and
// hands it back to CompleteAdvance, which discards it if Generation no
// longer matches the live session.
type PendingAdvance struct {
	// Generation tags the problem-set lifetime that scheduled the effect.
	Generation string

	// Last records whether the submitted problem was at the final index,
	// captured at submission time so a list replacement mid-delay cannot
	// skew the finish decision.
	Last bool
}

// Controller owns the ordered problem list, the cursor, per-problem
// answer state, elapsed time, and completion. All methods are
// synchronous and must be called from a single goroutine; the only
// asynchrony is the PendingAdvance round-trip through the dispatcher.
//
// Misuse (submitting an answered problem, navigating out of bounds,
// retrying mid-session) is absorbed as a no-op rather than surfaced:
// the controller is driven by UI event handlers that cannot usefully
// react to errors.
type Controller struct {
	problems   []Problem
	index      int
	elapsed    int // seconds
	generation string
	phase      Phase
	result     *Result

	translate  i18n.Translator
	onComplete func(Result)
}

// NewController creates a controller with no problems loaded. onComplete
// is invoked exactly once per finished session (nil is allowed).
func NewController(translate i18n.Translator, onComplete func(Result)) *Controller {
	if translate == nil {
		translate = i18n.For(i18n.DefaultLocale)
	}
	return &Controller{
		translate:  translate,
		onComplete: onComplete,
		generation: uuid.New().String(),
		phase:      PhaseLoading,
	}
}

// SetProblems replaces the problem set wholesale: answers are resolved,
// the cursor and timer reset, and a fresh generation is minted so any
// in-flight scheduled advance from the previous set is invalidated. An
// empty set returns the controller to PhaseLoading.
func (c *Controller) SetProblems(raw []Problem) {
	c.problems = ResolveAnswers(raw)
	c.index = 0
	c.elapsed = 0
	c.result = nil
	c.generation = uuid.New().String()
	if len(c.problems) == 0 {
		c.phase = PhaseLoading
		return
	}
	c.phase = PhaseActive
}

// SubmitAnswer records an answer for the identified problem and returns
// the advance effect to schedule, or nil when the submission was ignored
// (unknown id, already answered, controller not active).
func (c *Controller) SubmitAnswer(problemID int, answer float64) *PendingAdvance {
	if c.phase != PhaseActive {
		return nil
	}
	for i := range c.problems {
		if c.problems[i].ID != problemID {
			continue
		}
		if c.problems[i].IsAnswered {
			return nil
		}
		c.problems[i].UserAnswer = answer
		c.problems[i].IsCorrect = CheckAnswer(answer, c.problems[i].CorrectAnswer)
		c.problems[i].IsAnswered = true
		return &PendingAdvance{
			Generation: c.generation,
			Last:       c.index == len(c.problems)-1,
		}
	}
	return nil
}

// CompleteAdvance applies a scheduled advance. Stale effects (a
// generation minted for a problem set that has since been replaced,
// reset, or completed) are discarded without touching state.
func (c *Controller) CompleteAdvance(p PendingAdvance) {
	if c.phase != PhaseActive || p.Generation != c.generation {
		return
	}
	if p.Last {
		c.Finish()
		return
	}
	if c.index < len(c.problems)-1 {
		c.index++
	}
}

// Finish computes the result from the current problem list and moves to
// PhaseCompleted, invoking the completion sink exactly once. Finishing
// an already-completed or empty session is a no-op.
func (c *Controller) Finish() {
	if c.phase != PhaseActive || len(c.problems) == 0 {
		return
	}
	result := Grade(c.problems, c.translate)
	c.result = &result
	c.phase = PhaseCompleted
	if c.onComplete != nil {
		c.onComplete(result)
	}
}

// Retry restarts the session with the same resolved problems: answers
// are cleared, the cursor and timer reset, and a new generation is
// minted. Ground truths are not recomputed. Valid only from
// PhaseCompleted.
func (c *Controller) Retry() {
	if c.phase != PhaseCompleted {
		return
	}
	for i := range c.problems {
		c.problems[i].UserAnswer = 0
		c.problems[i].IsCorrect = false
		c.problems[i].IsAnswered = false
	}
	c.index = 0
	c.elapsed = 0
	c.result = nil
	c.generation = uuid.New().String()
	c.phase = PhaseActive
}

// GoToPrevious moves the cursor back one problem, clamped at the first.
func (c *Controller) GoToPrevious() {
	if c.phase == PhaseActive && c.index > 0 {
		c.index--
	}
}

// GoToNext moves the cursor forward one problem, clamped at the last.
func (c *Controller) GoToNext() {
	if c.phase == PhaseActive && c.index < len(c.problems)-1 {
		c.index++
	}
}

// Tick advances the elapsed-time counter by one second. Ticks outside
// PhaseActive are ignored, so a stale ticker cannot disturb a completed
// or replaced session.
func (c *Controller) Tick() {
	if c.phase == PhaseActive {
		c.elapsed++
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Generation returns the marker identifying the current problem-set
// lifetime.
func (c *Controller) Generation() string { return c.generation }

// Problems exposes the augmented problem list for display.
func (c *Controller) Problems() []Problem { return c.problems }

// Index returns the current problem position.
func (c *Controller) Index() int { return c.index }

// Current returns the problem under the cursor, or nil while loading.
func (c *Controller) Current() *Problem {
	if c.index < 0 || c.index >= len(c.problems) {
		return nil
	}
	return &c.problems[c.index]
}

// Result returns the completed session's result, or nil while a session
// is in progress.
func (c *Controller) Result() *Result { return c.result }

// ElapsedSeconds returns the ticked session time.
func (c *Controller) ElapsedSeconds() int { return c.elapsed }

// FormatElapsed renders the elapsed time as M:SS.
func (c *Controller) FormatElapsed() string {
	return fmt.Sprintf("%d:%02d", c.elapsed/60, c.elapsed%60)
}
