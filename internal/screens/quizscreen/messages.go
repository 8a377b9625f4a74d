package quizscreen

import (
	"time"

	"github.com/cnkang/mathgenie-sub000/internal/quiz"
)

// tickMsg drives the one-second elapsed timer. It carries the session
// generation that started the tick chain so a chain belonging to a
// replaced or retried session dies instead of double-ticking.
type tickMsg struct {
	generation string
	at         time.Time
}

// advanceMsg delivers a scheduled advance effect back to the controller
// after the post-submission delay. The controller validates the
// generation before applying it.
type advanceMsg struct {
	pending quiz.PendingAdvance
}

// retryRequestedMsg is sent by the summary screen's retry action after
// it pops itself, landing on the quiz screen underneath.
type retryRequestedMsg struct{}
