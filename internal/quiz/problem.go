// Package quiz implements the interactive quiz core: the problem answer
// resolver, the scoring engine, and the session controller state machine.
package quiz

// Problem represents one arithmetic exercise within a session.
type Problem struct {
	// ID is a caller-assigned identifier, unique within a session.
	ID int

	// Text is the display string, expression plus trailing "= " marker,
	// e.g. "4 × 5 = ".
	Text string

	// CorrectAnswer is the ground truth computed by the resolver when the
	// session starts. Zero until resolved (and zero when the expression
	// turns out to be unparseable, by documented fallback).
	CorrectAnswer float64

	// UserAnswer is the value the learner submitted. Meaningful only when
	// IsAnswered is true.
	UserAnswer float64

	// IsCorrect records the tolerance-rule comparison. Meaningful only
	// when IsAnswered is true.
	IsCorrect bool

	// IsAnswered gates display state and auto-advance.
	IsAnswered bool
}

// Result summarizes a completed session. Immutable once constructed;
// produced exactly once per completion (or once per retry).
type Result struct {
	TotalProblems    int
	CorrectAnswers   int
	IncorrectAnswers int

	// Score is 0-100, rounded.
	Score int

	// Grade and Feedback are localized labels produced by the injected
	// translator; the engine itself holds only threshold logic.
	Grade    string
	Feedback string
}

// Tolerance is the epsilon for judging a submitted answer correct
// despite floating-point error: |user - correct| < Tolerance.
const Tolerance = 0.001
