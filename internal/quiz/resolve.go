package quiz

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cnkang/mathgenie-sub000/internal/expr"
)

// glyphTable maps display operator glyphs to their computable forms.
// Applied in order before evaluation.
var glyphTable = []struct {
	glyph string
	op    string
}{
	{"×", "*"},
	{"✖", "*"},
	{"÷", "/"},
	{"➗", "/"},
}

// ExpressionOf converts a problem's display text into a computable
// expression: the trailing "=" marker is stripped and operator glyphs
// are normalized.
func ExpressionOf(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, "=")
	for _, g := range glyphTable {
		s = strings.ReplaceAll(s, g.glyph, g.op)
	}
	return strings.TrimSpace(s)
}

// ResolveAnswers computes the ground-truth answer for every problem and
// resets the answer fields to their unanswered defaults. The input slice
// is not modified.
//
// Evaluation failures are non-fatal: the failure is logged and the
// ground truth defaults to 0, so one bad problem can never prevent a
// session from starting. Degenerate numeric results (±Inf, NaN from
// division by zero) are kept as-is; such a problem simply can never be
// answered correctly by a finite input.
func ResolveAnswers(problems []Problem) []Problem {
	resolved := make([]Problem, len(problems))
	for i, p := range problems {
		answer, err := expr.Evaluate(ExpressionOf(p.Text))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"problem_id": p.ID,
				"text":       p.Text,
			}).WithError(err).Warn("problem expression not evaluable, defaulting answer to 0")
			answer = 0
		}
		p.CorrectAnswer = answer
		p.UserAnswer = 0
		p.IsCorrect = false
		p.IsAnswered = false
		resolved[i] = p
	}
	return resolved
}

// CheckAnswer applies the tolerance rule to a submitted value.
func CheckAnswer(userAnswer, correctAnswer float64) bool {
	return math.Abs(userAnswer-correctAnswer) < Tolerance
}
