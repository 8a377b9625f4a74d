package quiz

import (
	"math"
	"testing"
)

func TestExpressionOf(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2 + 3 = ", "2 + 3"},
		{"4 × 5 = ", "4 * 5"},
		{"10 ÷ 2 =", "10 / 2"},
		{"6 ✖ 7 = ", "6 * 7"},
		{"8 ➗ 4 = ", "8 / 4"},
		{"(2 + 3) × 4 = ", "(2 + 3) * 4"},
		{"9 - 1", "9 - 1"},
	}

	for _, tt := range tests {
		if got := ExpressionOf(tt.text); got != tt.want {
			t.Errorf("ExpressionOf(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestResolveAnswers(t *testing.T) {
	problems := []Problem{
		{ID: 1, Text: "2 + 3 = "},
		{ID: 2, Text: "4 × 5 = "},
		{ID: 3, Text: "10 ÷ 4 = "},
	}

	resolved := ResolveAnswers(problems)
	want := []float64{5, 20, 2.5}
	for i, p := range resolved {
		if p.CorrectAnswer != want[i] {
			t.Errorf("problem %d: CorrectAnswer = %v, want %v", p.ID, p.CorrectAnswer, want[i])
		}
		if p.IsAnswered || p.IsCorrect {
			t.Errorf("problem %d: answer fields not reset", p.ID)
		}
	}

	// The input slice must be untouched.
	if problems[0].CorrectAnswer != 0 {
		t.Error("ResolveAnswers mutated its input")
	}
}

func TestResolveAnswers_MalformedFallsBackToZero(t *testing.T) {
	problems := []Problem{
		{ID: 1, Text: "2 + 3 = "},
		{ID: 2, Text: "(2 + 3 = "}, // unbalanced
		{ID: 3, Text: "7 - 2 = "},
	}

	resolved := ResolveAnswers(problems)

	if resolved[0].CorrectAnswer != 5 {
		t.Errorf("problem 1: CorrectAnswer = %v, want 5", resolved[0].CorrectAnswer)
	}
	if resolved[1].CorrectAnswer != 0 {
		t.Errorf("problem 2: CorrectAnswer = %v, want 0 fallback", resolved[1].CorrectAnswer)
	}
	if resolved[2].CorrectAnswer != 5 {
		t.Errorf("problem 3: CorrectAnswer = %v, want 5", resolved[2].CorrectAnswer)
	}
}

func TestResolveAnswers_DivisionByZeroKeepsInf(t *testing.T) {
	resolved := ResolveAnswers([]Problem{{ID: 1, Text: "5 ÷ 0 = "}})
	if !math.IsInf(resolved[0].CorrectAnswer, 1) {
		t.Errorf("CorrectAnswer = %v, want +Inf", resolved[0].CorrectAnswer)
	}
	// No finite submission can ever match.
	if CheckAnswer(1e308, resolved[0].CorrectAnswer) {
		t.Error("finite answer matched an infinite ground truth")
	}
}

func TestCheckAnswer_Tolerance(t *testing.T) {
	tests := []struct {
		user, correct float64
		want          bool
	}{
		{5, 5, true},
		{5.0005, 5, true},
		{4.9995, 5, true},
		{5.01, 5, false},
		{5.001, 5, false}, // boundary is exclusive
		{-3, -3, true},
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.user, tt.correct); got != tt.want {
			t.Errorf("CheckAnswer(%v, %v) = %v, want %v", tt.user, tt.correct, got, tt.want)
		}
	}
}
