package expr

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate_Precedence(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-2-3", 5},
		{"100/10/2", 5},
		{"2*3+4*5", 26},
		{"7", 7},
		{"1.5+2.25", 3.75},
		{"(1+2)*(3+4)", 21},
		{"((2))", 2},
		{"2 + 3", 5},
		{"18/4", 4.5},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.input)
		if err != nil {
			t.Errorf("Evaluate(%q) returned error: %v", tt.input, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	tests := []string{
		"2+",
		"(2+3",
		"2+3)",
		"*2",
		"2+*3",
		"()",
		"(2+3))",
		"...",
	}

	for _, input := range tests {
		_, err := Evaluate(input)
		if !errors.Is(err, ErrMalformedExpression) {
			t.Errorf("Evaluate(%q) error = %v, want ErrMalformedExpression", input, err)
		}
	}
}

func TestEvaluate_WhitespaceStripped(t *testing.T) {
	// Whitespace is removed before validation, so "2+3 4" becomes "2+34".
	got, err := Evaluate("2+3 4")
	if err != nil {
		t.Fatalf("Evaluate(%q) returned error: %v", "2+3 4", err)
	}
	if got != 36 {
		t.Errorf("Evaluate(%q) = %v, want 36", "2+3 4", got)
	}
}

func TestEvaluate_InvalidCharacters(t *testing.T) {
	tests := []string{
		"2+a",
		"2^3",
		"eval(1)",
		"2%3",
		"x",
		"",
	}

	for _, input := range tests {
		_, err := Evaluate(input)
		if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("Evaluate(%q) error = %v, want ErrInvalidExpression", input, err)
		}
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	got, err := Evaluate("5/0")
	if err != nil {
		t.Fatalf("Evaluate(5/0) returned error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Evaluate(5/0) = %v, want +Inf", got)
	}

	got, err = Evaluate("0/0")
	if err != nil {
		t.Fatalf("Evaluate(0/0) returned error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Evaluate(0/0) = %v, want NaN", got)
	}
}

func TestEvaluate_ConsumesAllTokens(t *testing.T) {
	// A complete parse followed by extra tokens must fail rather than
	// silently ignore the tail.
	for _, input := range []string{"2+3(4)", "(1)(2)", "7("} {
		if _, err := Evaluate(input); !errors.Is(err, ErrMalformedExpression) {
			t.Errorf("Evaluate(%q) error = %v, want ErrMalformedExpression", input, err)
		}
	}
}
