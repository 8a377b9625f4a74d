package expr

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidExpression indicates the raw text contains characters outside
// the allowed arithmetic character set.
var ErrInvalidExpression = errors.New("invalid expression")

// ErrMalformedExpression indicates the token stream does not parse to
// completion (missing operand, unbalanced parentheses, trailing tokens).
var ErrMalformedExpression = errors.New("malformed expression")

var (
	// allowedRe is the whole-string gate applied before tokenization.
	allowedRe = regexp.MustCompile(`^[0-9+\-*/().]+$`)

	// tokenRe splits the input into numeric literals and single-character
	// operators/parentheses. Decimals only; no sign, no exponent.
	tokenRe = regexp.MustCompile(`(\d+\.?\d*)|[+\-*/()]`)
)

// tokenize validates s against the allowed character set and splits it
// into tokens. The caller is expected to have stripped whitespace already.
func tokenize(s string) ([]string, error) {
	if s == "" || !allowedRe.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExpression, s)
	}
	return tokenRe.FindAllString(s, -1), nil
}
