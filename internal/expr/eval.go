// Package expr evaluates plain arithmetic expressions without delegating
// to any general code-evaluation facility. It supports the four basic
// operators with standard precedence and parentheses, and nothing else:
// no variables, no functions, no unary minus.
package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// parser is a cursor over the token stream. Each production consumes the
// tokens it recognizes and leaves the cursor on the next unread token.
type parser struct {
	tokens []string
	pos    int
}

// Evaluate computes the numeric value of an arithmetic expression.
//
// It returns ErrInvalidExpression when the input contains characters
// outside [0-9+-*/().], and ErrMalformedExpression when the token stream
// does not form a single complete expression. Division by zero is not
// special-cased: the IEEE-754 result (±Inf or NaN) propagates to the
// caller.
func Evaluate(expression string) (float64, error) {
	cleaned := strings.ReplaceAll(expression, " ", "")
	tokens, err := tokenize(cleaned)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens}
	result, err := p.parseExpression()
	if err != nil {
		return 0, err
	}

	// Trailing tokens after a complete parse ("2+3 4") are an error, not
	// silently ignored garbage.
	if p.pos != len(p.tokens) {
		return 0, fmt.Errorf("%w: unexpected token %q", ErrMalformedExpression, p.tokens[p.pos])
	}
	return result, nil
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

// parseExpression := term (('+' | '-') term)*
func (p *parser) parseExpression() (float64, error) {
	val, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case "+":
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			val += rhs
		case "-":
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			val -= rhs
		default:
			return val, nil
		}
	}
}

// parseTerm := factor (('*' | '/') factor)*
func (p *parser) parseTerm() (float64, error) {
	val, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case "*":
			p.next()
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			val *= rhs
		case "/":
			p.next()
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			// IEEE division: rhs == 0 yields ±Inf or NaN, by contract.
			val /= rhs
		default:
			return val, nil
		}
	}
}

// parseFactor := number | '(' expression ')'
func (p *parser) parseFactor() (float64, error) {
	tok := p.peek()
	switch tok {
	case "":
		return 0, fmt.Errorf("%w: missing operand", ErrMalformedExpression)
	case "(":
		p.next()
		val, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if p.peek() != ")" {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrMalformedExpression)
		}
		p.next()
		return val, nil
	case ")", "+", "-", "*", "/":
		return 0, fmt.Errorf("%w: unexpected token %q", ErrMalformedExpression, tok)
	}

	// Unreachable given the tokenizer's regex, but fail safely rather
	// than consume non-numeric text as a number.
	val, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad numeric literal %q", ErrMalformedExpression, tok)
	}
	p.next()
	return val, nil
}
