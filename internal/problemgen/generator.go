// Package problemgen supplies problem sets for the quiz core, either by
// random generation or by loading a validated JSON problem file.
package problemgen

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/cnkang/mathgenie-sub000/internal/expr"
	"github.com/cnkang/mathgenie-sub000/internal/quiz"
)

// maxAttempts bounds the rejection-sampling loop per problem. Tight
// result ranges can make candidates scarce; hitting the bound is a
// configuration error, not a retry case.
const maxAttempts = 500

// displayOps maps computable operators to their display glyphs. Problems
// are rendered with glyphs and a trailing "= " marker, the same shape
// the resolver normalizes back.
var displayOps = map[string]string{
	"+": "+",
	"-": "-",
	"*": "×",
	"/": "÷",
}

// Generator produces random arithmetic problems for a Config.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator seeded from the current time.
func New(cfg Config) *Generator {
	return NewSeeded(cfg, time.Now().UnixNano())
}

// NewSeeded creates a Generator with a fixed seed, for reproducible sets.
func NewSeeded(cfg Config, seed int64) *Generator {
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Generate produces cfg.Count problems with unique texts. Every
// candidate expression is verified through the evaluator: the ground
// truth must be finite, inside ResultRange, and integral when
// IntegerResultsOnly is set.
func (g *Generator) Generate() ([]quiz.Problem, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	problems := make([]quiz.Problem, 0, g.cfg.Count)
	seen := make(map[string]bool)

	for len(problems) < g.cfg.Count {
		text, ok := g.candidate(seen)
		if !ok {
			return nil, fmt.Errorf("could not generate %d distinct problems for the given ranges (got %d)",
				g.cfg.Count, len(problems))
		}
		seen[text] = true
		problems = append(problems, quiz.Problem{
			ID:   len(problems) + 1,
			Text: text,
		})
	}
	return problems, nil
}

// candidate samples expressions until one satisfies the config, or gives
// up after maxAttempts.
func (g *Generator) candidate(seen map[string]bool) (string, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		exprText := g.buildExpression()
		if seen[exprText+" = "] {
			continue
		}

		value, err := expr.Evaluate(quiz.ExpressionOf(exprText))
		if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
			continue
		}
		if value < float64(g.cfg.ResultRange.Min) || value > float64(g.cfg.ResultRange.Max) {
			continue
		}
		if g.cfg.IntegerResultsOnly && value != math.Trunc(value) {
			continue
		}
		return exprText + " = ", true
	}
	return "", false
}

// buildExpression assembles "a op b [op c ...]" with display glyphs.
// Division operands are drawn from a zero-free range so a generated
// problem never carries an undefined answer.
func (g *Generator) buildExpression() string {
	operands := g.intBetween(g.cfg.OperandCount.Min, g.cfg.OperandCount.Max)
	if operands < 2 {
		operands = 2
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d", g.operand(false))
	for i := 1; i < operands; i++ {
		op := g.cfg.Operations[g.rng.Intn(len(g.cfg.Operations))]
		fmt.Fprintf(&b, " %s %d", displayOps[op], g.operand(op == "/"))
	}
	return b.String()
}

func (g *Generator) operand(nonZero bool) int {
	min, max := g.cfg.OperandRange.Min, g.cfg.OperandRange.Max
	for {
		n := g.intBetween(min, max)
		if !nonZero || n != 0 {
			return n
		}
		if min == 0 && max == 0 {
			return 1
		}
	}
}

func (g *Generator) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

func (g *Generator) validate() error {
	cfg := g.cfg
	if cfg.Count <= 0 {
		return fmt.Errorf("problem count must be positive, got %d", cfg.Count)
	}
	if len(cfg.Operations) == 0 {
		return fmt.Errorf("at least one operation is required")
	}
	for _, op := range cfg.Operations {
		if _, ok := displayOps[op]; !ok {
			return fmt.Errorf("unsupported operation %q", op)
		}
	}
	if cfg.OperandRange.Max < cfg.OperandRange.Min {
		return fmt.Errorf("operand range [%d, %d] is empty", cfg.OperandRange.Min, cfg.OperandRange.Max)
	}
	if cfg.OperandRange.Min < 0 {
		return fmt.Errorf("negative operands are not supported (expressions must not begin with '-')")
	}
	if cfg.ResultRange.Max < cfg.ResultRange.Min {
		return fmt.Errorf("result range [%d, %d] is empty", cfg.ResultRange.Min, cfg.ResultRange.Max)
	}
	return nil
}
