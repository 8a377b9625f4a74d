package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cnkang/mathgenie-sub000/internal/expr"
	"github.com/cnkang/mathgenie-sub000/internal/quiz"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate one arithmetic expression",
	Long: `Evaluate an arithmetic expression with the quiz's own evaluator.
Display glyphs (×, ÷) are accepted and normalized, same as problem text.

  mathgenie eval "2 + 3 * 4"
  mathgenie eval "(2 + 3) × 4"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		value, err := expr.Evaluate(quiz.ExpressionOf(input))
		if err != nil {
			return err
		}
		fmt.Println(formatGroundTruth(value))
		return nil
	},
}
