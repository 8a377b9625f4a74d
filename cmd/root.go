// Package cmd defines the CLI surface.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cnkang/mathgenie-sub000/internal/app"
	"github.com/cnkang/mathgenie-sub000/internal/i18n"
	"github.com/cnkang/mathgenie-sub000/internal/problemgen"
	"github.com/cnkang/mathgenie-sub000/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "mathgenie",
	Short: "Terminal math practice with an interactive quiz mode",
	Long: `MathGenie generates configurable arithmetic problems and quizzes you
on them interactively, with timed auto-advance, scoring, and grades.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		problems, err := loadProblems(cmd)
		if err != nil {
			return err
		}

		locale, _ := cmd.Flags().GetString("locale")
		translate := i18n.For(locale)

		var final *quiz.Result
		err = app.Run(app.Options{
			Problems:   problems,
			Translate:  translate,
			OnComplete: func(r quiz.Result) { final = &r },
		})
		if err != nil {
			return err
		}

		// The completion sink sees the last finished session; echo it once
		// the TUI has released the terminal.
		if final != nil {
			fmt.Printf("%s: %s (%d/%d)\n",
				final.Grade, final.Feedback, final.CorrectAnswers, final.TotalProblems)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("locale", i18n.DefaultLocale, "Display language (en, es, zh)")
	pf.String("file", "", "Load problems from a JSON file instead of generating")
	pf.Int("count", 10, "Number of problems to generate")
	pf.StringSlice("ops", []string{"+", "-"}, "Operations to draw from: +, -, *, /")
	pf.Int("min", 1, "Minimum operand value")
	pf.Int("max", 20, "Maximum operand value")
	pf.Int("result-min", 0, "Minimum acceptable answer")
	pf.Int("result-max", 100, "Maximum acceptable answer")
	pf.Bool("allow-decimals", false, "Permit problems with non-integer answers")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadProblems builds the problem set from --file or the generator flags.
func loadProblems(cmd *cobra.Command) ([]quiz.Problem, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		problems, err := problemgen.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"file":  path,
			"count": len(problems),
		}).Debug("loaded problem file")
		return problems, nil
	}

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return problemgen.New(cfg).Generate()
}

func configFromFlags(cmd *cobra.Command) (problemgen.Config, error) {
	f := cmd.Flags()
	count, _ := f.GetInt("count")
	ops, _ := f.GetStringSlice("ops")
	min, _ := f.GetInt("min")
	max, _ := f.GetInt("max")
	resultMin, _ := f.GetInt("result-min")
	resultMax, _ := f.GetInt("result-max")
	allowDecimals, _ := f.GetBool("allow-decimals")

	cfg := problemgen.Config{
		Operations:         ops,
		OperandRange:       problemgen.Range{Min: min, Max: max},
		OperandCount:       problemgen.Range{Min: 2, Max: 2},
		ResultRange:        problemgen.Range{Min: resultMin, Max: resultMax},
		IntegerResultsOnly: !allowDecimals,
		Count:              count,
	}
	return cfg, nil
}
