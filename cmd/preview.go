package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnkang/mathgenie-sub000/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the problem set as a worksheet (no quiz)",
	Long: `Generate or load the problem set and print it to stdout, one problem
per line. With --answers the resolved ground truth is appended, which is
useful for checking generator settings before a session.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("answers", false, "Include the computed answers")
}

func runPreview(cmd *cobra.Command, args []string) error {
	problems, err := loadProblems(cmd)
	if err != nil {
		return err
	}

	showAnswers, _ := cmd.Flags().GetBool("answers")
	if showAnswers {
		problems = quiz.ResolveAnswers(problems)
	}

	for _, p := range problems {
		if showAnswers {
			fmt.Printf("%3d.  %s%s\n", p.ID, p.Text, formatGroundTruth(p.CorrectAnswer))
		} else {
			fmt.Printf("%3d.  %s\n", p.ID, p.Text)
		}
	}
	return nil
}

func formatGroundTruth(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
