// Package summary displays the result of a completed quiz session.
package summary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cnkang/mathgenie-sub000/internal/i18n"
	"github.com/cnkang/mathgenie-sub000/internal/quiz"
	"github.com/cnkang/mathgenie-sub000/internal/router"
	"github.com/cnkang/mathgenie-sub000/internal/screen"
	"github.com/cnkang/mathgenie-sub000/internal/ui/layout"
	"github.com/cnkang/mathgenie-sub000/internal/ui/theme"
)

// SummaryScreen shows a QuizResult with grade and feedback.
type SummaryScreen struct {
	result    quiz.Result
	elapsed   string
	translate i18n.Translator
	retry     tea.Cmd
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. retry is the command that restarts the
// session on the screen beneath this one.
func New(result quiz.Result, elapsed string, translate i18n.Translator, retry tea.Cmd) *SummaryScreen {
	return &SummaryScreen{
		result:    result,
		elapsed:   elapsed,
		translate: translate,
		retry:     retry,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.translate("summary.title", nil)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retry"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		return s, s.retry
	case "enter", "esc":
		// Pop the summary and the quiz screen beneath it.
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return router.PopScreenMsg{} },
		)
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(s.translate("summary.title", nil)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(
		s.translate("summary.score", map[string]any{"score": r.Score})))
	b.WriteString("\n")

	b.WriteString(theme.Subtitle.Width(width).Render(
		s.translate("summary.breakdown", map[string]any{
			"correct":   r.CorrectAnswers,
			"incorrect": r.IncorrectAnswers,
			"total":     r.TotalProblems,
		})))
	b.WriteString("\n\n")

	gradeStyle := theme.Correct
	if r.Score < 60 {
		gradeStyle = theme.Incorrect
	}
	b.WriteString(gradeStyle.Width(width).Align(lipgloss.Center).Render(r.Grade))
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(r.Feedback))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(
		s.translate("quiz.elapsed", map[string]any{"time": s.elapsed})))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(
		s.translate("summary.retry", nil)))

	return b.String()
}
