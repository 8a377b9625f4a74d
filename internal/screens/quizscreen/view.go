package quizscreen

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cnkang/mathgenie-sub000/internal/quiz"
	"github.com/cnkang/mathgenie-sub000/internal/ui/components"
	"github.com/cnkang/mathgenie-sub000/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.ctrl.Phase() == quiz.PhaseLoading {
		return theme.Subtitle.Width(width).Render(s.translate("quiz.loading", nil))
	}

	current := s.ctrl.Current()
	if current == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).Render(
		s.translate("quiz.progress", map[string]any{
			"current": s.ctrl.Index() + 1,
			"total":   len(s.ctrl.Problems()),
		})))
	b.WriteString("\n\n")

	bar := components.ProgressBar{
		Current: s.ctrl.Index() + 1,
		Total:   len(s.ctrl.Problems()),
		Width:   min(width-8, 48),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// The problem itself, large and centered.
	b.WriteString(theme.Title.Width(width).Render(current.Text))
	b.WriteString("\n\n")

	if current.IsAnswered {
		marker := theme.Correct
		if !current.IsCorrect {
			marker = theme.Incorrect
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			marker.Render(formatAnswer(current.UserAnswer))))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	}
	b.WriteString("\n\n")

	if s.feedback != "" {
		style := theme.Correct
		if !current.IsCorrect {
			style = theme.Incorrect
		}
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(s.feedback))
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(
		s.translate("quiz.elapsed", map[string]any{"time": s.ctrl.FormatElapsed()})))

	return b.String()
}
