package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cnkang/mathgenie-sub000/internal/ui/theme"
)

// ProgressBar shows quiz position as a horizontal bar.
type ProgressBar struct {
	Current int
	Total   int
	Width   int
}

// View renders the bar with a "current/total" suffix.
func (p ProgressBar) View() string {
	if p.Total <= 0 {
		return ""
	}

	label := fmt.Sprintf(" %d/%d", p.Current, p.Total)
	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Current / p.Total
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
