// Package home is the entry screen: a small menu over the configured
// problem set.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/cnkang/mathgenie-sub000/internal/i18n"
	"github.com/cnkang/mathgenie-sub000/internal/quiz"
	"github.com/cnkang/mathgenie-sub000/internal/router"
	"github.com/cnkang/mathgenie-sub000/internal/screen"
	"github.com/cnkang/mathgenie-sub000/internal/screens/quizscreen"
	"github.com/cnkang/mathgenie-sub000/internal/ui/components"
	"github.com/cnkang/mathgenie-sub000/internal/ui/theme"
)

// HomeScreen offers starting a quiz over the supplied problems.
type HomeScreen struct {
	menu     components.Menu
	problems []quiz.Problem
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Each quiz start hands the same raw
// problem list to a fresh quiz screen; the controller re-resolves it.
func New(problems []quiz.Problem, translate i18n.Translator, onComplete func(quiz.Result)) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(problems, translate, onComplete),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		problems: problems,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	header := theme.Title.Width(width).Render("MathGenie")
	sub := theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d problems loaded", len(h.problems)))
	return header + "\n" + sub + "\n\n" + h.menu.View()
}
