// Package app wires the screen stack into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cnkang/mathgenie-sub000/internal/i18n"
	"github.com/cnkang/mathgenie-sub000/internal/quiz"
	"github.com/cnkang/mathgenie-sub000/internal/router"
	"github.com/cnkang/mathgenie-sub000/internal/screen"
	"github.com/cnkang/mathgenie-sub000/internal/screens/home"
	"github.com/cnkang/mathgenie-sub000/internal/ui/layout"
)

// Options carries the application's external collaborators: the problem
// supplier's output, the translator, and the completion sink.
type Options struct {
	Problems   []quiz.Problem
	Translate  i18n.Translator
	OnComplete func(quiz.Result)
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	width  int
	height int
}

// NewModel builds the root model with the home screen at the bottom of
// the stack.
func NewModel(opts Options) Model {
	if opts.Translate == nil {
		opts.Translate = i18n.For(i18n.DefaultLocale)
	}
	return Model{
		router: router.New(home.New(opts.Problems, opts.Translate, opts.OnComplete)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
