package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cnkang/mathgenie-sub000/internal/ui/layout"
)

// Screen is the interface every application screen implements. The
// router owns a stack of these and forwards messages to the top one.
type Screen interface {
	// Init returns the command to run when the screen is first shown.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus any
	// follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body (the frame adds header and footer).
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen override the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put a short status (such as elapsed
// time) in the right side of the header.
type StatusProvider interface {
	Status() string
}
