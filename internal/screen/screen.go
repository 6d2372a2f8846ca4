package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ayato/kioku/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeaderInfoProvider is an optional interface for screens that want
// to fill the right slot of the header bar.
type HeaderInfoProvider interface {
	HeaderInfo() string
}

// PushMsg requests the app to push a new screen onto the stack.
type PushMsg struct {
	Screen Screen
}

// PopMsg requests the app to pop the current screen off the stack.
type PopMsg struct{}

// ReplaceMsg requests the app to replace the current screen in place,
// so popping the new screen returns to the one below.
type ReplaceMsg struct {
	Screen Screen
}

// HomeMsg requests the app to unwind the stack to the root screen.
// If the stack is already at the root, the app quits instead.
type HomeMsg struct{}

// RefreshMsg is delivered to a screen when it becomes active again
// after the screen above it was popped. Screens that display derived
// state, like due-card counts, reload it on this message.
type RefreshMsg struct{}

// Push returns a command that pushes s onto the stack.
func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

// Pop returns a command that pops the current screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}

// Replace returns a command that replaces the current screen with s.
func Replace(s Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceMsg{Screen: s} }
}

// Home returns a command that unwinds to the root screen.
func Home() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}
