package tui

import tea "github.com/charmbracelet/bubbletea"

// Component is implemented by every pane. HandleKey turns an input event into
// an Action when the component has focus; Update receives every Action
// regardless of who produced it.
type Component interface {
	HandleKey(msg tea.KeyMsg) Action

	Update(action Action)

	View() string

	Focused() bool

	SetFocus(focused bool)
}
