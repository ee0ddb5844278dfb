package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Search wraps a text input for live filtering. It is modal: focus enters
// through its dedicated shortcut, never through the Tab cycle.
type Search struct {
	input   textinput.Model
	focused bool
	width   int
}

func NewSearch() *Search {
	input := textinput.New()
	input.Placeholder = "Type to search articles..."
	input.Prompt = "/ "
	return &Search{input: input}
}

func (s *Search) SetSize(width int) {
	s.width = width
	s.input.Width = width - 6
}

func (s *Search) Query() string {
	return s.input.Value()
}

// Clear wipes the query, typically when search is cancelled.
func (s *Search) Clear() {
	s.input.SetValue("")
}

func (s *Search) HandleKey(msg tea.KeyMsg) Action {
	if !s.focused {
		return nil
	}

	before := s.input.Value()
	s.input, _ = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		return SearchQueryChanged{Query: after}
	}

	return nil
}

func (s *Search) Update(action Action) {
	// Search does not react to other components' actions.
}

func (s *Search) View() string {
	innerWidth := s.width - 2
	if innerWidth < 1 {
		return ""
	}

	var hint string
	if s.focused {
		hint = "Search — Esc to cancel, Enter to keep"
	} else if s.Query() != "" {
		hint = "Search (filtered)"
	} else {
		hint = "Search — press / to search"
	}

	content := dimStyle.Render(truncate(hint, innerWidth)) + "\n" + s.input.View()
	return borderStyle(s.focused).Width(innerWidth).Render(content)
}

func (s *Search) Focused() bool {
	return s.focused
}

func (s *Search) SetFocus(focused bool) {
	s.focused = focused
	if focused {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}
