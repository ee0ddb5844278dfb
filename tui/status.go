package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyLimit bounds the status history; the oldest entry is evicted first.
const historyLimit = 50

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const helpText = "/: Search | Tab: Switch | ↑/↓: Nav | Enter/o: Open | r: Refresh | Esc: Dismiss | h: History | q: Quit"

// Status holds the single current message plus a bounded history. Setting a
// new message evicts the current one into history. The history view joins
// the focus cycle only while open.
type Status struct {
	current      *StatusMessage
	history      []StatusMessage
	showHistory  bool
	spinnerFrame int
	scroll       int
	focused      bool
	width        int
	height       int
}

func NewStatus() *Status {
	return &Status{}
}

func (s *Status) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Set replaces the current message, pushing the old one into history.
func (s *Status) Set(message StatusMessage) {
	s.archiveCurrent()
	s.current = &message
}

// Clear moves the current message into history without a replacement.
func (s *Status) Clear() {
	s.archiveCurrent()
}

func (s *Status) archiveCurrent() {
	if s.current == nil {
		return
	}
	s.history = append(s.history, *s.current)
	if len(s.history) > historyLimit {
		s.history = s.history[1:]
	}
	s.current = nil
}

// Current returns the message being displayed, nil when there is none.
func (s *Status) Current() *StatusMessage {
	return s.current
}

// History returns the archived messages, oldest first.
func (s *Status) History() []StatusMessage {
	return s.history
}

func (s *Status) HistoryOpen() bool {
	return s.showHistory
}

// Tick advances the spinner and lazily dismisses the current message once
// its age exceeds the dismiss threshold.
func (s *Status) Tick() {
	s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
	if s.current != nil && s.current.ShouldDismiss() {
		s.Clear()
	}
}

func (s *Status) HandleKey(msg tea.KeyMsg) Action {
	if !s.focused || !s.showHistory {
		return nil
	}

	switch msg.String() {
	case "down", "j":
		if s.scroll > 0 {
			s.scroll--
		}
	case "up", "k":
		if s.scroll < len(s.history)-1 {
			s.scroll++
		}
	}

	return nil
}

func (s *Status) Update(action Action) {
	switch a := action.(type) {
	case ShowStatus:
		s.Set(a.Message)
	case DismissStatus:
		s.Clear()
	case ShowStatusHistory:
		s.showHistory = !s.showHistory
		s.scroll = 0
	}
}

func (s *Status) View() string {
	if s.showHistory {
		return s.viewHistory()
	}
	return s.viewLine()
}

func (s *Status) viewLine() string {
	innerWidth := s.width - 2
	if innerWidth < 1 {
		return ""
	}

	var content string
	if s.current != nil {
		text := s.current.Text
		if s.current.Level == LevelLoading {
			text = spinnerFrames[s.spinnerFrame] + " " + text
		} else {
			text = levelPrefix(s.current.Level) + text
		}
		style := lipgloss.NewStyle().Foreground(levelColor(s.current.Level))
		content = style.Render(truncate(text, innerWidth))
	} else {
		content = dimStyle.Render(truncate(helpText, innerWidth))
	}

	return blurredBorder.Width(innerWidth).Render(content)
}

func (s *Status) viewHistory() string {
	innerWidth := s.width - 2
	innerHeight := s.height - 2
	if innerWidth < 1 || innerHeight < 2 {
		return ""
	}

	lines := make([]string, 0, innerHeight)
	lines = append(lines, dimStyle.Render(truncate("Message History (h to close)", innerWidth)))

	// Newest entries at the top, scrolled back by s.scroll.
	available := innerHeight - 1
	shown := 0
	for i := len(s.history) - 1 - s.scroll; i >= 0 && shown < available; i-- {
		msg := s.history[i]
		style := lipgloss.NewStyle().Foreground(levelColor(msg.Level))
		line := fmt.Sprintf("[%s] %s", msg.Timestamp.Format("15:04:05"), msg.Text)
		lines = append(lines, style.Render(truncate(line, innerWidth)))
		shown++
	}
	if len(s.history) == 0 {
		lines = append(lines, dimStyle.Render("No messages yet"))
	}

	content := strings.Join(lines, "\n")
	return borderStyle(s.focused).Width(innerWidth).Height(innerHeight).Render(content)
}

func (s *Status) Focused() bool {
	return s.focused
}

func (s *Status) SetFocus(focused bool) {
	s.focused = focused
}
