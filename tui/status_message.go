package tui

import "time"

// Level determines styling and persistence behavior of a status message.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
	LevelLoading
)

// StatusMessage is shown in the status bar. Info, Success and Warning
// messages expire after their dismiss age; Error messages persist until
// explicitly dismissed and Loading messages until replaced.
type StatusMessage struct {
	Level            Level
	Text             string
	Timestamp        time.Time
	AutoDismissAfter time.Duration // zero means never
}

func InfoMessage(text string) StatusMessage {
	return StatusMessage{
		Level:            LevelInfo,
		Text:             text,
		Timestamp:        time.Now(),
		AutoDismissAfter: 5 * time.Second,
	}
}

func SuccessMessage(text string) StatusMessage {
	return StatusMessage{
		Level:            LevelSuccess,
		Text:             text,
		Timestamp:        time.Now(),
		AutoDismissAfter: 3 * time.Second,
	}
}

func WarningMessage(text string) StatusMessage {
	return StatusMessage{
		Level:            LevelWarning,
		Text:             text,
		Timestamp:        time.Now(),
		AutoDismissAfter: 5 * time.Second,
	}
}

func ErrorMessage(text string) StatusMessage {
	return StatusMessage{
		Level:     LevelError,
		Text:      text,
		Timestamp: time.Now(),
	}
}

func LoadingMessage(text string) StatusMessage {
	return StatusMessage{
		Level:     LevelLoading,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// ShouldDismiss reports whether the message has outlived its dismiss age.
func (m StatusMessage) ShouldDismiss() bool {
	if m.AutoDismissAfter == 0 {
		return false
	}
	return time.Since(m.Timestamp) >= m.AutoDismissAfter
}
