package tui

import "github.com/charmbracelet/lipgloss"

var (
	focusedBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("11"))

	blurredBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8"))

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("8")).
				Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func levelColor(level Level) lipgloss.Color {
	switch level {
	case LevelSuccess:
		return lipgloss.Color("10")
	case LevelWarning:
		return lipgloss.Color("11")
	case LevelError:
		return lipgloss.Color("9")
	case LevelLoading:
		return lipgloss.Color("14")
	default:
		return lipgloss.Color("7")
	}
}

func levelPrefix(level Level) string {
	switch level {
	case LevelSuccess:
		return "✓ "
	case LevelWarning:
		return "⚠ "
	case LevelError:
		return "✗ "
	case LevelInfo:
		return "ℹ "
	default:
		return "" // Loading shows the spinner instead
	}
}

func borderStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedBorder
	}
	return blurredBorder
}
