package components

import (
	"bettero/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. A non-empty notice is a
// failed request surfaced to the user; it takes the place of the hint text.
func RenderStatusBar(width int, notice string, noticeIsError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [tab]switch  [a]dd  [r]efresh  [q]uit"
	if notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(t.Yellow)
		if noticeIsError {
			noticeStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		left = " " + noticeStyle.Render(notice)
	}

	padding := width - lipgloss.Width(left)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	return style.Render(bar)
}
