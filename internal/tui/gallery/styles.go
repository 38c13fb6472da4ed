package gallery

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			MarginBottom(1)

	counterStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1)

	footerStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			MarginTop(1)

	tooltipGutter = lipgloss.NewStyle().
			PaddingLeft(4).
			MarginTop(1)
)
