package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card composes a chart into the standard visual frame: a rounded border
// holding an optional title and description header, the chart body, an
// optional legend row and an optional footer.
type Card struct {
	title       string
	description string
	footer      string
	legend      string
	body        string
	width       int
	theme       Theme
}

// NewCard creates an empty card using the given theme.
func NewCard(theme Theme) *Card {
	return &Card{theme: theme}
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithDescription sets the muted line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithFooter sets the footer line under the body.
func (c *Card) WithFooter(footer string) *Card {
	c.footer = footer
	return c
}

// WithLegend sets a pre-rendered legend row shown below the body.
func (c *Card) WithLegend(legend string) *Card {
	c.legend = legend
	return c
}

// WithBody sets the rendered chart content.
func (c *Card) WithBody(body string) *Card {
	c.body = body
	return c
}

// WithWidth fixes the card's outer width. Zero lets the content decide.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// View renders the composed card.
func (c *Card) View() string {
	t := c.theme

	sections := make([]string, 0, 5)
	if c.title != "" {
		sections = append(sections, t.titleStyle().Render(c.title))
	}
	if c.description != "" {
		sections = append(sections, t.descriptionStyle().Render(c.description))
	}
	if len(sections) > 0 {
		// Blank line between the header block and the chart body.
		sections = append(sections, "")
	}
	if c.body != "" {
		sections = append(sections, c.body)
	}
	if c.legend != "" {
		sections = append(sections, "", c.legend)
	}
	if c.footer != "" {
		sections = append(sections, "", t.footerStyle().Render(c.footer))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	frame := t.borderStyle().Padding(0, 2)
	if c.width > 0 {
		inner := c.width - frame.GetHorizontalFrameSize()
		if inner > 0 {
			frame = frame.Width(inner)
		}
	}
	return frame.Render(content)
}

// Legend renders the horizontal swatch/label row for a series
// configuration.
func Legend(cfg *Config, theme Theme) string {
	if cfg == nil || cfg.Len() == 0 {
		return ""
	}
	entries := make([]string, 0, cfg.Len())
	labelStyle := lipgloss.NewStyle().Foreground(theme.color(theme.MutedFg))
	for i, key := range cfg.Keys() {
		swatch := lipgloss.NewStyle().
			Foreground(cfg.Color(key, i, theme)).
			Render("■")
		entries = append(entries, swatch+" "+labelStyle.Render(cfg.Label(key)))
	}
	return strings.Join(entries, "  ")
}
