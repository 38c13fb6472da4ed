package gallery

import (
	"fmt"
	"strings"

	"github.com/mnhtng/shadcn-chart/internal/render"
	"github.com/mnhtng/shadcn-chart/pkg/chart"
)

// progress maps the animator state onto the render option: an idle
// animator means the intro never ran, so draw everything.
func (m Model) progress() float64 {
	if m.anim.State() == chart.AnimIdle {
		return 1
	}
	if p := m.anim.Progress(); p > 0 {
		return p
	}
	return 0.001
}

// View renders the gallery screen: header, active chart card, optional
// tooltip for the hovered point, and the help footer.
func (m Model) View() string {
	if len(m.doc.Charts) == 0 {
		return counterStyle.Render("document has no charts") + "\n"
	}

	spec := m.ActiveSpec()

	var b strings.Builder

	title := m.doc.Name
	if title == "" {
		title = "Chart Gallery"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(counterStyle.Render(fmt.Sprintf("%d/%d  %s (%s)", m.cursor+1, len(m.doc.Charts), spec.ID, spec.Kind)))
	b.WriteString("\n\n")

	card, err := render.Card(spec, m.theme, render.Options{Progress: m.progress()})
	if err != nil {
		if m.log != nil {
			m.log.Error(err, "chart render failed")
		}
		b.WriteString(counterStyle.Render(err.Error()))
	} else {
		b.WriteString(card)
	}
	b.WriteString("\n")

	if m.hover >= 0 {
		b.WriteString(tooltipGutter.Render(render.TooltipFor(spec, m.theme, m.hover)))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}
