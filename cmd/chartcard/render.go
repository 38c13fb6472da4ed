package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mnhtng/shadcn-chart/internal/config"
	"github.com/mnhtng/shadcn-chart/internal/render"
)

func newRenderCmd(app *appState) *cobra.Command {
	var (
		chartID string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render chart cards to the terminal",
		Long:  `Render every chart of a YAML document as a styled terminal card, or a single chart selected with --chart.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.ParseDocument(args[0])
			if err != nil {
				return err
			}

			w := width
			if w <= 0 {
				w = detectPlotWidth()
			}

			rendered := 0
			for _, spec := range doc.Charts {
				if chartID != "" && spec.ID != chartID {
					continue
				}

				app.log.WithFields(map[string]any{"chart": spec.ID, "kind": spec.Kind}).Debug("rendering chart")
				out, err := render.Card(spec, app.theme(), render.Options{Width: w})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				rendered++
			}

			if rendered == 0 {
				return fmt.Errorf("no chart with id %q in %s", chartID, args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&chartID, "chart", "", "Render only the chart with this id")
	cmd.Flags().IntVar(&width, "width", 0, "Plot width in cells (default: derived from the terminal)")

	return cmd
}

// detectPlotWidth sizes the plot from the terminal, leaving room for the
// card frame and axis gutter. Zero keeps the component default.
func detectPlotWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	tw, _, err := term.GetSize(fd)
	if err != nil || tw < 24 {
		return 0
	}

	w := tw - 12
	if w > 100 {
		w = 100
	}
	return w
}
