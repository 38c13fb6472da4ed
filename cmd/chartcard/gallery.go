package main

import (
	"github.com/spf13/cobra"

	"github.com/mnhtng/shadcn-chart/internal/config"
	"github.com/mnhtng/shadcn-chart/internal/tui/gallery"
)

func newGalleryCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery <document>",
		Short: "Browse the document's charts interactively",
		Long:  `Open an interactive gallery over the document: cycle charts, hover data points for a tooltip readout, toggle themes and replay the intro animation.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.ParseDocument(args[0])
			if err != nil {
				return err
			}

			app.log.WithFields(map[string]any{"charts": len(doc.Charts)}).Info("launching gallery")
			return gallery.Run(doc, app.log)
		},
	}

	return cmd
}
