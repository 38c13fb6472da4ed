package main

import (
	"github.com/spf13/cobra"

	"github.com/mnhtng/shadcn-chart/internal/logger"
	"github.com/mnhtng/shadcn-chart/pkg/chart"
)

type rootFlags struct {
	logLevel string
	dark     bool
}

// appState carries the logger and persistent flags across subcommands.
type appState struct {
	flags rootFlags
	log   *logger.Logger
}

func (a *appState) theme() chart.Theme {
	if a.flags.dark {
		return chart.DarkTheme()
	}
	return chart.DefaultTheme()
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	app := &appState{log: log}

	cmd := &cobra.Command{
		Use:           "chartcard",
		Short:         "chartcard renders data charts as styled terminal cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.flags.logLevel == "" {
				return nil
			}
			rebuilt, err := logger.New(logger.Options{Level: app.flags.logLevel, HumanReadable: true})
			if err != nil {
				return err
			}
			app.log = rebuilt
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&app.flags.dark, "dark", false, "Use the dark color theme")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
