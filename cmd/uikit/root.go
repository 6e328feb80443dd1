package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	strict     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uikit",
		Short:         "Render, inspect and try out go-uikit components",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ./uikit.yaml or the user config dir)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Fail on unknown variant values instead of falling back")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVariantsCmd(flags))
	cmd.AddCommand(newPlaygroundCmd(flags))
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
