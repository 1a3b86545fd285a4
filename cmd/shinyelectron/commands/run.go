package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shinyelectron/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <electron-app-dir>",
		Short: "Launch a built Electron app in development mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			devTools, _ := cmd.Flags().GetBool("devtools")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ProjectDir: args[0],
				Port:       port,
				DevTools:   devTools,
			})
		},
	}
	cmd.Flags().Int("port", 0, "Port the development shell serves the app on")
	cmd.Flags().Bool("devtools", false, "Open developer tools")
	return cmd
}
