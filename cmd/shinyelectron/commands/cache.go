package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the runtime and dependency cache",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached runtimes and packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, _ := cmd.Flags().GetString("scope")
			return c.app.CacheClear(cmd.Context(), scope)
		},
	}
	clearCmd.Flags().StringP("scope", "s", "all", "What to clear: all, runtime (r) or deps (npm)")

	dirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.CacheDir())
		},
	}

	cmd.AddCommand(clearCmd, dirCmd)
	return cmd
}
