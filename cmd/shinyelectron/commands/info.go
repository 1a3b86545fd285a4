package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <dest-dir>",
		Short: "Show what the last export into a directory produced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			record, err := c.app.Info(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(record)
			}

			_, _ = fmt.Fprintf(w, "App:         %s (%s)\n", record.AppName, record.AppType)
			_, _ = fmt.Fprintf(w, "Run:         %s\n", record.RunID)
			_, _ = fmt.Fprintf(w, "Exported:    %s\n", record.Timestamp.Format(time.RFC3339))
			_, _ = fmt.Fprintf(w, "Platforms:   %s\n", strings.Join(record.Platforms, ", "))
			_, _ = fmt.Fprintf(w, "Archs:       %s\n", strings.Join(record.Archs, ", "))
			_, _ = fmt.Fprintf(w, "Source hash: %s\n", record.SourceHash)
			for _, a := range record.Artifacts {
				_, _ = fmt.Fprintf(w, "Artifact:    %s\n", a)
			}
			for _, warning := range record.Warnings {
				_, _ = fmt.Fprintf(w, "Warning:     %s\n", warning)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the record as JSON")
	return cmd
}
