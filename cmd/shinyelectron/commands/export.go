package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shinyelectron/internal/core/domain"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <source-dir> <dest-dir>",
		Short: "Convert a Shiny app and package it as an Electron app",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			appType, _ := cmd.Flags().GetString("type")
			platforms, _ := cmd.Flags().GetStringSlice("platform")
			archs, _ := cmd.Flags().GetStringSlice("arch")
			icon, _ := cmd.Flags().GetString("icon")
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			noBuild, _ := cmd.Flags().GetBool("no-build")
			runAfter, _ := cmd.Flags().GetBool("run")
			openAfter, _ := cmd.Flags().GetBool("open")
			port, _ := cmd.Flags().GetInt("port")
			devTools, _ := cmd.Flags().GetBool("devtools")
			strict, _ := cmd.Flags().GetBool("strict")
			verbose, _ := cmd.Flags().GetBool("verbose")

			req := domain.ExportRequest{
				SourceDir: args[0],
				DestDir:   args[1],
				AppName:   name,
				AppType:   domain.AppType(appType),
				Icon:      icon,
				Overwrite: overwrite,
				Build:     !noBuild,
				RunAfter:  runAfter,
				OpenAfter: openAfter,
				Verbose:   verbose,
				Port:      port,
				DevTools:  devTools,
				Strict:    strict,
			}
			for _, p := range platforms {
				req.Platforms = append(req.Platforms, domain.Platform(p))
			}
			for _, a := range archs {
				req.Archs = append(req.Archs, domain.Arch(a))
			}

			res, err := c.app.Export(cmd.Context(), req)
			if err != nil {
				return err
			}
			printExportResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Application name (default: source directory name)")
	cmd.Flags().String("type", "", "Application type: r-shinylive, py-shinylive, r-shiny or py-shiny (default: r-shinylive)")
	cmd.Flags().StringSlice("platform", nil, "Target platform: win, mac or linux (repeatable, default: host)")
	cmd.Flags().StringSlice("arch", nil, "Target architecture: x64 or arm64 (repeatable, default: host)")
	cmd.Flags().String("icon", "", "Icon file (.ico for win, .icns for mac, .png for linux); "+
		"its format must suit every --platform, so export each platform separately to brand them all")
	cmd.Flags().Bool("overwrite", false, "Replace a non-empty destination directory")
	cmd.Flags().Bool("no-build", false, "Stop after converting the app")
	cmd.Flags().Bool("run", false, "Launch the built app in development mode")
	cmd.Flags().Bool("open", false, "Reveal the destination in the file browser")
	cmd.Flags().Int("port", 0, "Port the development shell serves the app on")
	cmd.Flags().Bool("devtools", false, "Open developer tools when running the app")
	cmd.Flags().Bool("strict", false, "Fail when no target could be built")
	cmd.Flags().BoolP("verbose", "v", false, "Stream tool output and debug logs")

	return cmd
}

func printExportResult(w io.Writer, res *domain.ExportResult) {
	_, _ = fmt.Fprintf(w, "Converted app: %s\n", res.ConvertedPath)
	if res.ElectronPath == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "Electron app:  %s\n", res.ElectronPath)
	if res.Build == nil {
		return
	}
	for _, t := range res.Build.Targets {
		_, _ = fmt.Fprintf(w, "  %-12s %s\n", t.Target.String(), t.Status)
	}
	for _, a := range res.Build.Artifacts {
		_, _ = fmt.Fprintf(w, "Artifact: %s\n", a)
	}
	for _, warning := range res.Build.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}
