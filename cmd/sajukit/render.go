package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"sajukit/internal/report"
)

// renderReport writes one report to the command's stdout in the configured
// format. --json forces JSON regardless of config.
func renderReport(cmd *cobra.Command, rep *report.Report, asJSON bool) error {
	out := cmd.OutOrStdout()

	format := cfg.Render.Format
	if asJSON {
		format = "json"
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil

	case "markdown":
		md := rep.Markdown()
		if cfg.Render.Color {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(cfg.Render.Width),
			)
			if err == nil {
				if styled, rerr := renderer.Render(md); rerr == nil {
					fmt.Fprint(out, styled)
					return nil
				}
			}
			// Fall through to plain markdown if the renderer fails.
		}
		fmt.Fprint(out, md)
		return nil

	default:
		fmt.Fprint(out, rep.TextWith(cfg.Render.Separator, 20))
		return nil
	}
}
