package main

import (
	"strings"

	"github.com/spf13/cobra"

	"sajukit/internal/analysis"
	"sajukit/internal/chart"
	"sajukit/internal/hints"
)

var (
	analyzePillars string
	analyzeHints   string
	analyzeStrong  bool
	analyzeVoid    string
	analyzeJSON    bool
)

// analyzeCmd runs the natal chart analysis
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a natal four-pillars chart",
	Long: `Builds a natal chart from four pillar tokens and runs the full
analysis: overview, palace meanings, ten-god classification, branch
relations, rootedness, vault states, void branches, and body/use grouping.

Example:
  sajukit analyze --pillars 丙申,丙申,辛酉,丁未 --strong-day-stem=false
  sajukit analyze --pillars 병신,병신,신유,정미 --hints hints.yaml`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzePillars, "pillars", "", "Four pillars: year,month,day,hour (e.g. 丙申,丙申,辛酉,丁未)")
	analyzeCmd.Flags().StringVar(&analyzeHints, "hints", "", "Interpretation hints YAML file (default: config hints path)")
	analyzeCmd.Flags().BoolVar(&analyzeStrong, "strong-day-stem", false, "Treat the day stem as strong; omit the flag entirely when strength is unknown")
	analyzeCmd.Flags().StringVar(&analyzeVoid, "void", "", "Override void branches, comma separated (e.g. 子,丑)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the report as JSON")
	_ = analyzeCmd.MarkFlagRequired("pillars")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	c, err := parseChart(analyzePillars)
	if err != nil {
		return err
	}

	opts := []analysis.Option{analysis.WithLogger(logger)}

	var h *hints.Hints
	hintsPath := analyzeHints
	if hintsPath == "" {
		hintsPath = cfg.Hints.Path
	}
	if hintsPath != "" {
		var warnings []string
		h, warnings, err = hints.Load(hintsPath)
		if err != nil {
			return err
		}
		if len(warnings) > 0 {
			opts = append(opts, analysis.WithHintWarnings(warnings))
		}
	}

	if analyzeVoid != "" {
		if h == nil {
			h = &hints.Hints{}
		}
		if h.VoidTable == nil {
			h.VoidTable = make(map[string][]string)
		}
		day := c.At(chart.Day)
		h.VoidTable[day.Stem.Name+day.Branch.Name] = strings.Split(analyzeVoid, ",")
	}

	if h != nil {
		opts = append(opts, analysis.WithHints(h))
	}
	if cmd.Flags().Changed("strong-day-stem") {
		opts = append(opts, analysis.WithStrongDayStem(analyzeStrong))
	}

	a, err := analysis.New(c, opts...)
	if err != nil {
		return err
	}
	return renderReport(cmd, a.Analyze(), analyzeJSON)
}
