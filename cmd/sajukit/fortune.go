package main

import (
	"github.com/spf13/cobra"

	"sajukit/internal/fortune"
)

var (
	fortunePillars string
	fortuneDecade  string
	fortuneYear    string
	fortuneJSON    bool
)

// fortuneCmd overlays decade and year cycle pillars on a natal chart
var fortuneCmd = &cobra.Command{
	Use:   "fortune",
	Short: "Overlay decade and year cycle pillars on a natal chart",
	Long: `Replays the branch relation sets between a natal chart and one decade
pillar plus one year pillar: pairwise interactions, triad completion, vault
activation, and stem recurrence.

Example:
  sajukit fortune --pillars 丙申,丙申,辛酉,丁未 --decade 己丑 --year 丁卯`,
	RunE: runFortune,
}

func init() {
	fortuneCmd.Flags().StringVar(&fortunePillars, "pillars", "", "Four natal pillars: year,month,day,hour")
	fortuneCmd.Flags().StringVar(&fortuneDecade, "decade", "", "Decade cycle pillar (대운), e.g. 己丑")
	fortuneCmd.Flags().StringVar(&fortuneYear, "year", "", "Year cycle pillar (세운), e.g. 丁卯")
	fortuneCmd.Flags().BoolVar(&fortuneJSON, "json", false, "Emit the report as JSON")
	_ = fortuneCmd.MarkFlagRequired("pillars")
	_ = fortuneCmd.MarkFlagRequired("decade")
	_ = fortuneCmd.MarkFlagRequired("year")
}

func runFortune(cmd *cobra.Command, args []string) error {
	c, err := parseChart(fortunePillars)
	if err != nil {
		return err
	}
	decade, err := parsePillar(fortuneDecade)
	if err != nil {
		return err
	}
	year, err := parsePillar(fortuneYear)
	if err != nil {
		return err
	}

	a := fortune.New(c, decade, year, fortune.WithLogger(logger))
	return renderReport(cmd, a.Analyze(), fortuneJSON)
}
