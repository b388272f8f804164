package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"sajukit/internal/analysis"
	"sajukit/internal/hints"
	"sajukit/internal/report"
)

var (
	batchConcurrency int
	batchOutDir      string
)

// batchProfile is one named chart in a batch file.
type batchProfile struct {
	Name          string `yaml:"name"`
	Pillars       string `yaml:"pillars"`
	Hints         string `yaml:"hints,omitempty"`
	StrongDayStem *bool  `yaml:"strong_day_stem,omitempty"`
}

// batchFile is the YAML shape the batch command reads.
type batchFile struct {
	Profiles []batchProfile `yaml:"profiles"`
}

// batchCmd analyzes a list of charts concurrently
var batchCmd = &cobra.Command{
	Use:   "batch [profiles.yaml]",
	Short: "Analyze a YAML list of named charts concurrently",
	Long: `Reads a YAML file of named profiles and analyzes them concurrently,
emitting reports in input order.

Profile file shape:
  profiles:
    - name: 건명-1956
      pillars: 丙申,丙申,辛酉,丁未
      strong_day_stem: false
    - name: 곤명-1984
      pillars: 갑자,병인,무진,경신`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Max concurrent analyses (default: config batch workers)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Write one report file per profile instead of printing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profiles: %w", err)
	}

	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse profiles: %w", err)
	}
	if len(file.Profiles) == 0 {
		return fmt.Errorf("no profiles in %s", args[0])
	}

	workers := batchConcurrency
	if workers <= 0 {
		workers = cfg.Batch.Workers
	}

	reports, err := analyzeProfiles(file.Profiles, workers, logger)
	if err != nil {
		return err
	}

	outDir := batchOutDir
	if outDir == "" {
		outDir = cfg.Batch.OutDir
	}
	if outDir != "" {
		return writeReports(outDir, file.Profiles, reports)
	}

	for _, rep := range reports {
		if err := renderReport(cmd, rep, false); err != nil {
			return err
		}
	}
	return nil
}

// analyzeProfiles fans the profiles out over a bounded errgroup and
// collects one report per profile in input order.
func analyzeProfiles(profiles []batchProfile, workers int, logger *zap.Logger) ([]*report.Report, error) {
	reports := make([]*report.Report, len(profiles))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, p := range profiles {
		eg.Go(func() error {
			rep, err := analyzeProfile(p, logger)
			if err != nil {
				return fmt.Errorf("profile %q: %w", p.Name, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func analyzeProfile(p batchProfile, logger *zap.Logger) (*report.Report, error) {
	c, err := parseChart(p.Pillars)
	if err != nil {
		return nil, err
	}

	opts := []analysis.Option{analysis.WithLogger(logger)}
	if p.Hints != "" {
		h, warnings, err := hints.Load(p.Hints)
		if err != nil {
			return nil, err
		}
		opts = append(opts, analysis.WithHints(h))
		if len(warnings) > 0 {
			opts = append(opts, analysis.WithHintWarnings(warnings))
		}
	}
	if p.StrongDayStem != nil {
		opts = append(opts, analysis.WithStrongDayStem(*p.StrongDayStem))
	}

	a, err := analysis.New(c, opts...)
	if err != nil {
		return nil, err
	}
	rep := a.Analyze()
	if p.Name != "" {
		rep.Subject = p.Name + " | " + rep.Subject
	}
	return rep, nil
}

// writeReports writes one file per profile into dir, named after the
// profile with an extension matching the configured render format.
func writeReports(dir string, profiles []batchProfile, reports []*report.Report) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, rep := range reports {
		name := profiles[i].Name
		if name == "" {
			name = fmt.Sprintf("profile-%d", i+1)
		}

		var content, ext string
		switch cfg.Render.Format {
		case "json":
			data, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return fmt.Errorf("profile %q: failed to encode report: %w", name, err)
			}
			content, ext = string(data)+"\n", ".json"
		case "markdown":
			content, ext = rep.Markdown(), ".md"
		default:
			content, ext = rep.TextWith(cfg.Render.Separator, 20), ".txt"
		}

		path := filepath.Join(dir, name+ext)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("profile %q: failed to write report: %w", name, err)
		}
	}
	return nil
}
