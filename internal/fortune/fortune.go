// Package fortune overlays fortune-cycle pillars (대운/세운) on a natal
// chart: pairwise relations between the six labeled branch sources, triad
// completion across them, vault activation, and stem recurrence.
package fortune

import (
	"fmt"

	"go.uber.org/zap"

	"sajukit/internal/chart"
	"sajukit/internal/report"
	"sajukit/internal/rules"
)

// source is one labeled branch origin among the six.
type source struct {
	Label  string
	Branch string
}

// Analyzer compares one decade pillar and one year pillar against a natal
// chart. Cycle pillars never receive palace assignment.
type Analyzer struct {
	chart  *chart.Chart
	decade chart.Pillar
	year   chart.Pillar
	logger *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger injects a logger; the default is a nop.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// New builds a fortune analyzer. Pillar well-formedness is the only input
// requirement; symbol errors surface from pillar construction, not here.
func New(c *chart.Chart, decade, year chart.Pillar, opts ...Option) *Analyzer {
	a := &Analyzer{chart: c, decade: decade, year: year, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// sources returns the six labeled branch origins in fixed order.
func (a *Analyzer) sources() []source {
	return []source{
		{Label: "원국-년", Branch: a.chart.At(chart.Year).Branch.Name},
		{Label: "원국-월", Branch: a.chart.At(chart.Month).Branch.Name},
		{Label: "원국-일", Branch: a.chart.At(chart.Day).Branch.Name},
		{Label: "원국-시", Branch: a.chart.At(chart.Hour).Branch.Name},
		{Label: "대운", Branch: a.decade.Branch.Name},
		{Label: "세운", Branch: a.year.Branch.Name},
	}
}

// Analyze runs the four overlay passes and composes the report.
func (a *Analyzer) Analyze() *report.Report {
	subject := fmt.Sprintf("%s | 대운 %s | 세운 %s", a.chart, a.decade, a.year)
	rep := report.New(report.KindFortune, subject)

	rep.Add(a.Interactions())
	rep.Add(a.Triads())
	rep.Add(a.Vault())
	rep.Add(a.StemRecurrence())

	a.logger.Debug("fortune analysis complete",
		zap.String("subject", subject),
		zap.Int("sections", len(rep.Sections)))
	return rep
}

// Interactions tests every unordered pair among the six branch sources
// against the five relation sets.
func (a *Analyzer) Interactions() report.Section {
	srcs := a.sources()
	lines := []string{
		fmt.Sprintf("대운: %s", a.decade),
		fmt.Sprintf("세운: %s", a.year),
	}

	found := false
	for i := 0; i < len(srcs); i++ {
		for j := i + 1; j < len(srcs); j++ {
			kind, ok := rules.Relation(srcs[i].Branch, srcs[j].Branch)
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("  - %s(%s) ↔ %s(%s): %s(%s) → %s",
				srcs[i].Label, srcs[i].Branch, srcs[j].Label, srcs[j].Branch,
				kind, kind.Hanja(), kind.Meaning()))
			found = true
		}
	}
	if !found {
		lines = append(lines, "  - 운과 원국 사이에 특이 관계가 발견되지 않았습니다.")
	}
	return report.Section{Name: "interactions", Title: "대운/세운 합·충·형·파·천 분석", Lines: lines}
}

// Triads tests every 3-subset of the six sources for exact triad
// completion.
func (a *Analyzer) Triads() report.Section {
	srcs := a.sources()
	var lines []string

	for i := 0; i < len(srcs); i++ {
		for j := i + 1; j < len(srcs); j++ {
			for k := j + 1; k < len(srcs); k++ {
				elem, ok := rules.TriadElement(srcs[i].Branch, srcs[j].Branch, srcs[k].Branch)
				if !ok {
					continue
				}
				lines = append(lines, fmt.Sprintf("  - %s/%s/%s 삼합 성립 (%s/%s/%s) → %s 기운 극대화",
					srcs[i].Branch, srcs[j].Branch, srcs[k].Branch,
					srcs[i].Label, srcs[j].Label, srcs[k].Label, elem))
			}
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "  - 삼합이 성립하지 않았습니다.")
	}
	return report.Section{Name: "triads", Title: "삼합 성립 여부", Lines: lines}
}

// Vault reports each vault branch among the six sources as active (庫) when
// it clashes with or is penalized by a branch at a different source,
// dormant (墓) otherwise.
func (a *Analyzer) Vault() report.Section {
	srcs := a.sources()
	var lines []string

	for i, src := range srcs {
		if !rules.IsVault(src.Branch) {
			continue
		}
		activated := false
		for j, other := range srcs {
			if i == j {
				continue
			}
			if rules.InRelation(rules.Clash, src.Branch, other.Branch) ||
				rules.InRelation(rules.Penalty, src.Branch, other.Branch) {
				activated = true
				break
			}
		}
		if activated {
			lines = append(lines, fmt.Sprintf("  - %s(%s): 입묘 → 庫(고)로 활용", src.Label, src.Branch))
		} else {
			lines = append(lines, fmt.Sprintf("  - %s(%s): 입묘 → 墓(묘)로 정체", src.Label, src.Branch))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "  - 운과 원국에 진·술·축·미 묘고지가 없습니다.")
	}
	return report.Section{Name: "vault", Title: "묘고 상태", Lines: lines}
}

// StemRecurrence flags decade/year stems that repeat a natal stem,
// amplifying that stem's quality.
func (a *Analyzer) StemRecurrence() report.Section {
	cycles := []struct {
		label string
		stem  string
	}{
		{"대운", a.decade.Stem.Name},
		{"세운", a.year.Stem.Name},
	}

	var lines []string
	for _, cycle := range cycles {
		for _, pos := range chart.Positions() {
			if a.chart.At(pos).Stem.Name == cycle.stem {
				lines = append(lines, fmt.Sprintf("  - %s 천간 %s이 원국 %s 천간과 겹쳐 해당 기운이 증폭됩니다.",
					cycle.label, cycle.stem, pos.PalaceKey()))
			}
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "  - 운의 천간이 원국 천간과 겹치지 않습니다.")
	}
	return report.Section{Name: "stem-recurrence", Title: "천간 중복", Lines: lines}
}
