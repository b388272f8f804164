// Package analysis implements the natal-chart analysis passes: palace
// narrative, ten-god classification anchored on the day stem, the
// branch-interaction scan, chart-wide rootedness, vault/tomb status, the
// void check, and body/use grouping. Each pass is independently callable and
// returns its own report section; Analyze composes them in fixed order so
// the report shape is stable for downstream formatters.
package analysis

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sajukit/internal/chart"
	"sajukit/internal/hints"
	"sajukit/internal/report"
	"sajukit/internal/rules"
)

// DayMaster is the sentinel classification for the day stem itself: not a
// ten-god, just the chart's reference point.
const DayMaster = "일간"

// Classification is the result of classifying one stem against the day stem.
type Classification struct {
	Name         string
	DayMaster    bool
	Relation     rules.ElementRelation
	SamePolarity bool
}

// Analyzer runs the natal analysis passes over one chart. An Analyzer is
// cheap to build and not meant for concurrent use; build one per analysis.
type Analyzer struct {
	chart        *chart.Chart
	hints        *hints.Hints
	hintWarnings []string
	strong       *bool
	tenGods      *chart.TenGodCatalog
	logger       *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithHints attaches document-derived hints. The hints are normalized on
// construction; anything malformed degrades to defaults and surfaces as a
// report warning.
func WithHints(h *hints.Hints) Option {
	return func(a *Analyzer) { a.hints = h }
}

// WithHintWarnings carries loader warnings into the report.
func WithHintWarnings(warnings []string) Option {
	return func(a *Analyzer) { a.hintWarnings = append(a.hintWarnings, warnings...) }
}

// WithStrongDayStem supplies the day-stem strength flag the body/use pass
// needs. Without it that pass reports that the flag was not supplied.
func WithStrongDayStem(strong bool) Option {
	return func(a *Analyzer) { a.strong = &strong }
}

// WithTenGodCatalog injects a ten-god catalog (tests mostly); the default is
// the shared process-wide catalog.
func WithTenGodCatalog(c *chart.TenGodCatalog) Option {
	return func(a *Analyzer) { a.tenGods = c }
}

// WithLogger injects a logger; the default is a nop so library use never
// logs unbidden.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// New builds an analyzer for the chart. The ten-god table is checked for
// totality here: a gap is a data-integrity failure and surfaces once, at
// construction, instead of corrupting per-pillar results later.
func New(c *chart.Chart, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		chart:   c,
		tenGods: chart.DefaultTenGodCatalog(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, rel := range rules.ElementRelations() {
		for _, same := range []bool{true, false} {
			if _, err := rules.TenGodFor(rel, same); err != nil {
				return nil, fmt.Errorf("ten-god table integrity check failed: %w", err)
			}
		}
	}

	a.hintWarnings = append(a.hintWarnings, a.hints.Normalize()...)
	return a, nil
}

// Classify classifies target against self per the ten-god rules. The day
// stem classifies to the DayMaster sentinel.
func (a *Analyzer) Classify(self, target chart.Stem) Classification {
	if self.Name == target.Name {
		return Classification{Name: DayMaster, DayMaster: true, Relation: rules.RelSame, SamePolarity: true}
	}
	rel := rules.ElementRelationOf(self.Element, target.Element)
	same := self.Polarity == target.Polarity
	name, err := rules.TenGodFor(rel, same)
	if err != nil {
		// Unreachable after the construction-time totality check.
		name = "십신 계산 오류"
	}
	return Classification{Name: name, Relation: rel, SamePolarity: same}
}

// Analyze runs every pass in fixed order and composes the report.
func (a *Analyzer) Analyze() *report.Report {
	rep := report.New(report.KindNatal, a.chart.String())
	rep.Warn(a.hintWarnings...)

	rep.Add(a.Overview())
	rep.Add(a.PalaceNarrative())
	rep.Add(a.TenGodNarrative())
	rep.Add(a.BranchRelations())
	rep.Add(a.Rootedness())
	rep.Add(a.Vault())
	rep.Add(a.Void(nil))
	rep.Add(a.BodyUse())

	a.logger.Debug("natal analysis complete",
		zap.String("chart", a.chart.String()),
		zap.Int("sections", len(rep.Sections)),
		zap.Int("warnings", len(rep.Warnings)))
	return rep
}

// Overview renders the pillar grid and the day-stem identity line.
func (a *Analyzer) Overview() report.Section {
	var lines []string
	for _, pos := range chart.Positions() {
		p := a.chart.At(pos)
		lines = append(lines, fmt.Sprintf("  - %s: %s%s", pos.PalaceKey(), p.Stem.Name, p.Branch.Name))
	}
	day := a.chart.DayStem()
	lines = append(lines, fmt.Sprintf("일간: %s (%s/%s)", day.Name, day.Element, day.Polarity))
	return report.Section{Name: "overview", Title: "사주 개요", Lines: lines}
}

// PalaceNarrative emits each pillar's palace metadata in chart order.
func (a *Analyzer) PalaceNarrative() report.Section {
	var lines []string
	for _, p := range a.chart.Pillars() {
		if p.Palace == nil {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("**%s**", p),
			fmt.Sprintf("  - 궁위: %s", p.Palace.Key),
			fmt.Sprintf("  - 해당 시기: %s", p.Palace.LifeStage),
			fmt.Sprintf("  - 대표 육친: %s", p.Palace.Kin),
			fmt.Sprintf("  - 상징 의미: %s", p.Palace.Meaning))
	}
	return report.Section{Name: "palace", Title: "궁위 분석", Lines: lines}
}

// TenGodNarrative classifies each surface stem and every hidden sub-stem
// against the day stem. Rooted surface stems are marked substantial (실),
// unrooted ones hollow (허투) with the ten-god description attached.
func (a *Analyzer) TenGodNarrative() report.Section {
	day := a.chart.DayStem()
	var lines []string

	for _, p := range a.chart.Pillars() {
		lines = append(lines, fmt.Sprintf("**%s**", p))

		cls := a.Classify(day, p.Stem)
		if cls.DayMaster {
			lines = append(lines, fmt.Sprintf("  > 천간: %s (일간)", p.Stem.Name))
		} else {
			lines = append(lines, fmt.Sprintf("  > 천간: %s는 %s입니다.", p.Stem.Name, cls.Name))
			if p.HasRoot() {
				lines = append(lines, "    - 지지의 뿌리를 얻어 실(實)합니다.")
			} else {
				extra := ""
				if god, ok := a.tenGods.Get(cls.Name); ok {
					extra = fmt.Sprintf(" (%s)", god.Description)
				}
				lines = append(lines, fmt.Sprintf("    - 지지에 뿌리가 없어 허투(虛透)합니다.%s", extra))
			}
		}

		lines = append(lines, "  > 지장간 십신:")
		for _, h := range p.Branch.Hidden {
			hiddenCls := a.Classify(day, chart.Stem{Name: h.Name, Element: h.Element, Polarity: h.Polarity})
			lines = append(lines, fmt.Sprintf("    - %s는 %s입니다.", h.Name, hiddenCls.Name))
		}
	}
	return report.Section{Name: "ten-gods", Title: "십신 분석", Lines: lines}
}

// BranchRelations scans every unordered pair of the four natal branches
// against the five relation sets and every 3-subset against the triads.
func (a *Analyzer) BranchRelations() report.Section {
	branches := a.chart.Branches()
	var lines []string

	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			if kind, ok := rules.Relation(branches[i], branches[j]); ok {
				lines = append(lines, fmt.Sprintf("  - %s/%s: %s(%s) → %s",
					branches[i], branches[j], kind, kind.Hanja(), kind.Meaning()))
			}
		}
	}

	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			for k := j + 1; k < len(branches); k++ {
				if elem, ok := rules.TriadElement(branches[i], branches[j], branches[k]); ok {
					lines = append(lines, fmt.Sprintf("  - %s/%s/%s: 삼합으로 %s 기운이 강화됩니다.",
						branches[i], branches[j], branches[k], elem))
				}
			}
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "  - 사주에 특이한 지지 관계가 없습니다.")
	}
	return report.Section{Name: "branch-relations", Title: "지지 관계 분석 (합·충·형·파·천)", Lines: lines}
}

// Rootedness marks each pillar's stem substantial (실) when its own branch
// shares its element or any branch in the chart hides a sub-stem of that
// element, hollow (허) otherwise.
func (a *Analyzer) Rootedness() report.Section {
	var lines []string
	for _, p := range a.chart.Pillars() {
		substantial := p.Stem.Element == p.Branch.Element || a.rootedAnywhere(p.Stem.Element)
		status := "허(虛)"
		if substantial {
			status = "실(實)"
		}
		lines = append(lines, fmt.Sprintf("  - %s%s주: %s한 기세", p.Stem.Name, p.Branch.Name, status))
	}
	if a.hints != nil {
		for _, rule := range a.hints.HollowRules {
			lines = append(lines, fmt.Sprintf("  ※ 근거: %s", rule))
		}
	}
	return report.Section{Name: "rootedness", Title: "간지 허실", Lines: lines}
}

// rootedAnywhere reports whether any branch in the chart hides a sub-stem of
// the element.
func (a *Analyzer) rootedAnywhere(elem rules.Element) bool {
	for _, p := range a.chart.Pillars() {
		for _, h := range p.Branch.Hidden {
			if h.Element == elem {
				return true
			}
		}
	}
	return false
}

// Vault reports each 辰戌丑未 branch in the chart as an active storehouse
// (庫) when it clashes with or is penalized by a branch at another position,
// dormant tomb (墓) otherwise.
func (a *Analyzer) Vault() report.Section {
	branches := a.chart.Branches()
	var lines []string

	for i, branch := range branches {
		if !rules.IsVault(branch) {
			continue
		}
		activated := false
		for j, other := range branches {
			if i == j {
				continue
			}
			if rules.InRelation(rules.Clash, branch, other) || rules.InRelation(rules.Penalty, branch, other) {
				activated = true
				break
			}
		}
		if activated {
			lines = append(lines, fmt.Sprintf("  - %s: 庫(고) → 활용 가능", branch))
		} else {
			lines = append(lines, fmt.Sprintf("  - %s: 墓(묘) → 잠재·정체", branch))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "  - 사주에 진·술·축·미 묘고지가 없습니다.")
	}
	if a.hints != nil {
		for _, rule := range a.hints.VaultRules {
			lines = append(lines, fmt.Sprintf("  ※ 근거: %s", rule))
		}
	}
	return report.Section{Name: "vault", Title: "묘고 상태", Lines: lines}
}

// Void reports which void symbols appear in the chart. With no symbols
// supplied, the hints void table is consulted for the day pillar first,
// falling back to the sexagenary derivation.
func (a *Analyzer) Void(symbols []string) report.Section {
	day := a.chart.At(chart.Day)
	var lines []string

	if len(symbols) == 0 {
		if fromHints, ok := a.hints.VoidSymbolsFor(day.Stem.Name, day.Branch.Name); ok {
			symbols = fromHints
			lines = append(lines, fmt.Sprintf("공망: %s (문서 힌트, 일주 %s%s 기준)",
				strings.Join(symbols, "·"), day.Stem.Name, day.Branch.Name))
		} else if derived, err := rules.VoidBranches(day.Stem.Name, day.Branch.Name); err == nil {
			symbols = derived[:]
			lines = append(lines, fmt.Sprintf("공망: %s·%s (일주 %s%s 기준)",
				derived[0], derived[1], day.Stem.Name, day.Branch.Name))
		}
	}

	var matched []string
	for _, symbol := range symbols {
		if containsString(a.chart.StemNames(), symbol) || containsString(a.chart.Branches(), symbol) {
			matched = append(matched, symbol)
		}
	}

	if len(matched) > 0 {
		lines = append(lines, fmt.Sprintf("사주에 공망 기운 %s 이/가 포함됩니다 → 허무·손실·유명무실 경향",
			strings.Join(matched, ", ")))
	} else {
		lines = append(lines, "공망 기운이 포함되지 않았습니다.")
	}
	return report.Section{Name: "void", Title: "공망(空亡) 체크", Lines: lines}
}

// BodyUse groups each pillar stem's ten-god into body (체) or use (용).
// Requires the day-stem strength flag; hints groupings override the default
// rule when present.
func (a *Analyzer) BodyUse() report.Section {
	if a.strong == nil {
		return report.Section{Name: "body-use", Title: "체용(體用) 및 주빈(主賓) 분석", Lines: []string{
			"일간 강약 정보가 지정되지 않아 체용 판별을 건너뜁니다.",
		}}
	}

	day := a.chart.DayStem()
	lines := []string{fmt.Sprintf("일간 %s 기준으로 체/용을 판별합니다.", day.Name)}

	for _, p := range a.chart.Pillars() {
		cls := a.Classify(day, p.Stem)
		if cls.DayMaster {
			lines = append(lines, fmt.Sprintf("  - %s: 일간(기준)", p.Stem.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("  - %s: %s (%s)", p.Stem.Name, a.bodyUseOf(cls.Name), cls.Name))
	}

	lines = append(lines, "주위(主位): 일간·일주·시주", "빈위(賓位): 년주·월주 및 외부 운")
	return report.Section{Name: "body-use", Title: "체용(體用) 및 주빈(主賓) 분석", Lines: lines}
}

// bodyUseOf applies the hints grouping when present, the built-in convention
// otherwise: 식신/상관 follow the strength flag, the self/resource gods are
// always body, everything else is use.
func (a *Analyzer) bodyUseOf(tenGod string) string {
	strong := a.strong != nil && *a.strong

	if a.hints.HasBodyUseGroups() {
		switch {
		case containsString(a.hints.Group(hints.GroupBody), tenGod):
			return hints.GroupBody
		case containsString(a.hints.Group(hints.GroupUse), tenGod):
			return hints.GroupUse
		case containsString(a.hints.Group(hints.GroupNeutral), tenGod):
			if strong {
				return hints.GroupUse
			}
			return hints.GroupBody
		}
	}

	switch tenGod {
	case "식신", "상관":
		if strong {
			return hints.GroupUse
		}
		return hints.GroupBody
	case "비견", "겁재", "정인", "편인":
		return hints.GroupBody
	default:
		return hints.GroupUse
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
