package analysis

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"sajukit/internal/chart"
	"sajukit/internal/hints"
	"sajukit/internal/report"
)

// The chart the source documents use throughout: 丙申 丙申 辛酉 丁未, day
// stem 辛 (metal, yin).
func sampleChart(t *testing.T) *chart.Chart {
	t.Helper()
	c, err := chart.NewChart("丙", "申", "丙", "申", "辛", "酉", "丁", "未")
	require.NoError(t, err)
	return c
}

func newAnalyzer(t *testing.T, c *chart.Chart, opts ...Option) *Analyzer {
	t.Helper()
	a, err := New(c, opts...)
	require.NoError(t, err)
	return a
}

func TestClassifyScenario(t *testing.T) {
	a := newAnalyzer(t, sampleChart(t))
	day := a.chart.DayStem()

	// 丙 (fire, yang) against 辛 (metal, yin): fire dominates metal, so the
	// day stem is dominated, polarities differ → 정관.
	bing, err := chart.LookupStem("丙")
	require.NoError(t, err)
	cls := a.Classify(day, bing)
	assert.Equal(t, "정관", cls.Name)
	assert.False(t, cls.DayMaster)
	assert.False(t, cls.SamePolarity)

	// 丁 (fire, yin): same domination, matching polarity → 편관.
	ding, err := chart.LookupStem("丁")
	require.NoError(t, err)
	assert.Equal(t, "편관", a.Classify(day, ding).Name)

	// The day stem itself is the sentinel.
	cls = a.Classify(day, day)
	assert.True(t, cls.DayMaster)
	assert.Equal(t, DayMaster, cls.Name)
}

func TestClassifyTotality(t *testing.T) {
	a := newAnalyzer(t, sampleChart(t))

	valid := map[string]bool{DayMaster: true}
	for _, name := range chart.DefaultTenGodCatalog().Names() {
		valid[name] = true
	}

	stems := []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	for _, selfName := range stems {
		self, err := chart.LookupStem(selfName)
		require.NoError(t, err)
		for _, targetName := range stems {
			target, err := chart.LookupStem(targetName)
			require.NoError(t, err)
			cls := a.Classify(self, target)
			assert.True(t, valid[cls.Name], "Classify(%s, %s) = %q", selfName, targetName, cls.Name)
		}
	}
}

func TestAnalyzeSectionOrder(t *testing.T) {
	rep := newAnalyzer(t, sampleChart(t)).Analyze()

	assert.Equal(t, report.KindNatal, rep.Kind)
	assert.Equal(t, "丙申 丙申 辛酉 丁未", rep.Subject)

	var names []string
	for _, s := range rep.Sections {
		names = append(names, s.Name)
		assert.NotEmpty(t, s.Lines, "section %s must never be empty", s.Name)
	}
	assert.Equal(t, []string{
		"overview", "palace", "ten-gods", "branch-relations",
		"rootedness", "vault", "void", "body-use",
	}, names)
}

func TestPalaceNarrative(t *testing.T) {
	s := newAnalyzer(t, sampleChart(t)).PalaceNarrative()
	text := strings.Join(s.Lines, "\n")

	assert.Contains(t, text, "**丙申(년주)**")
	assert.Contains(t, text, "  - 대표 육친: 배우자궁")
	assert.Contains(t, text, "  - 상징 의미: 자녀·후손·말년")
}

func TestTenGodNarrative(t *testing.T) {
	s := newAnalyzer(t, sampleChart(t)).TenGodNarrative()
	text := strings.Join(s.Lines, "\n")

	// Surface stems: both 丙 are unrooted 정관 (申 hides no fire), 丁 is
	// rooted in 未 (hides 정), 辛 is the day master.
	assert.Contains(t, text, "천간: 丙는 정관입니다.")
	assert.Contains(t, text, "지지에 뿌리가 없어 허투(虛透)합니다. (명예·규범)")
	assert.Contains(t, text, "천간: 丁는 편관입니다.")
	assert.Contains(t, text, "지지의 뿌리를 얻어 실(實)합니다.")
	assert.Contains(t, text, "천간: 辛 (일간)")

	// Hidden sub-stems surface ten-gods invisible at surface level, e.g.
	// 임 (water, yang) in 申 against 辛 → 상관.
	assert.Contains(t, text, "임는 상관입니다.")
	// 신 (metal, yin) hidden in 酉 matches the day stem's element and
	// polarity → 비견.
	assert.Contains(t, text, "신는 비견입니다.")
}

func TestBranchRelationsAbsence(t *testing.T) {
	// 申申酉未 forms no pairwise relation and no triad.
	s := newAnalyzer(t, sampleChart(t)).BranchRelations()
	require.Len(t, s.Lines, 1)
	assert.Equal(t, "  - 사주에 특이한 지지 관계가 없습니다.", s.Lines[0])
}

func TestBranchRelationsFindings(t *testing.T) {
	// 子午 clash, 子丑 combination, and the 寅午戌 triad.
	c, err := chart.NewChart("甲", "寅", "丙", "午", "戊", "戌", "庚", "子")
	require.NoError(t, err)

	s := newAnalyzer(t, c).BranchRelations()
	text := strings.Join(s.Lines, "\n")
	assert.Contains(t, text, "午/子: 충(沖) → 충돌·변화·분리")
	assert.Contains(t, text, "寅/午/戌: 삼합으로 화 기운이 강화됩니다.")
	assert.NotContains(t, text, "특이한 지지 관계가 없습니다")
}

func TestRootedness(t *testing.T) {
	// 未 hides 정 (fire), so even the unrooted-looking 丙 stems find a
	// chart-wide root; all four pillars come out substantial.
	s := newAnalyzer(t, sampleChart(t)).Rootedness()
	text := strings.Join(s.Lines, "\n")
	assert.Contains(t, text, "丙申주: 실(實)한 기세")
	assert.Contains(t, text, "辛酉주: 실(實)한 기세")
	assert.Contains(t, text, "丁未주: 실(實)한 기세")
	assert.NotContains(t, text, "허(虛)")
}

func TestRootednessHollow(t *testing.T) {
	// 壬子 癸亥 甲寅 乙卯: no branch carries or hides any fire or metal, so
	// a 丙 stem would be hollow. Chart: 丙 on 寅? 寅 hides 병 (fire) — use a
	// chart with no fire support at all for 庚 (metal): 壬子 癸亥 庚寅 乙卯.
	c, err := chart.NewChart("壬", "子", "癸", "亥", "庚", "寅", "乙", "卯")
	require.NoError(t, err)

	s := newAnalyzer(t, c).Rootedness()
	text := strings.Join(s.Lines, "\n")
	assert.Contains(t, text, "庚寅주: 허(虛)한 기세")
	assert.Contains(t, text, "壬子주: 실(實)한 기세")
}

func TestVaultDormant(t *testing.T) {
	// 未 meets no clash or penalty among 申申酉 → dormant tomb.
	s := newAnalyzer(t, sampleChart(t)).Vault()
	require.Len(t, s.Lines, 1)
	assert.Equal(t, "  - 未: 墓(묘) → 잠재·정체", s.Lines[0])
}

func TestVaultActive(t *testing.T) {
	// 辰戌 clash: both vault branches activate.
	c, err := chart.NewChart("甲", "辰", "丙", "戌", "辛", "酉", "丁", "卯")
	require.NoError(t, err)

	s := newAnalyzer(t, c).Vault()
	text := strings.Join(s.Lines, "\n")
	assert.Contains(t, text, "辰: 庫(고) → 활용 가능")
	assert.Contains(t, text, "戌: 庫(고) → 활용 가능")
}

func TestVaultAbsence(t *testing.T) {
	c, err := chart.NewChart("壬", "子", "癸", "亥", "庚", "寅", "乙", "卯")
	require.NoError(t, err)

	s := newAnalyzer(t, c).Vault()
	require.Len(t, s.Lines, 1)
	assert.Contains(t, s.Lines[0], "묘고지가 없습니다")
}

func TestVoidExplicitSymbols(t *testing.T) {
	a := newAnalyzer(t, sampleChart(t))

	s := a.Void([]string{"戌", "亥"})
	assert.Contains(t, strings.Join(s.Lines, "\n"), "공망 기운이 포함되지 않았습니다.")

	s = a.Void([]string{"酉", "亥"})
	assert.Contains(t, strings.Join(s.Lines, "\n"), "사주에 공망 기운 酉 이/가 포함됩니다")
}

func TestVoidDerivedFromDayPillar(t *testing.T) {
	// Day pillar 辛酉 sits in the 甲寅 decade → voids 子丑, absent from the
	// chart.
	s := newAnalyzer(t, sampleChart(t)).Void(nil)
	text := strings.Join(s.Lines, "\n")
	assert.Contains(t, text, "공망: 子·丑 (일주 辛酉 기준)")
	assert.Contains(t, text, "공망 기운이 포함되지 않았습니다.")
}

func TestVoidHintsOverride(t *testing.T) {
	h := &hints.Hints{VoidTable: map[string][]string{"신유": {"유", "술"}}}
	a := newAnalyzer(t, sampleChart(t), WithHints(h))

	s := a.Void(nil)
	text := strings.Join(s.Lines, "\n")
	assert.Contains(t, text, "문서 힌트")
	assert.Contains(t, text, "사주에 공망 기운 酉 이/가 포함됩니다")
}

func TestBodyUseWithoutFlag(t *testing.T) {
	s := newAnalyzer(t, sampleChart(t)).BodyUse()
	require.Len(t, s.Lines, 1)
	assert.Contains(t, s.Lines[0], "지정되지 않아")
}

func TestBodyUseWeakDayStem(t *testing.T) {
	a := newAnalyzer(t, sampleChart(t), WithStrongDayStem(false))
	s := a.BodyUse()
	text := strings.Join(s.Lines, "\n")

	assert.Contains(t, text, "일간 辛 기준으로")
	assert.Contains(t, text, "  - 丙: 용 (정관)")
	assert.Contains(t, text, "  - 丁: 용 (편관)")
	assert.Contains(t, text, "  - 辛: 일간(기준)")
	assert.Contains(t, text, "주위(主位): 일간·일주·시주")
}

func TestBodyUseStrengthFlag(t *testing.T) {
	// 甲 day stem with a 丙 (food god 식신) month stem: the grouping flips
	// with the strength flag.
	c, err := chart.NewChart("庚", "子", "丙", "寅", "甲", "辰", "乙", "亥")
	require.NoError(t, err)

	weak := newAnalyzer(t, c, WithStrongDayStem(false)).BodyUse()
	assert.Contains(t, strings.Join(weak.Lines, "\n"), "  - 丙: 체 (식신)")

	strong := newAnalyzer(t, c, WithStrongDayStem(true)).BodyUse()
	assert.Contains(t, strings.Join(strong.Lines, "\n"), "  - 丙: 용 (식신)")
}

func TestBodyUseHintsOverride(t *testing.T) {
	h := &hints.Hints{BodyUseGroups: map[string][]string{
		"체": {"정관"},
		"용": {"편관"},
	}}
	a := newAnalyzer(t, sampleChart(t), WithStrongDayStem(false), WithHints(h))

	s := a.BodyUse()
	text := strings.Join(s.Lines, "\n")
	assert.Contains(t, text, "  - 丙: 체 (정관)")
	assert.Contains(t, text, "  - 丁: 용 (편관)")
}

func TestMalformedHintsDegradeToWarnings(t *testing.T) {
	h := &hints.Hints{
		BodyUseGroups: map[string][]string{"본체": {"정관"}},
		VoidTable:     map[string][]string{"외계인": {"술"}},
	}
	rep := newAnalyzer(t, sampleChart(t), WithHints(h)).Analyze()

	// The malformed groups are pruned, the report carries warnings, and all
	// eight sections still rendered.
	assert.Len(t, rep.Warnings, 2)
	assert.Len(t, rep.Sections, 8)
}

func TestHintWarningsCarriedIntoReport(t *testing.T) {
	rep := newAnalyzer(t, sampleChart(t),
		WithHintWarnings([]string{"로더 경고"})).Analyze()
	assert.Contains(t, rep.Warnings, "로더 경고")
}

func TestConcurrentAnalysis(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := sampleChart(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := New(c)
			if err != nil {
				t.Error(err)
				return
			}
			rep := a.Analyze()
			if len(rep.Sections) != 8 {
				t.Errorf("expected 8 sections, got %d", len(rep.Sections))
			}
		}()
	}
	wg.Wait()
}
