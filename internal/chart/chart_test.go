package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sajukit/internal/rules"
)

func TestLookupRoundTrip(t *testing.T) {
	for _, name := range rules.StemNames() {
		s, err := LookupStem(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
	}
	for _, name := range rules.BranchNames() {
		b, err := LookupBranch(name)
		require.NoError(t, err)
		assert.Equal(t, name, b.Name)
		assert.NotEmpty(t, b.Hidden)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := LookupStem("申")
	assert.True(t, errors.Is(err, rules.ErrUnknownSymbol))

	_, err = LookupBranch("丙")
	assert.True(t, errors.Is(err, rules.ErrUnknownSymbol))

	_, err = NewPillar("丙", "丙")
	assert.True(t, errors.Is(err, rules.ErrUnknownSymbol))
}

func TestPillarHasRoot(t *testing.T) {
	tests := []struct {
		stem, branch string
		want         bool
	}{
		{"辛", "酉", true},  // metal stem on a metal branch
		{"丙", "申", false}, // fire stem, 申 hides 무/임/경 only
		{"丁", "未", true},  // 未 hides 정 (fire)
		{"戊", "申", true},  // 申 hides 무 (earth)
		{"壬", "子", true},  // 子 hides 임
		{"甲", "酉", false},
	}

	for _, tt := range tests {
		t.Run(tt.stem+tt.branch, func(t *testing.T) {
			p, err := NewPillar(tt.stem, tt.branch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.HasRoot())
		})
	}
}

func TestChartPalaceTotality(t *testing.T) {
	c, err := NewChart("丙", "申", "丙", "申", "辛", "酉", "丁", "未")
	require.NoError(t, err)

	wantKeys := []string{"년주", "월주", "일주", "시주"}
	for i, p := range c.Pillars() {
		require.NotNil(t, p.Palace, "pillar %d has no palace", i)
		assert.Equal(t, wantKeys[i], p.Palace.Key)
		assert.NotEmpty(t, p.Palace.LifeStage)
	}
}

func TestChartAccessors(t *testing.T) {
	c, err := NewChart("丙", "申", "丙", "申", "辛", "酉", "丁", "未")
	require.NoError(t, err)

	assert.Equal(t, "辛", c.DayStem().Name)
	assert.Equal(t, []string{"申", "申", "酉", "未"}, c.Branches())
	assert.Equal(t, []string{"丙", "丙", "辛", "丁"}, c.StemNames())
	assert.Equal(t, "丙申 丙申 辛酉 丁未", c.String())
	assert.Equal(t, "酉", c.At(Day).Branch.Name)
}

func TestChartInvalidSymbol(t *testing.T) {
	_, err := NewChart("丙", "申", "丙", "申", "辛", "酉", "丁", "未来")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rules.ErrUnknownSymbol))
	assert.Contains(t, err.Error(), "hour pillar")
}

func TestCatalogs(t *testing.T) {
	palaces := DefaultPalaceCatalog()
	for _, key := range rules.PalaceKeys() {
		p, ok := palaces.Get(key)
		require.True(t, ok)
		assert.Equal(t, key, p.Key)
	}
	_, ok := palaces.Get("世运")
	assert.False(t, ok)

	gods := DefaultTenGodCatalog()
	require.Len(t, gods.Names(), 10)
	for _, name := range gods.Names() {
		g, ok := gods.Get(name)
		require.True(t, ok)
		assert.NotEmpty(t, g.Description)
	}
	_, ok = gods.Get("일간")
	assert.False(t, ok)

	// The defaults are built once and shared.
	assert.Same(t, palaces, DefaultPalaceCatalog())
	assert.Same(t, gods, DefaultTenGodCatalog())
}

func TestStandalonePillarHasNoPalace(t *testing.T) {
	p, err := NewPillar("己", "丑")
	require.NoError(t, err)
	assert.Nil(t, p.Palace)
	assert.Equal(t, "己丑", p.String())
}
