package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportEnvelope(t *testing.T) {
	r := New(KindNatal, "丙申 丙申 辛酉 丁未")
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, KindNatal, r.Kind)
	assert.False(t, r.GeneratedAt.IsZero())

	other := New(KindNatal, "same subject")
	assert.NotEqual(t, r.ID, other.ID)
}

func TestSectionLookup(t *testing.T) {
	r := New(KindFortune, "test")
	r.Add(Section{Name: "interactions", Title: "대운/세운 상호작용", Lines: []string{"없음"}})
	r.Add(Section{Name: "triads", Title: "삼합", Lines: []string{"없음"}})

	s, ok := r.Section("triads")
	require.True(t, ok)
	assert.Equal(t, "삼합", s.Title)

	_, ok = r.Section("vault")
	assert.False(t, ok)
}

func TestWarnSkipsEmpty(t *testing.T) {
	r := New(KindNatal, "test")
	r.Warn("", "첫 번째 경고", "")
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, "첫 번째 경고", r.Warnings[0])
}

func TestTextRendering(t *testing.T) {
	r := New(KindNatal, "subject")
	r.Add(Section{Name: "palace", Title: "궁위 분석", Lines: []string{"  - 년주: 초년기"}})
	r.Warn("힌트 경고")

	text := r.Text()
	assert.Contains(t, text, "--- 궁위 분석 ---")
	assert.Contains(t, text, "  - 년주: 초년기")
	assert.Contains(t, text, "경고: 힌트 경고")
	assert.Contains(t, text, "--------------------")
}

func TestMarkdownRendering(t *testing.T) {
	r := New(KindNatal, "subject")
	r.Add(Section{Name: "palace", Title: "궁위 분석", Lines: []string{"  - 년주: 초년기"}})

	md := r.Markdown()
	assert.True(t, strings.HasPrefix(md, "# subject"))
	assert.Contains(t, md, "## 궁위 분석")
	assert.Contains(t, md, "- 년주: 초년기")
}

func TestJSONShape(t *testing.T) {
	r := New(KindNatal, "subject")
	r.Add(Section{Name: "void", Title: "공망 체크", Lines: []string{"없음"}})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.ID, decoded.ID)
	require.Len(t, decoded.Sections, 1)
	assert.Equal(t, "void", decoded.Sections[0].Name)
	assert.Empty(t, decoded.Warnings)
}

func TestTextWithCustomRule(t *testing.T) {
	r := New(KindNatal, "丙申 丙申 辛酉 丁未")
	r.Add(Section{Name: "void", Title: "공망", Lines: []string{"  - 공망: 子·丑"}})

	out := r.TextWith("=", 10)
	assert.Contains(t, out, "==========\n")
	assert.NotContains(t, out, "===========")

	// Degenerate arguments fall back to the default rule.
	assert.Equal(t, r.Text(), r.TextWith("", 0))
}
