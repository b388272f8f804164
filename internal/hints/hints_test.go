package hints

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHints(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWellFormed(t *testing.T) {
	path := writeHints(t, `
vault_rules:
  - 묘고는 형/충을 기뻐하며, 형/충이 없으면 묘가 된다.
hollow_rules:
  - 지지가 뿌리가 되지 못하면 허투로 본다.
body_use_groups:
  체: [비견, 겁재, 정인]
  용: [정재, 편재, 정관]
  중립: [식신, 상관]
void_table:
  갑자: [갑자, 을축]
  병인: [경신, 신유]
`)

	h, warnings, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Len(t, h.VaultRules, 1)
	assert.Len(t, h.HollowRules, 1)
	assert.Equal(t, []string{"비견", "겁재", "정인"}, h.Group(GroupBody))
	assert.True(t, h.HasBodyUseGroups())

	// 갑자 folds to 甲子; its values are pillar tokens contributing both
	// symbols each.
	symbols, ok := h.VoidSymbolsFor("甲", "子")
	require.True(t, ok)
	assert.Equal(t, []string{"甲", "子", "乙", "丑"}, symbols)

	_, ok = h.VoidSymbolsFor("丁", "卯")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeHints(t, "vault_rules: [unterminated\n  - broken")
	_, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadTypeMismatchDegrades(t *testing.T) {
	// vault_rules is a scalar where a list is expected: the field is lost
	// but the rest of the file still loads, with a warning.
	path := writeHints(t, `
vault_rules: 묘고
hollow_rules:
  - 지지가 뿌리가 되지 못하면 허투로 본다.
`)

	h, warnings, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.Len(t, h.HollowRules, 1)
}

func TestNormalizePrunesUnknownEntries(t *testing.T) {
	h := &Hints{
		BodyUseGroups: map[string][]string{
			"체":  {"비견", "없는신"},
			"본체": {"정인"},
		},
		VoidTable: map[string][]string{
			"갑자":  {"술", "해"},
			"외계인": {"술"},
			"을축":  {"로봇"},
		},
	}

	warnings := h.Normalize()
	assert.Len(t, warnings, 4)

	assert.Equal(t, []string{"비견"}, h.Group(GroupBody))
	assert.Nil(t, h.Group("본체"))

	symbols, ok := h.VoidSymbolsFor("甲", "子")
	require.True(t, ok)
	assert.Equal(t, []string{"戌", "亥"}, symbols)

	_, ok = h.VoidSymbolsFor("乙", "丑")
	assert.False(t, ok, "entry with only unresolvable values is dropped")
}

func TestNilHintsAreInert(t *testing.T) {
	var h *Hints
	assert.Nil(t, h.Normalize())
	assert.Nil(t, h.Group(GroupBody))
	assert.False(t, h.HasBodyUseGroups())

	_, ok := h.VoidSymbolsFor("甲", "子")
	assert.False(t, ok)
}
