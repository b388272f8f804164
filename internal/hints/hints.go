// Package hints models the optional document-derived enrichment the external
// parsing layer scrapes from uploaded texts: vault (묘고) rule lines, hollow
// (허실) rule lines, body/use (체용) ten-god groupings, and a void (공망)
// table. Hints are best-effort input: malformed pieces are pruned and turned
// into warning strings, never errors, so enrichment can never block analysis.
package hints

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sajukit/internal/rules"
)

// Group keys accepted in BodyUseGroups.
const (
	GroupBody    = "체"
	GroupUse     = "용"
	GroupNeutral = "중립"
)

// Hints carries the optional parsed-document data. All fields are optional;
// a nil *Hints means "no hints" everywhere.
type Hints struct {
	VaultRules    []string            `yaml:"vault_rules"`
	HollowRules   []string            `yaml:"hollow_rules"`
	BodyUseGroups map[string][]string `yaml:"body_use_groups"`
	VoidTable     map[string][]string `yaml:"void_table"`
}

// Load reads a hints YAML file. Unreadable files and YAML syntax errors are
// returned as errors; type mismatches inside an otherwise well-formed file
// degrade to whatever decoded plus warnings, and structural problems found
// during normalization become warnings too.
func Load(path string) (*Hints, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read hints file: %w", err)
	}

	var warnings []string
	h := &Hints{}
	if err := yaml.Unmarshal(data, h); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return nil, nil, fmt.Errorf("failed to parse hints file: %w", err)
		}
		for _, msg := range typeErr.Errors {
			warnings = append(warnings, fmt.Sprintf("힌트 필드 형식 오류, 기본값으로 대체: %s", msg))
		}
	}

	warnings = append(warnings, h.Normalize()...)
	return h, warnings, nil
}

// Normalize prunes malformed entries in place and maps hangul spellings to
// the canonical tokens. It returns one warning per dropped or rewritten
// entry.
func (h *Hints) Normalize() []string {
	if h == nil {
		return nil
	}
	var warnings []string

	h.VaultRules = cleanLines(h.VaultRules)
	h.HollowRules = cleanLines(h.HollowRules)

	if h.BodyUseGroups != nil {
		groups := make(map[string][]string, len(h.BodyUseGroups))
		for key, names := range h.BodyUseGroups {
			key = strings.TrimSpace(key)
			if key != GroupBody && key != GroupUse && key != GroupNeutral {
				warnings = append(warnings, fmt.Sprintf("체용 그룹 키 %q 를 알 수 없어 무시합니다", key))
				continue
			}
			var kept []string
			for _, name := range names {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				if _, ok := rules.TenGodByName(name); !ok {
					warnings = append(warnings, fmt.Sprintf("체용 그룹 %s 의 %q 는 십신 이름이 아니라 무시합니다", key, name))
					continue
				}
				kept = append(kept, name)
			}
			if len(kept) > 0 {
				groups[key] = kept
			}
		}
		h.BodyUseGroups = groups
	}

	if h.VoidTable != nil {
		table := make(map[string][]string, len(h.VoidTable))
		for key, values := range h.VoidTable {
			stem, branch, err := splitPillarToken(strings.TrimSpace(key))
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("공망 표의 키 %q 를 주(柱)로 해석할 수 없어 무시합니다", key))
				continue
			}
			var symbols []string
			for _, v := range values {
				resolved, ok := normalizeVoidSymbols(strings.TrimSpace(v))
				if !ok {
					warnings = append(warnings, fmt.Sprintf("공망 표의 값 %q 를 기호로 해석할 수 없어 무시합니다", v))
					continue
				}
				symbols = append(symbols, resolved...)
			}
			if len(symbols) > 0 {
				table[stem+branch] = symbols
			}
		}
		h.VoidTable = table
	}

	return warnings
}

// VoidSymbolsFor returns the void symbols the table supplies for the given
// day pillar, if any. Normalize must have run first (Load does).
func (h *Hints) VoidSymbolsFor(dayStem, dayBranch string) ([]string, bool) {
	if h == nil || h.VoidTable == nil {
		return nil, false
	}
	symbols, ok := h.VoidTable[dayStem+dayBranch]
	return symbols, ok
}

// Group returns the normalized ten-god names of one body/use group.
func (h *Hints) Group(key string) []string {
	if h == nil {
		return nil
	}
	return h.BodyUseGroups[key]
}

// HasBodyUseGroups reports whether the hints carry any 체용 grouping.
func (h *Hints) HasBodyUseGroups() bool {
	return h != nil && len(h.BodyUseGroups) > 0
}

func cleanLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitPillarToken folds a two-rune stem+branch token (hanja or hangul,
// e.g. 갑자 or 甲子) to canonical stem and branch names.
func splitPillarToken(token string) (string, string, error) {
	runes := []rune(token)
	if len(runes) != 2 {
		return "", "", fmt.Errorf("pillar token %q must be two symbols", token)
	}
	stem, ok := rules.CanonicalStem(string(runes[0]))
	if !ok {
		return "", "", &rules.UnknownSymbolError{Kind: "stem", Name: string(runes[0])}
	}
	branch, ok := rules.CanonicalBranch(string(runes[1]))
	if !ok {
		return "", "", &rules.UnknownSymbolError{Kind: "branch", Name: string(runes[1])}
	}
	return stem, branch, nil
}

// normalizeVoidSymbols resolves a void-table value: either a single symbol
// or a two-rune pillar token, which contributes both of its symbols.
func normalizeVoidSymbols(value string) ([]string, bool) {
	runes := []rune(value)
	switch len(runes) {
	case 1:
		if sym, ok := rules.CanonicalSymbol(value); ok {
			return []string{sym}, true
		}
	case 2:
		if stem, branch, err := splitPillarToken(value); err == nil {
			return []string{stem, branch}, true
		}
	}
	return nil, false
}
