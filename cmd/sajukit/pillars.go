package main

import (
	"fmt"
	"strings"

	"sajukit/internal/chart"
	"sajukit/internal/rules"
)

// parsePillarToken splits one two-character pillar token into canonical
// hanja stem and branch names. Hangul spellings are accepted; position
// disambiguates 신 (stem 辛 first, branch 申 second).
func parsePillarToken(token string) (string, string, error) {
	runes := []rune(strings.TrimSpace(token))
	if len(runes) != 2 {
		return "", "", fmt.Errorf("pillar %q: want two characters (stem then branch)", token)
	}
	stem, ok := rules.CanonicalStem(string(runes[0]))
	if !ok {
		return "", "", fmt.Errorf("pillar %q: unknown stem %q", token, string(runes[0]))
	}
	branch, ok := rules.CanonicalBranch(string(runes[1]))
	if !ok {
		return "", "", fmt.Errorf("pillar %q: unknown branch %q", token, string(runes[1]))
	}
	return stem, branch, nil
}

// parseChart builds a natal chart from four comma-separated pillar tokens
// in year, month, day, hour order.
func parseChart(spec string) (*chart.Chart, error) {
	tokens := strings.Split(spec, ",")
	if len(tokens) != 4 {
		return nil, fmt.Errorf("want 4 comma-separated pillars (year,month,day,hour), got %d", len(tokens))
	}

	var names [8]string
	for i, tok := range tokens {
		stem, branch, err := parsePillarToken(tok)
		if err != nil {
			return nil, err
		}
		names[2*i], names[2*i+1] = stem, branch
	}
	return chart.NewChart(names[0], names[1], names[2], names[3],
		names[4], names[5], names[6], names[7])
}

// parsePillar builds a standalone cycle pillar from one token.
func parsePillar(token string) (chart.Pillar, error) {
	stem, branch, err := parsePillarToken(token)
	if err != nil {
		return chart.Pillar{}, err
	}
	return chart.NewPillar(stem, branch)
}
