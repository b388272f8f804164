package rules

import "fmt"

// VoidBranches derives the two void branches (공망) for the sexagenary decade
// containing the given day pillar. Each decade starts at a 甲-stem pillar and
// covers ten of the twelve branches; the two branches left out are the voids
// (甲子旬→戌亥, 甲戌旬→申酉, … 甲寅旬→子丑).
func VoidBranches(dayStem, dayBranch string) ([2]string, error) {
	si, ok := stemIndex[dayStem]
	if !ok {
		return [2]string{}, &UnknownSymbolError{Kind: "stem", Name: dayStem}
	}
	bi, ok := branchIndex[dayBranch]
	if !ok {
		return [2]string{}, &UnknownSymbolError{Kind: "branch", Name: dayBranch}
	}

	// Locate the pillar in the sexagenary cycle: the unique n < 60 with
	// n ≡ si (mod 10) and n ≡ bi (mod 12). Stem and branch indices of a
	// valid pillar share parity; mismatched parity has no solution.
	n := -1
	for candidate := si; candidate < 60; candidate += 10 {
		if candidate%12 == bi {
			n = candidate
			break
		}
	}
	if n < 0 {
		return [2]string{}, fmt.Errorf("pillar %s%s is not in the sexagenary cycle", dayStem, dayBranch)
	}

	head := n - si // decade head (甲-stem pillar index)
	return [2]string{
		branchOrder[(head+10)%12],
		branchOrder[(head+11)%12],
	}, nil
}
