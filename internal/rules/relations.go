package rules

import "fmt"

// RelationKind labels one of the five pairwise branch interactions.
type RelationKind string

const (
	Clash       RelationKind = "충" // 沖: collision, upheaval, separation
	Penalty     RelationKind = "형" // 刑: friction, legal trouble
	Destruction RelationKind = "파" // 破: cracking, unraveling
	Harm        RelationKind = "천" // 穿: forceful suppression
	Combination RelationKind = "합" // 合: binding, cooperation
)

// RelationKinds lists the five kinds in priority order. Where the traditional
// tables overlap, each pair is authored only under its highest-priority kind,
// so the five stored sets are disjoint and the order only matters for display.
func RelationKinds() []RelationKind {
	return []RelationKind{Clash, Penalty, Destruction, Harm, Combination}
}

var relationHanja = map[RelationKind]string{
	Clash:       "沖",
	Penalty:     "刑",
	Destruction: "破",
	Harm:        "穿",
	Combination: "合",
}

var relationMeaning = map[RelationKind]string{
	Clash:       "충돌·변화·분리",
	Penalty:     "갈등·법적 문제",
	Destruction: "균열·와해",
	Harm:        "강한 제압·살상력",
	Combination: "결합·협력",
}

// Hanja returns the hanja form of the relation label.
func (k RelationKind) Hanja() string { return relationHanja[k] }

// Meaning returns the short interpretive gloss for the relation.
func (k RelationKind) Meaning() string { return relationMeaning[k] }

// pairKey is the canonical unordered-pair key: A never sorts after B.
type pairKey struct {
	A, B string
}

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{A: a, B: b}
}

// relationPairs is the authored pair data. The sets are kept disjoint by
// construction: a pair appearing in two traditional tables is listed only
// under its higher-priority kind (충 > 형 > 파 > 천 > 합). Casualties of that
// rule: 丑未 stays a clash (dropped from 형), 巳申 and 寅巳 stay penalties
// (dropped from 파 and 천), 寅亥 stays a destruction and 巳申 a penalty
// (both dropped from 합). The 형 set also carries the four self-penalties.
var relationPairs = map[RelationKind][][2]string{
	Clash: {
		{"子", "午"}, {"丑", "未"}, {"寅", "申"}, {"卯", "酉"}, {"辰", "戌"}, {"巳", "亥"},
	},
	Penalty: {
		{"子", "卯"}, {"丑", "戌"}, {"寅", "巳"}, {"巳", "申"},
		{"辰", "辰"}, {"午", "午"}, {"酉", "酉"}, {"亥", "亥"},
	},
	Destruction: {
		{"子", "酉"}, {"卯", "午"}, {"寅", "亥"}, {"丑", "辰"}, {"未", "戌"},
	},
	Harm: {
		{"子", "未"}, {"丑", "午"}, {"卯", "辰"}, {"申", "亥"}, {"酉", "戌"},
	},
	Combination: {
		{"子", "丑"}, {"卯", "戌"}, {"辰", "酉"}, {"午", "未"},
	},
}

var pairIndex = buildPairIndex()

func buildPairIndex() map[pairKey]RelationKind {
	idx := make(map[pairKey]RelationKind)
	for _, kind := range RelationKinds() {
		for _, p := range relationPairs[kind] {
			key := newPairKey(p[0], p[1])
			if existing, dup := idx[key]; dup {
				panic(fmt.Sprintf("rules: pair %s%s authored under both %s and %s", key.A, key.B, existing, kind))
			}
			idx[key] = kind
		}
	}
	return idx
}

// Relation returns the single relation kind the unordered pair (a, b)
// belongs to, if any. Lookup is order-independent.
func Relation(a, b string) (RelationKind, bool) {
	kind, ok := pairIndex[newPairKey(a, b)]
	return kind, ok
}

// InRelation reports whether the unordered pair (a, b) belongs to the given
// relation set.
func InRelation(kind RelationKind, a, b string) bool {
	got, ok := pairIndex[newPairKey(a, b)]
	return ok && got == kind
}

// Pairs returns a copy of the canonical pair list for one relation kind.
func Pairs(kind RelationKind) [][2]string {
	src := relationPairs[kind]
	out := make([][2]string, len(src))
	copy(out, src)
	return out
}

// triadKey is the canonical sorted key for a three-branch group.
type triadKey struct {
	A, B, C string
}

func newTriadKey(a, b, c string) triadKey {
	if b < a {
		a, b = b, a
	}
	if c < b {
		b, c = c, b
	}
	if b < a {
		a, b = b, a
	}
	return triadKey{A: a, B: b, C: c}
}

// Triad is one three-branch combination (삼합) and the element it amplifies.
type Triad struct {
	Branches [3]string
	Element  Element
}

var triads = []Triad{
	{Branches: [3]string{"寅", "午", "戌"}, Element: Fire},
	{Branches: [3]string{"巳", "酉", "丑"}, Element: Metal},
	{Branches: [3]string{"申", "子", "辰"}, Element: Water},
	{Branches: [3]string{"亥", "卯", "未"}, Element: Wood},
}

var triadIndex = buildTriadIndex()

func buildTriadIndex() map[triadKey]Element {
	idx := make(map[triadKey]Element, len(triads))
	for _, t := range triads {
		idx[newTriadKey(t.Branches[0], t.Branches[1], t.Branches[2])] = t.Element
	}
	return idx
}

// TriadElement returns the amplified element when the three branches exactly
// form one of the four triads. Only an exact three-set matches; supersets and
// subsets never do.
func TriadElement(a, b, c string) (Element, bool) {
	elem, ok := triadIndex[newTriadKey(a, b, c)]
	return elem, ok
}

// Triads returns the four triad definitions.
func Triads() []Triad {
	out := make([]Triad, len(triads))
	copy(out, triads)
	return out
}

// vaultSet is the fixed storage-branch set (묘고지).
var vaultSet = map[string]bool{"辰": true, "戌": true, "丑": true, "未": true}

// VaultBranches returns the four vault branches 辰戌丑未.
func VaultBranches() []string {
	return []string{"辰", "戌", "丑", "未"}
}

// IsVault reports whether the branch is one of the four vault branches.
func IsVault(name string) bool { return vaultSet[name] }
