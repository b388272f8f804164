// Package rules holds the static symbol tables for Four-Pillars (사주) analysis:
// the ten heavenly stems, the twelve earthly branches with their hidden
// sub-stems, the five pairwise branch-interaction sets, the element triads,
// the five-element generation/domination adjacency, the ten-god lookup, and
// the palace and ten-god descriptive metadata.
//
// All tables are hand-authored, built once at package init, and read-only for
// the life of the process. Lookups are O(1); pair lookups are symmetric by
// construction (pairs are normalized to a canonical key before storage).
package rules

// Element is one of the five elements (오행).
type Element string

const (
	Wood  Element = "목"
	Fire  Element = "화"
	Earth Element = "토"
	Metal Element = "금"
	Water Element = "수"
)

// Polarity is yang or yin (음양).
type Polarity string

const (
	Yang Polarity = "양"
	Yin  Polarity = "음"
)

// StemData describes one heavenly stem (천간).
type StemData struct {
	Name     string
	Element  Element
	Polarity Polarity
}

// HiddenStem is one hidden sub-stem (지장간) of a branch. Names use the
// hangul spelling the source documents use for sub-stems.
type HiddenStem struct {
	Name     string
	Element  Element
	Polarity Polarity
}

// BranchData describes one earthly branch (지지) with its ordered hidden
// sub-stems. The last hidden stem is the principal stem (본기) and always
// shares the branch's own element.
type BranchData struct {
	Name     string
	Element  Element
	Polarity Polarity
	Hidden   []HiddenStem
}

// stemOrder is the canonical stem cycle.
var stemOrder = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// branchOrder is the canonical branch cycle.
var branchOrder = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var stems = map[string]StemData{
	"甲": {Name: "甲", Element: Wood, Polarity: Yang},
	"乙": {Name: "乙", Element: Wood, Polarity: Yin},
	"丙": {Name: "丙", Element: Fire, Polarity: Yang},
	"丁": {Name: "丁", Element: Fire, Polarity: Yin},
	"戊": {Name: "戊", Element: Earth, Polarity: Yang},
	"己": {Name: "己", Element: Earth, Polarity: Yin},
	"庚": {Name: "庚", Element: Metal, Polarity: Yang},
	"辛": {Name: "辛", Element: Metal, Polarity: Yin},
	"壬": {Name: "壬", Element: Water, Polarity: Yang},
	"癸": {Name: "癸", Element: Water, Polarity: Yin},
}

var branches = map[string]BranchData{
	"子": {Name: "子", Element: Water, Polarity: Yang, Hidden: []HiddenStem{
		{Name: "임", Element: Water, Polarity: Yang},
	}},
	"丑": {Name: "丑", Element: Earth, Polarity: Yin, Hidden: []HiddenStem{
		{Name: "계", Element: Water, Polarity: Yin},
		{Name: "신", Element: Metal, Polarity: Yin},
		{Name: "기", Element: Earth, Polarity: Yin},
	}},
	"寅": {Name: "寅", Element: Wood, Polarity: Yang, Hidden: []HiddenStem{
		{Name: "무", Element: Earth, Polarity: Yang},
		{Name: "병", Element: Fire, Polarity: Yang},
		{Name: "갑", Element: Wood, Polarity: Yang},
	}},
	"卯": {Name: "卯", Element: Wood, Polarity: Yin, Hidden: []HiddenStem{
		{Name: "갑", Element: Wood, Polarity: Yang},
		{Name: "을", Element: Wood, Polarity: Yin},
	}},
	"辰": {Name: "辰", Element: Earth, Polarity: Yang, Hidden: []HiddenStem{
		{Name: "을", Element: Wood, Polarity: Yin},
		{Name: "계", Element: Water, Polarity: Yin},
		{Name: "무", Element: Earth, Polarity: Yang},
	}},
	"巳": {Name: "巳", Element: Fire, Polarity: Yin, Hidden: []HiddenStem{
		{Name: "무", Element: Earth, Polarity: Yang},
		{Name: "경", Element: Metal, Polarity: Yang},
		{Name: "병", Element: Fire, Polarity: Yang},
	}},
	"午": {Name: "午", Element: Fire, Polarity: Yang, Hidden: []HiddenStem{
		{Name: "기", Element: Earth, Polarity: Yin},
		{Name: "병", Element: Fire, Polarity: Yang},
	}},
	"未": {Name: "未", Element: Earth, Polarity: Yin, Hidden: []HiddenStem{
		{Name: "정", Element: Fire, Polarity: Yin},
		{Name: "을", Element: Wood, Polarity: Yin},
		{Name: "기", Element: Earth, Polarity: Yin},
	}},
	"申": {Name: "申", Element: Metal, Polarity: Yang, Hidden: []HiddenStem{
		{Name: "무", Element: Earth, Polarity: Yang},
		{Name: "임", Element: Water, Polarity: Yang},
		{Name: "경", Element: Metal, Polarity: Yang},
	}},
	"酉": {Name: "酉", Element: Metal, Polarity: Yin, Hidden: []HiddenStem{
		{Name: "경", Element: Metal, Polarity: Yang},
		{Name: "신", Element: Metal, Polarity: Yin},
	}},
	"戌": {Name: "戌", Element: Earth, Polarity: Yang, Hidden: []HiddenStem{
		{Name: "신", Element: Metal, Polarity: Yin},
		{Name: "정", Element: Fire, Polarity: Yin},
		{Name: "무", Element: Earth, Polarity: Yang},
	}},
	"亥": {Name: "亥", Element: Water, Polarity: Yin, Hidden: []HiddenStem{
		{Name: "무", Element: Earth, Polarity: Yang},
		{Name: "갑", Element: Wood, Polarity: Yang},
		{Name: "임", Element: Water, Polarity: Yang},
	}},
}

// StemByName returns the stem data for one of the ten canonical names.
func StemByName(name string) (StemData, error) {
	s, ok := stems[name]
	if !ok {
		return StemData{}, &UnknownSymbolError{Kind: "stem", Name: name}
	}
	return s, nil
}

// BranchByName returns the branch data for one of the twelve canonical names.
func BranchByName(name string) (BranchData, error) {
	b, ok := branches[name]
	if !ok {
		return BranchData{}, &UnknownSymbolError{Kind: "branch", Name: name}
	}
	return b, nil
}

// StemNames returns the ten stem names in canonical cycle order.
func StemNames() []string {
	out := make([]string, len(stemOrder))
	copy(out, stemOrder)
	return out
}

// BranchNames returns the twelve branch names in canonical cycle order.
func BranchNames() []string {
	out := make([]string, len(branchOrder))
	copy(out, branchOrder)
	return out
}

// stemIndex and branchIndex map names to their cycle position, used by the
// sexagenary void derivation.
var (
	stemIndex   = buildIndex(stemOrder)
	branchIndex = buildIndex(branchOrder)
)

func buildIndex(order []string) map[string]int {
	idx := make(map[string]int, len(order))
	for i, name := range order {
		idx[name] = i
	}
	return idx
}
