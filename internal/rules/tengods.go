package rules

import "fmt"

// ElementRelation is the relation of a target element as seen from a
// reference element, per the five-element generation/domination cycles.
type ElementRelation string

const (
	RelSame        ElementRelation = "비슷" // same element
	RelGenerates   ElementRelation = "생"  // reference generates target
	RelDominates   ElementRelation = "극"  // reference dominates target
	RelGeneratedBy ElementRelation = "피생" // target generates reference
	RelDominatedBy ElementRelation = "피극" // target dominates reference
)

// ElementRelations lists the five relations, the row domain of the ten-god
// table.
func ElementRelations() []ElementRelation {
	return []ElementRelation{RelSame, RelGenerates, RelDominates, RelGeneratedBy, RelDominatedBy}
}

// generates is the generation cycle 목→화→토→금→수→목.
var generates = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// dominates is the domination cycle 목→토, 화→금, 토→수, 금→목, 수→화.
var dominates = map[Element]Element{
	Wood:  Earth,
	Fire:  Metal,
	Earth: Water,
	Metal: Wood,
	Water: Fire,
}

// ElementRelationOf returns how target relates to from. Total over the 5×5
// element domain: every ordered pair resolves to exactly one relation.
func ElementRelationOf(from, to Element) ElementRelation {
	switch {
	case from == to:
		return RelSame
	case generates[from] == to:
		return RelGenerates
	case dominates[from] == to:
		return RelDominates
	case generates[to] == from:
		return RelGeneratedBy
	default:
		return RelDominatedBy
	}
}

// tenGodTable maps (element relation, same polarity) to the ten-god name.
// Total over the 5×2 domain; a gap here is a data-integrity bug, which the
// table audit derives as a violation.
var tenGodTable = map[ElementRelation]map[bool]string{
	RelSame:        {true: "비견", false: "겁재"},
	RelGenerates:   {true: "식신", false: "상관"},
	RelGeneratedBy: {true: "편인", false: "정인"},
	RelDominates:   {true: "편재", false: "정재"},
	RelDominatedBy: {true: "편관", false: "정관"},
}

// TenGodFor resolves the ten-god name for an element relation and polarity
// match. The error arm only fires on a corrupted table, never on well-formed
// input.
func TenGodFor(rel ElementRelation, samePolarity bool) (string, error) {
	row, ok := tenGodTable[rel]
	if !ok {
		return "", fmt.Errorf("ten-god table has no row for element relation %q", rel)
	}
	name, ok := row[samePolarity]
	if !ok {
		return "", fmt.Errorf("ten-god table has no entry for (%q, same-polarity=%v)", rel, samePolarity)
	}
	return name, nil
}

// TenGodInfo is the descriptive metadata for one ten-god (십신).
type TenGodInfo struct {
	Name        string
	Description string
}

var tenGodOrder = []string{"비견", "겁재", "식신", "상관", "편재", "정재", "편관", "정관", "편인", "정인"}

var tenGods = map[string]TenGodInfo{
	"비견": {Name: "비견", Description: "자아·주체성"},
	"겁재": {Name: "겁재", Description: "경쟁·독립심"},
	"식신": {Name: "식신", Description: "재능·표현력"},
	"상관": {Name: "상관", Description: "언변·임기응변"},
	"정재": {Name: "정재", Description: "안정적 재물"},
	"편재": {Name: "편재", Description: "유동 자금·사업"},
	"정관": {Name: "정관", Description: "명예·규범"},
	"편관": {Name: "편관", Description: "권력·통제"},
	"정인": {Name: "정인", Description: "학문·문서"},
	"편인": {Name: "편인", Description: "기획력·직관"},
}

// TenGodByName returns the metadata for one of the ten canonical names.
func TenGodByName(name string) (TenGodInfo, bool) {
	g, ok := tenGods[name]
	return g, ok
}

// TenGodNames returns the ten names in conventional pairing order.
func TenGodNames() []string {
	out := make([]string, len(tenGodOrder))
	copy(out, tenGodOrder)
	return out
}
