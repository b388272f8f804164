package rules

// Korean documents spell stems and branches in hangul (갑…계, 자…해) while
// the tables key on the hanja tokens. These helpers fold either spelling to
// the canonical token.

var hangulStems = map[string]string{
	"갑": "甲", "을": "乙", "병": "丙", "정": "丁", "무": "戊",
	"기": "己", "경": "庚", "신": "辛", "임": "壬", "계": "癸",
}

var hangulBranches = map[string]string{
	"자": "子", "축": "丑", "인": "寅", "묘": "卯", "진": "辰", "사": "巳",
	"오": "午", "미": "未", "신": "申", "유": "酉", "술": "戌", "해": "亥",
}

// CanonicalStem folds a hanja or hangul stem spelling to the canonical
// token.
func CanonicalStem(name string) (string, bool) {
	if _, ok := stems[name]; ok {
		return name, true
	}
	if hanja, ok := hangulStems[name]; ok {
		return hanja, true
	}
	return "", false
}

// CanonicalBranch folds a hanja or hangul branch spelling to the canonical
// token.
func CanonicalBranch(name string) (string, bool) {
	if _, ok := branches[name]; ok {
		return name, true
	}
	if hanja, ok := hangulBranches[name]; ok {
		return hanja, true
	}
	return "", false
}

// CanonicalSymbol folds a stem or branch spelling, trying branches first:
// the hangul syllable 신 names both the branch 申 and the stem 辛, and in
// symbol lists (void tables) the branch reading is the conventional one.
func CanonicalSymbol(name string) (string, bool) {
	if b, ok := CanonicalBranch(name); ok {
		return b, true
	}
	if s, ok := CanonicalStem(name); ok {
		return s, true
	}
	return "", false
}
