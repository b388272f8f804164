package rules

// PalaceData is the positional life-domain metadata (궁위) for one of the
// four pillars.
type PalaceData struct {
	Key       string // 년주, 월주, 일주, 시주
	LifeStage string
	Kin       string // representative kin (대표 육친)
	Meaning   string // symbolic meaning
}

var palaceOrder = []string{"년주", "월주", "일주", "시주"}

var palaces = map[string]PalaceData{
	"년주": {Key: "년주", LifeStage: "초년기", Kin: "부모궁", Meaning: "조상·가계·가문"},
	"월주": {Key: "월주", LifeStage: "청년기", Kin: "부모궁", Meaning: "부모·형제·사회적 기반"},
	"일주": {Key: "일주", LifeStage: "중년기", Kin: "배우자궁", Meaning: "자기 자신·배우자"},
	"시주": {Key: "시주", LifeStage: "말년기", Kin: "자식궁", Meaning: "자녀·후손·말년"},
}

// PalaceByKey returns the palace metadata for one of the four canonical keys.
func PalaceByKey(key string) (PalaceData, bool) {
	p, ok := palaces[key]
	return p, ok
}

// PalaceKeys returns the four palace keys in chart order.
func PalaceKeys() []string {
	out := make([]string, len(palaceOrder))
	copy(out, palaceOrder)
	return out
}
