// Package chart defines the immutable domain entities for Four-Pillars
// analysis: stems, branches, palaces, pillars, and the four-pillar natal
// chart itself. Entities are hydrated from the symbol tables in
// internal/rules and never mutated after construction.
package chart

import (
	"fmt"
	"strings"

	"sajukit/internal/rules"
)

// Stem is one heavenly stem (천간).
type Stem struct {
	Name     string
	Element  rules.Element
	Polarity rules.Polarity
}

// Branch is one earthly branch (지지) with its ordered hidden sub-stems.
type Branch struct {
	Name     string
	Element  rules.Element
	Polarity rules.Polarity
	Hidden   []rules.HiddenStem
}

// Palace is the positional life-domain record (궁위) assigned to a pillar.
type Palace struct {
	Key       string
	LifeStage string
	Kin       string
	Meaning   string
}

// TenGod is one relational classification (십신) with its description.
type TenGod struct {
	Name        string
	Description string
}

// LookupStem resolves one of the ten canonical stem names.
func LookupStem(name string) (Stem, error) {
	data, err := rules.StemByName(name)
	if err != nil {
		return Stem{}, err
	}
	return Stem{Name: data.Name, Element: data.Element, Polarity: data.Polarity}, nil
}

// LookupBranch resolves one of the twelve canonical branch names.
func LookupBranch(name string) (Branch, error) {
	data, err := rules.BranchByName(name)
	if err != nil {
		return Branch{}, err
	}
	hidden := make([]rules.HiddenStem, len(data.Hidden))
	copy(hidden, data.Hidden)
	return Branch{Name: data.Name, Element: data.Element, Polarity: data.Polarity, Hidden: hidden}, nil
}

// Pillar is one stem+branch pair (기둥). The palace is assigned positionally
// by the chart constructor; standalone pillars (fortune cycles) carry none.
type Pillar struct {
	Stem   Stem
	Branch Branch
	Palace *Palace
}

// NewPillar builds a pillar from stem and branch names.
func NewPillar(stemName, branchName string) (Pillar, error) {
	stem, err := LookupStem(stemName)
	if err != nil {
		return Pillar{}, err
	}
	branch, err := LookupBranch(branchName)
	if err != nil {
		return Pillar{}, err
	}
	return Pillar{Stem: stem, Branch: branch}, nil
}

// HasRoot reports whether any hidden sub-stem of the pillar's own branch
// shares the stem's element.
func (p Pillar) HasRoot() bool {
	for _, h := range p.Branch.Hidden {
		if h.Element == p.Stem.Element {
			return true
		}
	}
	return false
}

func (p Pillar) String() string {
	if p.Palace != nil {
		return fmt.Sprintf("%s%s(%s)", p.Stem.Name, p.Branch.Name, p.Palace.Key)
	}
	return p.Stem.Name + p.Branch.Name
}

// Position identifies one of the four pillars in chart order.
type Position int

const (
	Year Position = iota
	Month
	Day
	Hour
)

// Positions returns the four positions in chart order.
func Positions() []Position { return []Position{Year, Month, Day, Hour} }

// PalaceKey returns the canonical palace key for the position.
func (p Position) PalaceKey() string {
	switch p {
	case Year:
		return "년주"
	case Month:
		return "월주"
	case Day:
		return "일주"
	case Hour:
		return "시주"
	default:
		return fmt.Sprintf("position(%d)", int(p))
	}
}

func (p Position) String() string { return p.PalaceKey() }

// Chart is a natal chart (사주): four pillars in fixed year/month/day/hour
// order. Palaces are assigned inside the constructor, so every chart a
// caller can observe has all four palaces filled. The day pillar's stem is
// the chart's self-reference stem (일간).
type Chart struct {
	pillars [4]Pillar
}

// New assembles a chart from four pillars and assigns the canonical palaces
// using the process-wide default catalog.
func New(year, month, day, hour Pillar) *Chart {
	return NewWithCatalog(year, month, day, hour, DefaultPalaceCatalog())
}

// NewWithCatalog assembles a chart with palaces drawn from the given catalog.
func NewWithCatalog(year, month, day, hour Pillar, palaces *PalaceCatalog) *Chart {
	c := &Chart{pillars: [4]Pillar{year, month, day, hour}}
	for _, pos := range Positions() {
		if palace, ok := palaces.Get(pos.PalaceKey()); ok {
			p := palace
			c.pillars[pos].Palace = &p
		}
	}
	return c
}

// NewChart builds a chart directly from eight symbol names in
// year/month/day/hour stem-branch order.
func NewChart(ys, yb, ms, mb, ds, db, hs, hb string) (*Chart, error) {
	year, err := NewPillar(ys, yb)
	if err != nil {
		return nil, fmt.Errorf("year pillar: %w", err)
	}
	month, err := NewPillar(ms, mb)
	if err != nil {
		return nil, fmt.Errorf("month pillar: %w", err)
	}
	day, err := NewPillar(ds, db)
	if err != nil {
		return nil, fmt.Errorf("day pillar: %w", err)
	}
	hour, err := NewPillar(hs, hb)
	if err != nil {
		return nil, fmt.Errorf("hour pillar: %w", err)
	}
	return New(year, month, day, hour), nil
}

// Pillars returns the four pillars in chart order.
func (c *Chart) Pillars() [4]Pillar { return c.pillars }

// At returns the pillar at the given position.
func (c *Chart) At(pos Position) Pillar { return c.pillars[pos] }

// DayStem returns the chart's self-reference stem (일간).
func (c *Chart) DayStem() Stem { return c.pillars[Day].Stem }

// Branches returns the four branch names in chart order.
func (c *Chart) Branches() []string {
	out := make([]string, 0, 4)
	for _, p := range c.pillars {
		out = append(out, p.Branch.Name)
	}
	return out
}

// StemNames returns the four stem names in chart order.
func (c *Chart) StemNames() []string {
	out := make([]string, 0, 4)
	for _, p := range c.pillars {
		out = append(out, p.Stem.Name)
	}
	return out
}

func (c *Chart) String() string {
	parts := make([]string, 0, 4)
	for _, p := range c.pillars {
		parts = append(parts, p.Stem.Name+p.Branch.Name)
	}
	return strings.Join(parts, " ")
}
