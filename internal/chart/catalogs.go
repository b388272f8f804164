package chart

import (
	"sync"

	"sajukit/internal/rules"
)

// PalaceCatalog resolves palace metadata by key. Palaces are a closed set,
// so Get never errors; an unrecognized key simply reports false.
type PalaceCatalog struct {
	palaces map[string]Palace
}

// NewPalaceCatalog hydrates a catalog from the symbol tables.
func NewPalaceCatalog() *PalaceCatalog {
	c := &PalaceCatalog{palaces: make(map[string]Palace, 4)}
	for _, key := range rules.PalaceKeys() {
		if data, ok := rules.PalaceByKey(key); ok {
			c.palaces[key] = Palace{
				Key:       data.Key,
				LifeStage: data.LifeStage,
				Kin:       data.Kin,
				Meaning:   data.Meaning,
			}
		}
	}
	return c
}

// Get returns the palace for one of the four canonical keys.
func (c *PalaceCatalog) Get(key string) (Palace, bool) {
	p, ok := c.palaces[key]
	return p, ok
}

// TenGodCatalog resolves ten-god metadata by name, same non-erroring
// contract as PalaceCatalog.
type TenGodCatalog struct {
	gods map[string]TenGod
}

// NewTenGodCatalog hydrates a catalog from the symbol tables.
func NewTenGodCatalog() *TenGodCatalog {
	c := &TenGodCatalog{gods: make(map[string]TenGod, 10)}
	for _, name := range rules.TenGodNames() {
		if info, ok := rules.TenGodByName(name); ok {
			c.gods[name] = TenGod{Name: info.Name, Description: info.Description}
		}
	}
	return c
}

// Get returns the ten-god for one of the ten canonical names.
func (c *TenGodCatalog) Get(name string) (TenGod, bool) {
	g, ok := c.gods[name]
	return g, ok
}

// Names returns the ten names in conventional order.
func (c *TenGodCatalog) Names() []string {
	return rules.TenGodNames()
}

// The default catalogs are process-wide, immutable, and built once.
// Analyzers take catalogs by injection and fall back to these.
var (
	defaultPalaceOnce sync.Once
	defaultPalaces    *PalaceCatalog

	defaultTenGodOnce sync.Once
	defaultTenGods    *TenGodCatalog
)

// DefaultPalaceCatalog returns the shared palace catalog.
func DefaultPalaceCatalog() *PalaceCatalog {
	defaultPalaceOnce.Do(func() { defaultPalaces = NewPalaceCatalog() })
	return defaultPalaces
}

// DefaultTenGodCatalog returns the shared ten-god catalog.
func DefaultTenGodCatalog() *TenGodCatalog {
	defaultTenGodOnce.Do(func() { defaultTenGods = NewTenGodCatalog() })
	return defaultTenGods
}
