package rules

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is the sentinel for lookups of names outside the fixed
// stem/branch/palace/ten-god domain.
var ErrUnknownSymbol = errors.New("unknown symbol")

// UnknownSymbolError reports which kind of symbol failed to resolve.
type UnknownSymbolError struct {
	Kind string // stem, branch, palace, ten-god
	Name string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown %s symbol %q", e.Kind, e.Name)
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}
