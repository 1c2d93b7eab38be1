package llc

import "errors"

// Package errors. Static messages only; call sites wrap with fmt.Errorf
// when an offending character or offset is worth reporting.
var (
	ErrReservedRune         = errors.New("input contains a reserved character")
	ErrSymbolSpaceExhausted = errors.New("symbol space exhausted")
	ErrMissingTerminator    = errors.New("artifact has dictionary entries but no terminator")
	ErrTruncatedEntry       = errors.New("truncated dictionary entry")
	ErrUnknownSymbol        = errors.New("body references a symbol with no dictionary entry")
)
