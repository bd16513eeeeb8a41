package domain

import "errors"

// Ledger error taxonomy. Every failure a user can cause maps onto one of
// these sentinels; resolvers classify with errors.Is and translate to an
// HTTP status. Anything else is an internal fault.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnknownSymbol        = errors.New("unknown symbol")
	ErrLookupFailed         = errors.New("symbol lookup failed")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	ErrUnauthenticated      = errors.New("unauthenticated")
)
