package asset

import "errors"

var (
	// ErrInvalidAccountID indicates an account id is malformed.
	ErrInvalidAccountID = errors.New("asset: invalid account id")

	// ErrNilAmount indicates a required amount is nil.
	ErrNilAmount = errors.New("asset: amount is nil")

	// ErrAmountTooWide indicates an amount does not fit in 128 bits.
	ErrAmountTooWide = errors.New("asset: amount exceeds 128 bits")
)
