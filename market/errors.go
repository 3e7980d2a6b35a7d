package market

import "errors"

var (
	// ErrPriceMismatch indicates the attached payment does not equal the
	// asking price exactly.
	ErrPriceMismatch = errors.New("market: payment does not match asking price")

	// ErrNilCall indicates a required host call context is nil.
	ErrNilCall = errors.New("market: host call is nil")
)
