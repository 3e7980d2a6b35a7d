package host

import "errors"

var (
	// ErrInsufficientFunds indicates a balance or the contract pool
	// cannot cover the requested amount.
	ErrInsufficientFunds = errors.New("host: insufficient funds")
)
