package ledger

import "errors"

var (
	// ErrTokenNotFound indicates the token id has never been minted.
	ErrTokenNotFound = errors.New("ledger: token not found")

	// ErrTokenExists indicates a mint targeted an id already in the ledger.
	ErrTokenExists = errors.New("ledger: token already exists")

	// ErrNotOwner indicates the caller does not own the token.
	ErrNotOwner = errors.New("ledger: caller is not the owner")

	// ErrNotOwned indicates the operation requires a privately held token
	// but the record is listed for sale.
	ErrNotOwned = errors.New("ledger: token is listed for sale")

	// ErrNotForSale indicates the operation requires a listed token but
	// the record is privately held.
	ErrNotForSale = errors.New("ledger: token is not for sale")

	// ErrNilToken indicates a required token record is nil.
	ErrNilToken = errors.New("ledger: token record is nil")

	// ErrInvalidRecord indicates a stored token record is malformed.
	ErrInvalidRecord = errors.New("ledger: invalid token record")
)
