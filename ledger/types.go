// Package ledger implements the token ledger: a durable mapping of token
// ids to ownership records and the state machine that moves a token
// between its two variants, privately owned and listed for sale.
package ledger

import (
	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

// TokenState distinguishes the two mutually exclusive token variants.
type TokenState uint8

const (
	// StateOwned marks a token held by an account and not for sale.
	StateOwned TokenState = 1
	// StateListed marks a token offered for sale at an asking price.
	StateListed TokenState = 2
)

// String returns the state name.
func (s TokenState) String() string {
	switch s {
	case StateOwned:
		return "owned"
	case StateListed:
		return "listed"
	default:
		return "unknown"
	}
}

// Token is a single ledger record. Price is always set. Owner is
// meaningful only in StateOwned; Artist and Seller only in StateListed.
// Artist is a non-owning reference into the artist registry, resolved by
// lookup at settlement time, never cached.
type Token struct {
	State  TokenState
	Price  *uint256.Int
	Owner  asset.AccountID
	Artist asset.ArtistID
	Seller asset.AccountID
}

// IsOwned reports whether the token is privately held.
func (t *Token) IsOwned() bool { return t.State == StateOwned }

// IsListed reports whether the token is offered for sale.
func (t *Token) IsListed() bool { return t.State == StateListed }

// Clone returns a deep copy of the record.
func (t *Token) Clone() *Token {
	c := *t
	if t.Price != nil {
		c.Price = t.Price.Clone()
	}
	return &c
}
