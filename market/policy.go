package market

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
	"github.com/canvasorg/libcanvas-go/ledger"
)

// The authorization gate. Every mutating operation runs exactly one of
// these checks against the current record state before any ledger or
// registry mutation is applied.

// requireOwner admits an operation only when the token is privately held
// by the caller.
func requireOwner(t *ledger.Token, caller asset.AccountID) error {
	if !t.IsOwned() {
		return ledger.ErrNotOwned
	}
	if t.Owner != caller {
		return fmt.Errorf("%w: owner %s, caller %s", ledger.ErrNotOwner, t.Owner, caller)
	}
	return nil
}

// requireListed admits an operation only when the token is for sale.
func requireListed(t *ledger.Token) error {
	if !t.IsListed() {
		return ledger.ErrNotForSale
	}
	return nil
}

// requireExactPayment admits a purchase only when the attached value
// equals the asking price exactly. Anyone may buy; the payment is the
// authorization.
func requireExactPayment(price, value *uint256.Int) error {
	if err := asset.CheckAmount(value); err != nil {
		return err
	}
	if !value.Eq(price) {
		return fmt.Errorf("%w: asking %s, attached %s", ErrPriceMismatch, price.Dec(), value.Dec())
	}
	return nil
}

// IsRejected reports whether err is a policy rejection: the caller was
// not authorized for the transition, or the record was in the wrong
// variant. Faults are not rejections: missing records, payment
// mismatches, impersonated artist registration, and failed transfers
// abort the call outright.
func IsRejected(err error) bool {
	return errors.Is(err, ledger.ErrNotOwner) ||
		errors.Is(err, ledger.ErrNotOwned) ||
		errors.Is(err, ledger.ErrNotForSale)
}
