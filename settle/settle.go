// Package settle computes the royalty split of a sale payment and issues
// the resulting payouts through the hosting environment.
package settle

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
	"github.com/canvasorg/libcanvas-go/host"
)

// RoyaltyDivisor fixes the artist share at one tenth of the sale value.
// The remainder goes to the buyer side; integer truncation therefore
// always favors the buyer.
const RoyaltyDivisor = 10

// Payout is a single outbound transfer in a settlement.
type Payout struct {
	To     asset.AccountID
	Amount *uint256.Int
}

// Split divides a sale value into the artist share and the buyer-side
// remainder. artistShare + buyerShare == value always holds.
func Split(value *uint256.Int) (artistShare, buyerShare *uint256.Int, err error) {
	if err := asset.CheckAmount(value); err != nil {
		return nil, nil, err
	}

	artistShare = new(uint256.Int).Div(value, uint256.NewInt(RoyaltyDivisor))
	buyerShare = new(uint256.Int).Sub(value, artistShare)
	return artistShare, buyerShare, nil
}

// Plan builds the payout sequence for a sale: the artist share to the
// artist's payout account, the remainder back to the buyer.
func Plan(value *uint256.Int, artistAccount, buyer asset.AccountID) ([]Payout, error) {
	artistShare, buyerShare, err := Split(value)
	if err != nil {
		return nil, err
	}
	return []Payout{
		{To: artistAccount, Amount: artistShare},
		{To: buyer, Amount: buyerShare},
	}, nil
}

// Execute issues each payout through the host call. The first failed
// transfer aborts execution; the caller must not commit any ledger
// mutation the settlement was paying for.
func Execute(call host.Call, payouts []Payout) error {
	for _, p := range payouts {
		if p.Amount.IsZero() {
			continue
		}
		if err := call.Transfer(p.To, p.Amount); err != nil {
			return fmt.Errorf("%w: %s to %s: %v", ErrTransferFailed, p.Amount.Dec(), p.To, err)
		}
	}
	return nil
}
