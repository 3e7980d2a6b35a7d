package settle

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

// ValidatePayouts checks that a payout plan conserves the sale value:
// the amounts must sum to exactly value.
func ValidatePayouts(value *uint256.Int, payouts []Payout) error {
	if err := asset.CheckAmount(value); err != nil {
		return err
	}
	if len(payouts) == 0 {
		return ErrNoPayouts
	}

	total := uint256.NewInt(0)
	for i, p := range payouts {
		if err := asset.CheckAmount(p.Amount); err != nil {
			return fmt.Errorf("payout %d: %w", i, err)
		}
		total.Add(total, p.Amount)
	}

	if !total.Eq(value) {
		return fmt.Errorf("%w: paid %s of %s", ErrValueNotConserved, total.Dec(), value.Dec())
	}
	return nil
}
