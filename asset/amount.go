package asset

import (
	"fmt"

	"github.com/holiman/uint256"
)

// MaxAmountBits is the widest amount the ledger accepts. Prices and
// payments are 128-bit values carried in 256-bit words.
const MaxAmountBits = 128

// NewAmount returns an amount holding v.
func NewAmount(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// CheckAmount validates that v is non-nil and fits in 128 bits.
func CheckAmount(v *uint256.Int) error {
	if v == nil {
		return ErrNilAmount
	}
	if v.BitLen() > MaxAmountBits {
		return fmt.Errorf("%w: %d bits", ErrAmountTooWide, v.BitLen())
	}
	return nil
}
