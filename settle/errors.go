package settle

import "errors"

var (
	// ErrTransferFailed indicates an outbound transfer was rejected by
	// the hosting environment.
	ErrTransferFailed = errors.New("settle: transfer failed")

	// ErrValueNotConserved indicates payout amounts do not sum to the
	// sale value.
	ErrValueNotConserved = errors.New("settle: payouts do not conserve value")

	// ErrNoPayouts indicates an empty payout plan.
	ErrNoPayouts = errors.New("settle: no payouts")
)
