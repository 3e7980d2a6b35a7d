// Package host defines the boundary to the hosting execution environment:
// caller identity, the value attached to a call, and outbound native
// currency transfers. The ledger itself never holds balances; it only
// instructs the host to move them.
package host

import (
	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

// Call is the per-invocation view of the hosting environment. The caller
// and attached value are fixed for the lifetime of one operation.
type Call interface {
	// Caller returns the principal on whose behalf the call executes.
	Caller() asset.AccountID

	// TransferredValue returns the amount attached to the current call.
	TransferredValue() *uint256.Int

	// Transfer moves amount from funds held by the contract to the
	// given account. A failed transfer is fatal to the operation that
	// requested it.
	Transfer(to asset.AccountID, amount *uint256.Int) error
}
