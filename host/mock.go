package host

import (
	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

// MockCall is a test double for Call. CallerID and Value are returned
// directly; TransferFn must be set before Transfer is called.
type MockCall struct {
	CallerID   asset.AccountID
	Value      *uint256.Int
	TransferFn func(to asset.AccountID, amount *uint256.Int) error
}

// Compile-time interface check.
var _ Call = (*MockCall)(nil)

func (m *MockCall) Caller() asset.AccountID {
	return m.CallerID
}

func (m *MockCall) TransferredValue() *uint256.Int {
	if m.Value == nil {
		return uint256.NewInt(0)
	}
	return m.Value
}

func (m *MockCall) Transfer(to asset.AccountID, amount *uint256.Int) error {
	return m.TransferFn(to, amount)
}
