package host

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

// SimBank is an in-memory bank that models the host's native currency.
// Attaching value to a call moves funds from the caller into a pool held
// by the contract; Transfer pays out of that pool. It exists so that
// settlement can be exercised end to end with real balance movement.
type SimBank struct {
	mu       sync.Mutex
	balances map[asset.AccountID]*uint256.Int
	pool     *uint256.Int
}

// NewSimBank creates an empty bank.
func NewSimBank() *SimBank {
	return &SimBank{
		balances: make(map[asset.AccountID]*uint256.Int),
		pool:     uint256.NewInt(0),
	}
}

// Credit adds amount to an account's balance.
func (b *SimBank) Credit(acct asset.AccountID, amount *uint256.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(acct, amount)
}

// credit requires b.mu held.
func (b *SimBank) credit(acct asset.AccountID, amount *uint256.Int) {
	cur, ok := b.balances[acct]
	if !ok {
		cur = uint256.NewInt(0)
		b.balances[acct] = cur
	}
	cur.Add(cur, amount)
}

// Balance returns a copy of the account's balance.
func (b *SimBank) Balance(acct asset.AccountID) *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur, ok := b.balances[acct]
	if !ok {
		return uint256.NewInt(0)
	}
	return cur.Clone()
}

// Pool returns a copy of the funds currently held by the contract.
func (b *SimBank) Pool() *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pool.Clone()
}

// NewCall starts a call by caller with the given attached value. The
// value is debited from the caller's balance and held in the contract
// pool until transferred out.
func (b *SimBank) NewCall(caller asset.AccountID, value *uint256.Int) (*SimCall, error) {
	if value == nil {
		value = uint256.NewInt(0)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.balances[caller]
	if !ok || cur.Lt(value) {
		return nil, fmt.Errorf("%w: attaching %s", ErrInsufficientFunds, value.Dec())
	}
	cur.Sub(cur, value)
	b.pool.Add(b.pool, value)

	return &SimCall{bank: b, caller: caller, value: value.Clone()}, nil
}

// SimCall binds a caller and attached value to a SimBank.
type SimCall struct {
	bank   *SimBank
	caller asset.AccountID
	value  *uint256.Int
}

// Compile-time interface check.
var _ Call = (*SimCall)(nil)

func (c *SimCall) Caller() asset.AccountID {
	return c.caller
}

func (c *SimCall) TransferredValue() *uint256.Int {
	return c.value.Clone()
}

// Transfer pays amount out of the contract pool to the given account.
func (c *SimCall) Transfer(to asset.AccountID, amount *uint256.Int) error {
	b := c.bank
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pool.Lt(amount) {
		return fmt.Errorf("%w: paying %s from pool %s", ErrInsufficientFunds, amount.Dec(), b.pool.Dec())
	}
	b.pool.Sub(b.pool, amount)
	b.credit(to, amount)
	return nil
}
