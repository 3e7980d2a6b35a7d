package ledger

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

// Ledger applies state-machine transitions over a TokenStore. The legal
// transitions for a single token are:
//
//	absent → Owned            (Mint)
//	Owned  → Owned            (Transfer, SetPrice)
//	Owned  → Listed           (ListForSale)
//	Listed → Listed           (SetTokenArtist)
//	Listed → Owned            (CompletePurchase)
//
// Tokens are never destroyed. The ledger enforces variant preconditions;
// caller authorization is evaluated by the market gate before any
// transition is invoked.
type Ledger struct {
	store TokenStore
}

// NewLedger creates a ledger over the given store.
func NewLedger(store TokenStore) *Ledger {
	return &Ledger{store: store}
}

// Token returns the record for id, or ErrTokenNotFound if it has never
// been minted.
func (l *Ledger) Token(id asset.TokenID) (*Token, error) {
	return l.store.Get(id)
}

// Count returns the number of minted tokens.
func (l *Ledger) Count() (uint64, error) {
	return l.store.Count()
}

// Mint creates an owned record for id. Minting an id that already exists
// is rejected; records are never silently overwritten.
func (l *Ledger) Mint(id asset.TokenID, price *uint256.Int, owner asset.AccountID) error {
	if err := asset.CheckAmount(price); err != nil {
		return err
	}

	_, err := l.store.Get(id)
	switch {
	case err == nil:
		return fmt.Errorf("%w: id %d", ErrTokenExists, id)
	case !errors.Is(err, ErrTokenNotFound):
		return err
	}

	return l.store.Put(id, &Token{
		State: StateOwned,
		Price: price.Clone(),
		Owner: owner,
	})
}

// Transfer moves an owned token to a new owner. The price resets to zero
// so the previous asking price never leaks to the new owner.
func (l *Ledger) Transfer(id asset.TokenID, to asset.AccountID) error {
	t, err := l.store.Get(id)
	if err != nil {
		return err
	}
	if !t.IsOwned() {
		return fmt.Errorf("%w: id %d", ErrNotOwned, id)
	}

	return l.store.Put(id, &Token{
		State: StateOwned,
		Price: uint256.NewInt(0),
		Owner: to,
	})
}

// SetPrice updates the price of an owned token without changing its owner.
func (l *Ledger) SetPrice(id asset.TokenID, price *uint256.Int) error {
	if err := asset.CheckAmount(price); err != nil {
		return err
	}

	t, err := l.store.Get(id)
	if err != nil {
		return err
	}
	if !t.IsOwned() {
		return fmt.Errorf("%w: id %d", ErrNotOwned, id)
	}

	t.Price = price.Clone()
	return l.store.Put(id, t)
}

// ListForSale moves an owned token to the listed state with an asking
// price and an artist reference. The previous owner is recorded as the
// seller for provenance.
func (l *Ledger) ListForSale(id asset.TokenID, price *uint256.Int, artist asset.ArtistID, seller asset.AccountID) error {
	if err := asset.CheckAmount(price); err != nil {
		return err
	}

	t, err := l.store.Get(id)
	if err != nil {
		return err
	}
	if !t.IsOwned() {
		return fmt.Errorf("%w: id %d", ErrNotOwned, id)
	}

	return l.store.Put(id, &Token{
		State:  StateListed,
		Price:  price.Clone(),
		Artist: artist,
		Seller: seller,
	})
}

// SetTokenArtist replaces the artist reference on a listed token.
func (l *Ledger) SetTokenArtist(id asset.TokenID, artist asset.ArtistID) error {
	t, err := l.store.Get(id)
	if err != nil {
		return err
	}
	if !t.IsListed() {
		return fmt.Errorf("%w: id %d", ErrNotForSale, id)
	}

	t.Artist = artist
	return l.store.Put(id, t)
}

// CompletePurchase moves a listed token to the buyer. The market invokes
// this only after settlement transfers have succeeded, so a payment
// failure never leaves the ledger mutated.
func (l *Ledger) CompletePurchase(id asset.TokenID, buyer asset.AccountID) error {
	t, err := l.store.Get(id)
	if err != nil {
		return err
	}
	if !t.IsListed() {
		return fmt.Errorf("%w: id %d", ErrNotForSale, id)
	}

	return l.store.Put(id, &Token{
		State: StateOwned,
		Price: uint256.NewInt(0),
		Owner: buyer,
	})
}
