// Package market is the contract surface of the registry: it resolves
// the calling principal through the host boundary, evaluates the
// authorization gate against current record state, applies ledger and
// registry transitions, and orchestrates settlement on purchase.
package market

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
	"github.com/canvasorg/libcanvas-go/host"
	"github.com/canvasorg/libcanvas-go/journal"
	"github.com/canvasorg/libcanvas-go/ledger"
	"github.com/canvasorg/libcanvas-go/registry"
	"github.com/canvasorg/libcanvas-go/settle"
)

// Market composes the token ledger, artist registry, and provenance
// journal behind the contract operations. Calls are synchronous and
// serial; the market holds no locks of its own beyond those in the
// stores.
type Market struct {
	tokens  *ledger.Ledger
	artists *registry.Registry
	log     journal.Journal
}

// New creates a market over the given components.
func New(tokens *ledger.Ledger, artists *registry.Registry, log journal.Journal) *Market {
	return &Market{tokens: tokens, artists: artists, log: log}
}

// ---------------------------------------------------------------------------
// Token operations
// ---------------------------------------------------------------------------

// Mint creates a token owned by the caller at the given price. Listing
// the token for sale, and associating it with an artist, is a separate
// explicit step (ListForSale).
func (m *Market) Mint(call host.Call, id asset.TokenID, price *uint256.Int) error {
	if call == nil {
		return ErrNilCall
	}
	caller := call.Caller()

	if err := m.tokens.Mint(id, price, caller); err != nil {
		return err
	}

	e := journal.NewEvent(id, journal.KindMint, caller)
	e.Amount = price.Clone()
	return m.log.Append(e)
}

// Transfer moves a token owned by the caller to another account. The
// recorded price resets to zero.
func (m *Market) Transfer(call host.Call, id asset.TokenID, to asset.AccountID) error {
	if call == nil {
		return ErrNilCall
	}
	caller := call.Caller()

	t, err := m.tokens.Token(id)
	if err != nil {
		return err
	}
	if err := requireOwner(t, caller); err != nil {
		return err
	}
	if err := m.tokens.Transfer(id, to); err != nil {
		return err
	}

	e := journal.NewEvent(id, journal.KindTransfer, caller)
	e.Counterparty = to
	return m.log.Append(e)
}

// SetPrice updates the price of a token owned by the caller.
func (m *Market) SetPrice(call host.Call, id asset.TokenID, price *uint256.Int) error {
	if call == nil {
		return ErrNilCall
	}
	caller := call.Caller()

	t, err := m.tokens.Token(id)
	if err != nil {
		return err
	}
	if err := requireOwner(t, caller); err != nil {
		return err
	}
	if err := m.tokens.SetPrice(id, price); err != nil {
		return err
	}

	e := journal.NewEvent(id, journal.KindPrice, caller)
	e.Amount = price.Clone()
	return m.log.Append(e)
}

// ListForSale offers a token owned by the caller for sale at the given
// asking price, associated with the given artist. The caller is recorded
// as the seller.
func (m *Market) ListForSale(call host.Call, id asset.TokenID, price *uint256.Int, artist asset.ArtistID) error {
	if call == nil {
		return ErrNilCall
	}
	caller := call.Caller()

	t, err := m.tokens.Token(id)
	if err != nil {
		return err
	}
	if err := requireOwner(t, caller); err != nil {
		return err
	}
	if err := m.tokens.ListForSale(id, price, artist, caller); err != nil {
		return err
	}

	e := journal.NewEvent(id, journal.KindList, caller)
	e.Amount = price.Clone()
	return m.log.Append(e)
}

// SetTokenArtist replaces the artist reference on a listed token.
func (m *Market) SetTokenArtist(call host.Call, id asset.TokenID, artist asset.ArtistID) error {
	if call == nil {
		return ErrNilCall
	}
	caller := call.Caller()

	t, err := m.tokens.Token(id)
	if err != nil {
		return err
	}
	if err := requireListed(t); err != nil {
		return err
	}
	if err := m.tokens.SetTokenArtist(id, artist); err != nil {
		return err
	}

	return m.log.Append(journal.NewEvent(id, journal.KindRetag, caller))
}

// Buy purchases a listed token. The attached value must equal the asking
// price exactly. The artist receives a tenth of the payment and the
// remainder returns to the buyer; both transfers complete before the
// ownership change is committed, so a failed payout leaves the ledger
// untouched. A failure between the two transfers still relies on the
// host rolling back the whole call.
func (m *Market) Buy(call host.Call, id asset.TokenID) error {
	if call == nil {
		return ErrNilCall
	}
	caller := call.Caller()

	t, err := m.tokens.Token(id)
	if err != nil {
		return err
	}
	if err := requireListed(t); err != nil {
		return err
	}

	value := call.TransferredValue()
	if err := requireExactPayment(t.Price, value); err != nil {
		return err
	}

	artistAccount, err := m.artists.ArtistAccount(t.Artist)
	if err != nil {
		return fmt.Errorf("resolve artist %d: %w", t.Artist, err)
	}

	payouts, err := settle.Plan(value, artistAccount, caller)
	if err != nil {
		return err
	}
	if err := settle.ValidatePayouts(value, payouts); err != nil {
		return err
	}
	if err := settle.Execute(call, payouts); err != nil {
		return err
	}

	if err := m.tokens.CompletePurchase(id, caller); err != nil {
		return err
	}

	e := journal.NewEvent(id, journal.KindSale, caller)
	e.Counterparty = t.Seller
	e.Amount = value.Clone()
	return m.log.Append(e)
}

// Token returns the record for id, or ledger.ErrTokenNotFound.
func (m *Market) Token(id asset.TokenID) (*ledger.Token, error) {
	return m.tokens.Token(id)
}

// TokenCount returns the number of minted tokens.
func (m *Market) TokenCount() (uint64, error) {
	return m.tokens.Count()
}

// History returns the provenance events for a token in order.
func (m *Market) History(id asset.TokenID) ([]journal.Event, error) {
	return m.log.ByToken(id)
}

// ---------------------------------------------------------------------------
// Artist operations
// ---------------------------------------------------------------------------

// SetArtist inserts or overwrites the artist record at id. The caller
// must be the payout account being recorded.
func (m *Market) SetArtist(call host.Call, id asset.ArtistID, name []byte, account asset.AccountID) error {
	if call == nil {
		return ErrNilCall
	}
	return m.artists.SetArtist(call.Caller(), id, name, account)
}

// RegisterArtist registers the caller as an artist at a freshly assigned
// id and returns the id.
func (m *Market) RegisterArtist(call host.Call, name []byte) (asset.ArtistID, error) {
	if call == nil {
		return 0, ErrNilCall
	}
	return m.artists.Register(call.Caller(), name)
}

// Artist returns the record at id.
func (m *Market) Artist(id asset.ArtistID) (*registry.Artist, error) {
	return m.artists.Artist(id)
}

// ArtistAccount returns the payout account for id.
func (m *Market) ArtistAccount(id asset.ArtistID) (asset.AccountID, error) {
	return m.artists.ArtistAccount(id)
}

// NextArtistID returns the current value of the artist id counter.
func (m *Market) NextArtistID() (asset.ArtistID, error) {
	return m.artists.NextID()
}

// IncrementArtistID advances the artist id counter without registering.
func (m *Market) IncrementArtistID() error {
	return m.artists.Bump()
}
