package market

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasorg/libcanvas-go/asset"
	"github.com/canvasorg/libcanvas-go/host"
	"github.com/canvasorg/libcanvas-go/journal"
	"github.com/canvasorg/libcanvas-go/ledger"
	"github.com/canvasorg/libcanvas-go/registry"
	"github.com/canvasorg/libcanvas-go/settle"
)

var (
	alice = asset.AccountIDFromSeed([]byte("alice"))
	bob   = asset.AccountIDFromSeed([]byte("bob"))
	carol = asset.AccountIDFromSeed([]byte("carol"))
)

func newMarket(t *testing.T) *Market {
	t.Helper()
	return New(
		ledger.NewLedger(ledger.NewMemTokenStore()),
		registry.NewRegistry(registry.NewMemArtistStore()),
		journal.NewMemJournal(),
	)
}

// asCaller returns a call context with no payment attached.
func asCaller(id asset.AccountID) *host.MockCall {
	return &host.MockCall{CallerID: id}
}

// ---------------------------------------------------------------------------
// Mint
// ---------------------------------------------------------------------------

func TestMint_OwnedByCaller(t *testing.T) {
	m := newMarket(t)

	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.IsOwned())
	assert.True(t, tok.Price.Eq(uint256.NewInt(100)))
	assert.Equal(t, alice, tok.Owner)
}

func TestMint_DuplicateRejected(t *testing.T) {
	m := newMarket(t)

	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))
	err := m.Mint(asCaller(bob), 0, uint256.NewInt(1))
	assert.ErrorIs(t, err, ledger.ErrTokenExists)
	assert.False(t, IsRejected(err))
}

func TestToken_NeverMinted(t *testing.T) {
	m := newMarket(t)
	_, err := m.Token(99)
	assert.ErrorIs(t, err, ledger.ErrTokenNotFound)
}

// ---------------------------------------------------------------------------
// Transfer / SetPrice authorization
// ---------------------------------------------------------------------------

func TestTransfer_NonOwnerRejected(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))

	err := m.Transfer(asCaller(bob), 0, carol)
	assert.ErrorIs(t, err, ledger.ErrNotOwner)
	assert.True(t, IsRejected(err))

	// Record unchanged.
	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.Equal(t, alice, tok.Owner)
	assert.True(t, tok.Price.Eq(uint256.NewInt(100)))
}

func TestTransfer_OwnerSucceedsAndResetsPrice(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))
	require.NoError(t, m.Transfer(asCaller(alice), 0, bob))

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.Equal(t, bob, tok.Owner)
	assert.True(t, tok.Price.IsZero())
}

func TestTransfer_MissingTokenIsFault(t *testing.T) {
	m := newMarket(t)
	err := m.Transfer(asCaller(alice), 42, bob)
	assert.ErrorIs(t, err, ledger.ErrTokenNotFound)
	assert.False(t, IsRejected(err))
}

func TestSetPrice_NonOwnerNeverChangesPrice(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))

	// Repeated attempts by the non-owner never take effect.
	for i := 0; i < 3; i++ {
		err := m.SetPrice(asCaller(bob), 0, uint256.NewInt(1))
		assert.ErrorIs(t, err, ledger.ErrNotOwner)
		assert.True(t, IsRejected(err))
	}

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.Price.Eq(uint256.NewInt(100)))
}

func TestSetPrice_Owner(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))
	require.NoError(t, m.SetPrice(asCaller(alice), 0, uint256.NewInt(77)))

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.Price.Eq(uint256.NewInt(77)))
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

func TestListForSale_OwnerOnly(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))

	err := m.ListForSale(asCaller(bob), 0, uint256.NewInt(50), 0)
	assert.ErrorIs(t, err, ledger.ErrNotOwner)
	assert.True(t, IsRejected(err))

	require.NoError(t, m.ListForSale(asCaller(alice), 0, uint256.NewInt(50), 0))

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.IsListed())
	assert.Equal(t, alice, tok.Seller)
}

func TestSetTokenArtist_ListedOnly(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))

	err := m.SetTokenArtist(asCaller(alice), 0, 3)
	assert.ErrorIs(t, err, ledger.ErrNotForSale)
	assert.True(t, IsRejected(err))

	require.NoError(t, m.ListForSale(asCaller(alice), 0, uint256.NewInt(50), 0))
	require.NoError(t, m.SetTokenArtist(asCaller(alice), 0, 3))

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.Equal(t, asset.ArtistID(3), tok.Artist)
}

// ---------------------------------------------------------------------------
// Buy
// ---------------------------------------------------------------------------

// listedMarket mints token 0 for seller, registers artist 0, and lists
// the token at the given price.
func listedMarket(t *testing.T, seller, artist asset.AccountID, price uint64) *Market {
	t.Helper()
	m := newMarket(t)

	id, err := m.RegisterArtist(asCaller(artist), []byte("the artist"))
	require.NoError(t, err)

	require.NoError(t, m.Mint(asCaller(seller), 0, uint256.NewInt(price)))
	require.NoError(t, m.ListForSale(asCaller(seller), 0, uint256.NewInt(price), id))
	return m
}

func TestBuy_NotListedRejected(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))

	call := asCaller(bob)
	call.Value = uint256.NewInt(100)
	err := m.Buy(call, 0)
	assert.ErrorIs(t, err, ledger.ErrNotForSale)
	assert.True(t, IsRejected(err))

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.Equal(t, alice, tok.Owner)
}

func TestBuy_PriceMismatchIsFault(t *testing.T) {
	m := listedMarket(t, alice, carol, 100)

	for _, attached := range []uint64{0, 99, 101} {
		call := asCaller(bob)
		call.Value = uint256.NewInt(attached)
		err := m.Buy(call, 0)
		assert.ErrorIs(t, err, ErrPriceMismatch, "attached %d", attached)
		assert.False(t, IsRejected(err))
	}

	// Still listed, unchanged.
	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.IsListed())
	assert.True(t, tok.Price.Eq(uint256.NewInt(100)))
}

func TestBuy_UnknownArtistIsFault(t *testing.T) {
	m := newMarket(t)
	require.NoError(t, m.Mint(asCaller(alice), 0, uint256.NewInt(100)))
	require.NoError(t, m.ListForSale(asCaller(alice), 0, uint256.NewInt(100), 9))

	call := asCaller(bob)
	call.Value = uint256.NewInt(100)
	call.TransferFn = func(asset.AccountID, *uint256.Int) error { return nil }

	err := m.Buy(call, 0)
	assert.ErrorIs(t, err, registry.ErrArtistNotFound)

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.IsListed())
}

func TestBuy_SplitsPayment(t *testing.T) {
	m := listedMarket(t, alice, carol, 100)

	var paid []settle.Payout
	call := asCaller(bob)
	call.Value = uint256.NewInt(100)
	call.TransferFn = func(to asset.AccountID, amount *uint256.Int) error {
		paid = append(paid, settle.Payout{To: to, Amount: amount.Clone()})
		return nil
	}

	require.NoError(t, m.Buy(call, 0))

	require.Len(t, paid, 2)
	assert.Equal(t, carol, paid[0].To)
	assert.True(t, paid[0].Amount.Eq(uint256.NewInt(10)))
	assert.Equal(t, bob, paid[1].To)
	assert.True(t, paid[1].Amount.Eq(uint256.NewInt(90)))

	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.IsOwned())
	assert.True(t, tok.Price.IsZero())
	assert.Equal(t, bob, tok.Owner)
}

func TestBuy_TransferFailureLeavesLedgerUntouched(t *testing.T) {
	m := listedMarket(t, alice, carol, 100)

	call := asCaller(bob)
	call.Value = uint256.NewInt(100)
	call.TransferFn = func(asset.AccountID, *uint256.Int) error {
		return errors.New("host refused")
	}

	err := m.Buy(call, 0)
	assert.ErrorIs(t, err, settle.ErrTransferFailed)

	// The ownership transition was never committed.
	tok, err := m.Token(0)
	require.NoError(t, err)
	assert.True(t, tok.IsListed())
	assert.True(t, tok.Price.Eq(uint256.NewInt(100)))
}

// ---------------------------------------------------------------------------
// Artist operations
// ---------------------------------------------------------------------------

func TestSetArtist_SelfAttestation(t *testing.T) {
	m := newMarket(t)

	require.NoError(t, m.SetArtist(asCaller(alice), 0, []byte("Alice"), alice))

	acct, err := m.ArtistAccount(0)
	require.NoError(t, err)
	assert.Equal(t, alice, acct)

	// Registering on someone else's behalf is a fault, not a rejection.
	err = m.SetArtist(asCaller(bob), 1, []byte("Alice"), alice)
	assert.ErrorIs(t, err, registry.ErrNotSelf)
	assert.False(t, IsRejected(err))

	_, err = m.ArtistAccount(1)
	assert.ErrorIs(t, err, registry.ErrArtistNotFound)
}

func TestRegisterArtist_AndCounter(t *testing.T) {
	m := newMarket(t)

	next, err := m.NextArtistID()
	require.NoError(t, err)
	assert.Equal(t, asset.ArtistID(0), next)

	id, err := m.RegisterArtist(asCaller(alice), []byte("Alice"))
	require.NoError(t, err)
	assert.Equal(t, asset.ArtistID(0), id)

	next, err = m.NextArtistID()
	require.NoError(t, err)
	assert.Equal(t, asset.ArtistID(1), next)

	a, err := m.Artist(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("Alice"), a.Name)
	assert.Equal(t, alice, a.Account)

	// The manual counter accessor still works for explicit-id flows.
	require.NoError(t, m.IncrementArtistID())
	next, err = m.NextArtistID()
	require.NoError(t, err)
	assert.Equal(t, asset.ArtistID(2), next)
}

// ---------------------------------------------------------------------------
// Nil call guard
// ---------------------------------------------------------------------------

func TestNilCall(t *testing.T) {
	m := newMarket(t)

	assert.ErrorIs(t, m.Mint(nil, 0, uint256.NewInt(1)), ErrNilCall)
	assert.ErrorIs(t, m.Transfer(nil, 0, bob), ErrNilCall)
	assert.ErrorIs(t, m.SetPrice(nil, 0, uint256.NewInt(1)), ErrNilCall)
	assert.ErrorIs(t, m.ListForSale(nil, 0, uint256.NewInt(1), 0), ErrNilCall)
	assert.ErrorIs(t, m.SetTokenArtist(nil, 0, 0), ErrNilCall)
	assert.ErrorIs(t, m.Buy(nil, 0), ErrNilCall)
	assert.ErrorIs(t, m.SetArtist(nil, 0, nil, alice), ErrNilCall)
	_, err := m.RegisterArtist(nil, nil)
	assert.ErrorIs(t, err, ErrNilCall)
}
