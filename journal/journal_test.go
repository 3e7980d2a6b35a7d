package journal

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasorg/libcanvas-go/asset"
)

func TestMemJournal(t *testing.T) {
	runJournalTests(t, func(t *testing.T) Journal { return NewMemJournal() })
}

func TestSQLiteJournal(t *testing.T) {
	runJournalTests(t, func(t *testing.T) Journal {
		j, err := OpenSQLiteJournal(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = j.Close() })
		return j
	})
}

func runJournalTests(t *testing.T, newJournal func(t *testing.T) Journal) {
	alice := asset.AccountIDFromSeed([]byte("alice"))
	bob := asset.AccountIDFromSeed([]byte("bob"))

	t.Run("AppendAndRead", func(t *testing.T) {
		j := newJournal(t)

		mint := NewEvent(0, KindMint, alice)
		mint.Amount = uint256.NewInt(100)
		require.NoError(t, j.Append(mint))

		transfer := NewEvent(0, KindTransfer, alice)
		transfer.Counterparty = bob
		require.NoError(t, j.Append(transfer))

		events, err := j.ByToken(0)
		require.NoError(t, err)
		require.Len(t, events, 2)

		assert.Equal(t, KindMint, events[0].Kind)
		assert.Equal(t, alice, events[0].Actor)
		assert.True(t, events[0].Amount.Eq(uint256.NewInt(100)))

		assert.Equal(t, KindTransfer, events[1].Kind)
		assert.Equal(t, bob, events[1].Counterparty)
		assert.True(t, events[1].Amount.IsZero())
	})

	t.Run("FiltersByToken", func(t *testing.T) {
		j := newJournal(t)

		require.NoError(t, j.Append(NewEvent(1, KindMint, alice)))
		require.NoError(t, j.Append(NewEvent(2, KindMint, bob)))
		require.NoError(t, j.Append(NewEvent(1, KindList, alice)))

		events, err := j.ByToken(1)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, KindMint, events[0].Kind)
		assert.Equal(t, KindList, events[1].Kind)

		events, err = j.ByToken(3)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("LargeAmountRoundTrip", func(t *testing.T) {
		j := newJournal(t)

		big := new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))
		e := NewEvent(7, KindSale, alice)
		e.Amount = big
		require.NoError(t, j.Append(e))

		events, err := j.ByToken(7)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.True(t, events[0].Amount.Eq(big))
	})

	t.Run("RejectsIncompleteEvents", func(t *testing.T) {
		j := newJournal(t)

		e := NewEvent(0, KindMint, alice)
		e.ID = ""
		assert.ErrorIs(t, j.Append(e), ErrMissingID)

		e = NewEvent(0, "", alice)
		assert.ErrorIs(t, j.Append(e), ErrMissingKind)
	})
}

func TestSQLiteJournal_PersistsAcrossReopen(t *testing.T) {
	path := t.TempDir() + "/journal.db"
	alice := asset.AccountIDFromSeed([]byte("alice"))

	j, err := OpenSQLiteJournal(path)
	require.NoError(t, err)
	require.NoError(t, j.Append(NewEvent(5, KindMint, alice)))
	require.NoError(t, j.Close())

	j, err = OpenSQLiteJournal(path)
	require.NoError(t, err)
	defer j.Close()

	events, err := j.ByToken(5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, KindMint, events[0].Kind)
	assert.Equal(t, alice, events[0].Actor)
}
