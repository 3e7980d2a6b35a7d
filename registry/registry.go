package registry

import (
	"fmt"

	"github.com/canvasorg/libcanvas-go/asset"
)

// Registry wraps an ArtistStore with the self-attestation rule: an artist
// record can only ever be written by the account it designates.
type Registry struct {
	store ArtistStore
}

// NewRegistry creates a registry over the given store.
func NewRegistry(store ArtistStore) *Registry {
	return &Registry{store: store}
}

// SetArtist inserts or overwrites the record at id. The caller must be
// the payout account being recorded; setting a record on behalf of
// another account is rejected.
func (r *Registry) SetArtist(caller asset.AccountID, id asset.ArtistID, name []byte, account asset.AccountID) error {
	if caller != account {
		return fmt.Errorf("%w: caller %s, account %s", ErrNotSelf, caller, account)
	}
	return r.store.Put(id, &Artist{Name: name, Account: account})
}

// Register creates a record for the caller at a freshly assigned id. Id
// assignment, insertion, and counter advancement happen atomically, so
// ids are never skipped or double-assigned.
func (r *Registry) Register(caller asset.AccountID, name []byte) (asset.ArtistID, error) {
	return r.store.Allocate(&Artist{Name: name, Account: caller})
}

// Artist returns the record at id.
func (r *Registry) Artist(id asset.ArtistID) (*Artist, error) {
	return r.store.Get(id)
}

// ArtistAccount returns the payout account for id.
func (r *Registry) ArtistAccount(id asset.ArtistID) (asset.AccountID, error) {
	a, err := r.store.Get(id)
	if err != nil {
		return asset.AccountID{}, err
	}
	return a.Account, nil
}

// NextID returns the current value of the id counter.
func (r *Registry) NextID() (asset.ArtistID, error) {
	return r.store.NextID()
}

// Bump advances the id counter by one without registering anything.
// Register is preferred; Bump exists for hosts that assign ids manually
// with SetArtist.
func (r *Registry) Bump() error {
	id, err := r.store.NextID()
	if err != nil {
		return err
	}
	return r.store.SetNextID(id + 1)
}
