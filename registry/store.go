package registry

import (
	"sync"

	"github.com/canvasorg/libcanvas-go/asset"
)

// ArtistStore persists artist records and the id counter across calls.
type ArtistStore interface {
	// Put inserts or replaces the record at id. Last writer wins.
	Put(id asset.ArtistID, a *Artist) error

	// Get retrieves the record at id. Returns ErrArtistNotFound if the
	// id has never been set.
	Get(id asset.ArtistID) (*Artist, error)

	// NextID returns the current value of the id counter.
	NextID() (asset.ArtistID, error)

	// SetNextID overwrites the id counter.
	SetNextID(id asset.ArtistID) error

	// Allocate atomically inserts a at the counter's current value,
	// advances the counter, and returns the assigned id.
	Allocate(a *Artist) (asset.ArtistID, error)
}

// MemArtistStore is an in-memory implementation of ArtistStore.
type MemArtistStore struct {
	mu      sync.RWMutex
	artists map[asset.ArtistID]*Artist
	nextID  asset.ArtistID
}

// Compile-time interface check.
var _ ArtistStore = (*MemArtistStore)(nil)

// NewMemArtistStore creates an empty in-memory artist store with the
// counter at zero.
func NewMemArtistStore() *MemArtistStore {
	return &MemArtistStore{artists: make(map[asset.ArtistID]*Artist)}
}

// Put inserts or replaces the record at id.
func (s *MemArtistStore) Put(id asset.ArtistID, a *Artist) error {
	if a == nil {
		return ErrNilArtist
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.artists[id] = a.Clone()
	return nil
}

// Get retrieves the record at id.
func (s *MemArtistStore) Get(id asset.ArtistID) (*Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artists[id]
	if !ok {
		return nil, ErrArtistNotFound
	}
	return a.Clone(), nil
}

// NextID returns the current value of the id counter.
func (s *MemArtistStore) NextID() (asset.ArtistID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID, nil
}

// SetNextID overwrites the id counter.
func (s *MemArtistStore) SetNextID(id asset.ArtistID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = id
	return nil
}

// Allocate atomically assigns the next id to a and advances the counter.
func (s *MemArtistStore) Allocate(a *Artist) (asset.ArtistID, error) {
	if a == nil {
		return 0, ErrNilArtist
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.artists[id] = a.Clone()
	s.nextID = id + 1
	return id, nil
}
