package ledger

import (
	"sync"

	"github.com/canvasorg/libcanvas-go/asset"
)

// TokenStore persists token records across calls.
type TokenStore interface {
	// Put inserts or replaces the record for id.
	Put(id asset.TokenID, t *Token) error

	// Get retrieves the record for id. Returns ErrTokenNotFound if the
	// id has never been minted.
	Get(id asset.TokenID) (*Token, error)

	// Count returns the number of records in the store.
	Count() (uint64, error)
}

// MemTokenStore is an in-memory implementation of TokenStore for testing
// and for hosts that provide their own persistence around the whole call.
type MemTokenStore struct {
	mu     sync.RWMutex
	tokens map[asset.TokenID]*Token
}

// Compile-time interface check.
var _ TokenStore = (*MemTokenStore)(nil)

// NewMemTokenStore creates an empty in-memory token store.
func NewMemTokenStore() *MemTokenStore {
	return &MemTokenStore{tokens: make(map[asset.TokenID]*Token)}
}

// Put inserts or replaces the record for id.
func (s *MemTokenStore) Put(id asset.TokenID, t *Token) error {
	if t == nil {
		return ErrNilToken
	}
	if err := asset.CheckAmount(t.Price); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[id] = t.Clone()
	return nil
}

// Get retrieves the record for id.
func (s *MemTokenStore) Get(id asset.TokenID) (*Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tokens[id]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return t.Clone(), nil
}

// Count returns the number of records in the store.
func (s *MemTokenStore) Count() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.tokens)), nil
}
