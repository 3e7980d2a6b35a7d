package ledger

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/canvasorg/libcanvas-go/asset"
)

var bucketTokens = []byte("tokens")

// BoltTokenStore persists token records in bbolt.
type BoltTokenStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ TokenStore = (*BoltTokenStore)(nil)

// NewBoltTokenStore creates the token bucket if needed and returns a
// store backed by db. The caller retains ownership of db.
func NewBoltTokenStore(db *bbolt.DB) (*BoltTokenStore, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTokens)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ledger: create token bucket: %w", err)
	}
	return &BoltTokenStore{db: db}, nil
}

// tokenKey encodes a token id as a 4-byte big-endian key.
func tokenKey(id asset.TokenID) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, uint32(id))
	return k
}

// Put inserts or replaces the record for id.
func (s *BoltTokenStore) Put(id asset.TokenID, t *Token) error {
	data, err := EncodeToken(t)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketTokens).Put(tokenKey(id), data); err != nil {
			return fmt.Errorf("ledger: put token %d: %w", id, err)
		}
		return nil
	})
}

// Get retrieves the record for id.
func (s *BoltTokenStore) Get(id asset.TokenID) (*Token, error) {
	var t *Token
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTokens).Get(tokenKey(id))
		if data == nil {
			return ErrTokenNotFound
		}
		var err error
		t, err = DecodeToken(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Count returns the number of records in the store.
func (s *BoltTokenStore) Count() (uint64, error) {
	var count uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = uint64(tx.Bucket(bucketTokens).Stats().KeyN)
		return nil
	})
	return count, err
}
