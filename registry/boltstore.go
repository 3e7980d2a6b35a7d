package registry

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/canvasorg/libcanvas-go/asset"
)

var (
	bucketArtists = []byte("artists")
	bucketMeta    = []byte("registry_meta")

	keyNextArtistID = []byte("next_artist_id")
)

// BoltArtistStore persists artist records and the id counter in bbolt.
type BoltArtistStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ ArtistStore = (*BoltArtistStore)(nil)

// NewBoltArtistStore creates the registry buckets if needed and returns a
// store backed by db. The caller retains ownership of db.
func NewBoltArtistStore(db *bbolt.DB) (*BoltArtistStore, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketArtists, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("registry: create buckets: %w", err)
	}
	return &BoltArtistStore{db: db}, nil
}

// artistKey encodes an artist id as a 4-byte big-endian key.
func artistKey(id asset.ArtistID) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, uint32(id))
	return k
}

func readCounter(tx *bbolt.Tx) asset.ArtistID {
	v := tx.Bucket(bucketMeta).Get(keyNextArtistID)
	if len(v) != 4 {
		return 0
	}
	return asset.ArtistID(binary.BigEndian.Uint32(v))
}

func writeCounter(tx *bbolt.Tx, id asset.ArtistID) error {
	return tx.Bucket(bucketMeta).Put(keyNextArtistID, artistKey(id))
}

// Put inserts or replaces the record at id.
func (s *BoltArtistStore) Put(id asset.ArtistID, a *Artist) error {
	data, err := EncodeArtist(a)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketArtists).Put(artistKey(id), data); err != nil {
			return fmt.Errorf("registry: put artist %d: %w", id, err)
		}
		return nil
	})
}

// Get retrieves the record at id.
func (s *BoltArtistStore) Get(id asset.ArtistID) (*Artist, error) {
	var a *Artist
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketArtists).Get(artistKey(id))
		if data == nil {
			return ErrArtistNotFound
		}
		var err error
		a, err = DecodeArtist(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// NextID returns the current value of the id counter.
func (s *BoltArtistStore) NextID() (asset.ArtistID, error) {
	var id asset.ArtistID
	err := s.db.View(func(tx *bbolt.Tx) error {
		id = readCounter(tx)
		return nil
	})
	return id, err
}

// SetNextID overwrites the id counter.
func (s *BoltArtistStore) SetNextID(id asset.ArtistID) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return writeCounter(tx, id)
	})
}

// Allocate assigns the next id to a and advances the counter in a single
// write transaction.
func (s *BoltArtistStore) Allocate(a *Artist) (asset.ArtistID, error) {
	data, err := EncodeArtist(a)
	if err != nil {
		return 0, err
	}

	var id asset.ArtistID
	err = s.db.Update(func(tx *bbolt.Tx) error {
		id = readCounter(tx)
		if err := tx.Bucket(bucketArtists).Put(artistKey(id), data); err != nil {
			return fmt.Errorf("registry: put artist %d: %w", id, err)
		}
		return writeCounter(tx, id+1)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
