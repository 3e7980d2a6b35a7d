package registry

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/canvasorg/libcanvas-go/asset"
)

const artistHeaderLen = asset.AccountIDLen + 2 // account(32) + name_len(2)

// EncodeArtist serializes an artist record: payout account followed by a
// length-prefixed name.
func EncodeArtist(a *Artist) ([]byte, error) {
	if a == nil {
		return nil, ErrNilArtist
	}
	if len(a.Name) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(a.Name))
	}

	buf := make([]byte, artistHeaderLen+len(a.Name))
	copy(buf[:asset.AccountIDLen], a.Account[:])
	binary.BigEndian.PutUint16(buf[asset.AccountIDLen:artistHeaderLen], uint16(len(a.Name)))
	copy(buf[artistHeaderLen:], a.Name)
	return buf, nil
}

// DecodeArtist deserializes an artist record.
func DecodeArtist(data []byte) (*Artist, error) {
	if len(data) < artistHeaderLen {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrInvalidRecord, len(data))
	}

	a := &Artist{}
	copy(a.Account[:], data[:asset.AccountIDLen])

	nameLen := int(binary.BigEndian.Uint16(data[asset.AccountIDLen:artistHeaderLen]))
	if len(data) != artistHeaderLen+nameLen {
		return nil, fmt.Errorf("%w: expected %d bytes for name length %d, got %d",
			ErrInvalidRecord, artistHeaderLen+nameLen, nameLen, len(data))
	}
	if nameLen > 0 {
		a.Name = make([]byte, nameLen)
		copy(a.Name, data[artistHeaderLen:])
	}
	return a, nil
}
