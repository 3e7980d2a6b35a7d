package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

const (
	priceLen = 32 // big-endian 256-bit word

	ownedRecordLen  = 1 + priceLen + asset.AccountIDLen     // tag + price + owner
	listedRecordLen = 1 + priceLen + 4 + asset.AccountIDLen // tag + price + artist + seller
)

// EncodeToken serializes a token record to its fixed binary layout.
func EncodeToken(t *Token) ([]byte, error) {
	if t == nil {
		return nil, ErrNilToken
	}
	if err := asset.CheckAmount(t.Price); err != nil {
		return nil, err
	}

	price := t.Price.Bytes32()

	switch t.State {
	case StateOwned:
		buf := make([]byte, ownedRecordLen)
		buf[0] = byte(StateOwned)
		copy(buf[1:1+priceLen], price[:])
		copy(buf[1+priceLen:], t.Owner[:])
		return buf, nil

	case StateListed:
		buf := make([]byte, listedRecordLen)
		buf[0] = byte(StateListed)
		copy(buf[1:1+priceLen], price[:])
		binary.BigEndian.PutUint32(buf[1+priceLen:1+priceLen+4], uint32(t.Artist))
		copy(buf[1+priceLen+4:], t.Seller[:])
		return buf, nil

	default:
		return nil, fmt.Errorf("%w: state %d", ErrInvalidRecord, t.State)
	}
}

// DecodeToken deserializes a token record from its binary layout.
func DecodeToken(data []byte) (*Token, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidRecord)
	}

	t := &Token{State: TokenState(data[0])}

	switch t.State {
	case StateOwned:
		if len(data) != ownedRecordLen {
			return nil, fmt.Errorf("%w: owned record is %d bytes, want %d", ErrInvalidRecord, len(data), ownedRecordLen)
		}
		t.Price = new(uint256.Int).SetBytes(data[1 : 1+priceLen])
		copy(t.Owner[:], data[1+priceLen:])
		return t, nil

	case StateListed:
		if len(data) != listedRecordLen {
			return nil, fmt.Errorf("%w: listed record is %d bytes, want %d", ErrInvalidRecord, len(data), listedRecordLen)
		}
		t.Price = new(uint256.Int).SetBytes(data[1 : 1+priceLen])
		t.Artist = asset.ArtistID(binary.BigEndian.Uint32(data[1+priceLen : 1+priceLen+4]))
		copy(t.Seller[:], data[1+priceLen+4:])
		return t, nil

	default:
		return nil, fmt.Errorf("%w: unknown state tag %d", ErrInvalidRecord, data[0])
	}
}
