// Package asset defines the identifier and amount types shared by the
// token ledger, artist registry, and settlement packages.
package asset

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// TokenID identifies a token in the ledger.
type TokenID uint32

// ArtistID identifies an artist in the registry.
type ArtistID uint32

// AccountIDLen is the length of an account identifier in bytes.
const AccountIDLen = 32

// AccountID identifies a principal in the hosting environment: the
// account that owns tokens, registers as an artist, or receives payouts.
type AccountID [AccountIDLen]byte

// AccountIDFromSeed derives an account id from arbitrary key material
// using BLAKE2b-256.
func AccountIDFromSeed(seed []byte) AccountID {
	return AccountID(blake2b.Sum256(seed))
}

// String returns the hex encoding of the account id.
func (a AccountID) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether the account id is all zero bytes.
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

// ParseAccountID decodes a hex-encoded account id.
func ParseAccountID(s string) (AccountID, error) {
	var id AccountID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}
	if len(b) != AccountIDLen {
		return id, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidAccountID, len(b), AccountIDLen)
	}
	copy(id[:], b)
	return id, nil
}
