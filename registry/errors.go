package registry

import "errors"

var (
	// ErrArtistNotFound indicates the artist id is not in the registry.
	ErrArtistNotFound = errors.New("registry: artist not found")

	// ErrNotSelf indicates a caller tried to set an artist record whose
	// payout account is not the caller's own.
	ErrNotSelf = errors.New("registry: only the artist can set their record")

	// ErrNilArtist indicates a required artist record is nil.
	ErrNilArtist = errors.New("registry: artist record is nil")

	// ErrInvalidRecord indicates a stored artist record is malformed.
	ErrInvalidRecord = errors.New("registry: invalid artist record")

	// ErrNameTooLong indicates an artist name exceeds the codec limit.
	ErrNameTooLong = errors.New("registry: artist name too long")
)
