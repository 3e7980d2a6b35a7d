package journal

import "errors"

var (
	// ErrMissingID indicates an event has no id.
	ErrMissingID = errors.New("journal: event id is empty")

	// ErrMissingKind indicates an event has no kind.
	ErrMissingKind = errors.New("journal: event kind is empty")

	// ErrInvalidEvent indicates a stored event row is malformed.
	ErrInvalidEvent = errors.New("journal: invalid event row")
)
