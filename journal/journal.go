// Package journal records the provenance of ledger mutations: every
// successful mint, transfer, price change, listing, re-tag, and sale is
// appended as an event. The journal is advisory history, not ledger
// state; the ledger never reads it back.
package journal

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"

	"github.com/canvasorg/libcanvas-go/asset"
)

// Kind names the ledger mutation an event records.
type Kind string

const (
	KindMint     Kind = "mint"
	KindTransfer Kind = "transfer"
	KindPrice    Kind = "price"
	KindList     Kind = "list"
	KindRetag    Kind = "retag"
	KindSale     Kind = "sale"
)

// Event is one provenance record. Actor is the principal that performed
// the mutation. Counterparty is the other side where one exists: the
// transfer recipient, or the seller on a sale. Amount carries the price
// or payment involved, zero where none applies.
type Event struct {
	ID           string
	Token        asset.TokenID
	Kind         Kind
	Actor        asset.AccountID
	Counterparty asset.AccountID
	Amount       *uint256.Int
	At           time.Time
}

// NewEvent builds an event with a fresh id and the current time.
func NewEvent(token asset.TokenID, kind Kind, actor asset.AccountID) Event {
	return Event{
		ID:     uuid.New().String(),
		Token:  token,
		Kind:   kind,
		Actor:  actor,
		Amount: uint256.NewInt(0),
		At:     time.Now().UTC(),
	}
}

// Journal is an append-only event log.
type Journal interface {
	// Append records an event.
	Append(e Event) error

	// ByToken returns the events for a token in append order.
	ByToken(id asset.TokenID) ([]Event, error)

	// Close releases any underlying resources.
	Close() error
}

// MemJournal is an in-memory implementation of Journal.
type MemJournal struct {
	mu     sync.RWMutex
	events []Event
}

// Compile-time interface check.
var _ Journal = (*MemJournal)(nil)

// NewMemJournal creates an empty in-memory journal.
func NewMemJournal() *MemJournal {
	return &MemJournal{}
}

// Append records an event.
func (j *MemJournal) Append(e Event) error {
	if err := checkEvent(&e); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if e.Amount != nil {
		e.Amount = e.Amount.Clone()
	}
	j.events = append(j.events, e)
	return nil
}

// ByToken returns the events for a token in append order.
func (j *MemJournal) ByToken(id asset.TokenID) ([]Event, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []Event
	for _, e := range j.events {
		if e.Token == id {
			if e.Amount != nil {
				e.Amount = e.Amount.Clone()
			}
			out = append(out, e)
		}
	}
	return out, nil
}

// Close is a no-op for the in-memory journal.
func (j *MemJournal) Close() error { return nil }

func checkEvent(e *Event) error {
	if e.ID == "" {
		return ErrMissingID
	}
	if e.Kind == "" {
		return ErrMissingKind
	}
	return nil
}
