package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/holiman/uint256"
	_ "modernc.org/sqlite"

	"github.com/canvasorg/libcanvas-go/asset"
)

// SQLiteJournal persists events in a SQLite database. Append order is
// preserved by rowid.
type SQLiteJournal struct {
	db *sql.DB
}

// Compile-time interface check.
var _ Journal = (*SQLiteJournal)(nil)

// OpenSQLiteJournal opens or creates the journal database at path.
// ":memory:" yields a private in-memory database.
func OpenSQLiteJournal(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	j := &SQLiteJournal{db: db}
	if err := j.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal: migrate: %w", err)
	}
	return j, nil
}

// migrate creates the schema if it does not exist.
func (j *SQLiteJournal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id           TEXT PRIMARY KEY,
		token_id     INTEGER NOT NULL,
		kind         TEXT NOT NULL,
		actor        TEXT NOT NULL,
		counterparty TEXT NOT NULL,
		amount       TEXT NOT NULL,
		at           TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_token ON events(token_id);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (j *SQLiteJournal) Close() error { return j.db.Close() }

// Append records an event.
func (j *SQLiteJournal) Append(e Event) error {
	if err := checkEvent(&e); err != nil {
		return err
	}

	amount := "0"
	if e.Amount != nil {
		amount = e.Amount.Dec()
	}

	_, err := j.db.Exec(
		`INSERT INTO events (id, token_id, kind, actor, counterparty, amount, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, uint32(e.Token), string(e.Kind), e.Actor.String(),
		e.Counterparty.String(), amount, e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("journal: append event: %w", err)
	}
	return nil
}

// ByToken returns the events for a token in append order.
func (j *SQLiteJournal) ByToken(id asset.TokenID) ([]Event, error) {
	rows, err := j.db.Query(
		`SELECT id, token_id, kind, actor, counterparty, amount, at
		 FROM events WHERE token_id = ? ORDER BY rowid`,
		uint32(id),
	)
	if err != nil {
		return nil, fmt.Errorf("journal: query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e            Event
			tokenID      uint32
			kind         string
			actor        string
			counterparty string
			amount       string
			at           string
		)
		if err := rows.Scan(&e.ID, &tokenID, &kind, &actor, &counterparty, &amount, &at); err != nil {
			return nil, fmt.Errorf("journal: scan event: %w", err)
		}

		e.Token = asset.TokenID(tokenID)
		e.Kind = Kind(kind)

		if e.Actor, err = asset.ParseAccountID(actor); err != nil {
			return nil, fmt.Errorf("%w: actor: %v", ErrInvalidEvent, err)
		}
		if e.Counterparty, err = asset.ParseAccountID(counterparty); err != nil {
			return nil, fmt.Errorf("%w: counterparty: %v", ErrInvalidEvent, err)
		}
		if e.Amount, err = uint256.FromDecimal(amount); err != nil {
			return nil, fmt.Errorf("%w: amount %q: %v", ErrInvalidEvent, amount, err)
		}
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("%w: timestamp %q: %v", ErrInvalidEvent, at, err)
		}

		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: iterate events: %w", err)
	}
	return out, nil
}
