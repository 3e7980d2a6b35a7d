package market

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/canvasorg/libcanvas-go/config"
	"github.com/canvasorg/libcanvas-go/journal"
	"github.com/canvasorg/libcanvas-go/ledger"
	"github.com/canvasorg/libcanvas-go/registry"
)

// ledgerDBName is the bbolt file holding tokens and artists.
const ledgerDBName = "canvas.db"

// Handle owns a market and the resources behind it.
type Handle struct {
	*Market
	db  *bbolt.DB
	log journal.Journal
}

// Open constructs a market from configuration. The bolt backend stores
// tokens and artists in one database under cfg.DataDir; the memory
// backend keeps everything in process. The journal is SQLite-backed when
// cfg.JournalPath is set, in-memory otherwise.
func Open(cfg config.Config) (*Handle, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	var (
		tokenStore  ledger.TokenStore
		artistStore registry.ArtistStore
		db          *bbolt.DB
	)

	switch cfg.Backend {
	case config.BackendBolt:
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			return nil, fmt.Errorf("market: create data directory: %w", err)
		}
		var err error
		db, err = bbolt.Open(filepath.Join(cfg.DataDir, ledgerDBName), 0600, nil)
		if err != nil {
			return nil, fmt.Errorf("market: open ledger database: %w", err)
		}
		if tokenStore, err = ledger.NewBoltTokenStore(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		if artistStore, err = registry.NewBoltArtistStore(db); err != nil {
			_ = db.Close()
			return nil, err
		}

	case config.BackendMemory:
		tokenStore = ledger.NewMemTokenStore()
		artistStore = registry.NewMemArtistStore()
	}

	var log journal.Journal
	if cfg.JournalPath != "" {
		var err error
		log, err = journal.OpenSQLiteJournal(cfg.JournalPath)
		if err != nil {
			if db != nil {
				_ = db.Close()
			}
			return nil, err
		}
	} else {
		log = journal.NewMemJournal()
	}

	return &Handle{
		Market: New(ledger.NewLedger(tokenStore), registry.NewRegistry(artistStore), log),
		db:     db,
		log:    log,
	}, nil
}

// Close releases the journal and, for the bolt backend, the database.
func (h *Handle) Close() error {
	err := h.log.Close()
	if h.db != nil {
		if dbErr := h.db.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}
