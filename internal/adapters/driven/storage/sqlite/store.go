package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// DatabaseFile is the file name of the records database inside the data directory.
const DatabaseFile = "barangay.db"

// dsnParams enables WAL, waits on locks instead of failing, turns on foreign keys
// and makes every transaction take the write lock up front.
const dsnParams = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_txlock=immediate"

// Store is the SQLite database shared by all repositories.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultDataDir returns ~/.barangay/data.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".barangay", "data"), nil
}

// NewStore opens the records database in dataDir and brings its schema up to date.
// If dataDir is empty, DefaultDataDir is used. A schema failure is returned as a
// domain.ErrSchema error and the database is closed.
func NewStore(ctx context.Context, dataDir string) (*Store, error) {
	if dataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", dbPath+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("opened records database at %s", dbPath)

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ResidentStore returns the resident repository.
func (s *Store) ResidentStore() driven.ResidentStore {
	return &residentStore{store: s}
}

// MapPinStore returns the map pin repository.
func (s *Store) MapPinStore() driven.MapPinStore {
	return &mapPinStore{store: s}
}

// OfficialStore returns the official repository.
func (s *Store) OfficialStore() driven.OfficialStore {
	return &officialStore{store: s}
}

// BlotterStore returns the blotter repository.
func (s *Store) BlotterStore() driven.BlotterStore {
	return &blotterStore{store: s}
}

// LedgerStore returns the ledger repository.
func (s *Store) LedgerStore() driven.LedgerStore {
	return &ledgerStore{store: s}
}

// EventStore returns the event repository.
func (s *Store) EventStore() driven.EventStore {
	return &eventStore{store: s}
}

// SettingsStore returns the settings repository.
func (s *Store) SettingsStore() driven.SettingsStore {
	return &settingsStore{store: s}
}

// HouseholdQuery returns the read-only household views.
func (s *Store) HouseholdQuery() driven.HouseholdQuery {
	return &householdQuery{store: s}
}
