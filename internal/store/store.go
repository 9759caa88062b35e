// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists traveller preferences, saved itineraries, and
// calendar submissions in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

const (
	defaultDataDir = "data"
	dbFile         = "itinerary.db"

	dateLayout = "2006-01-02"
)

// Store manages the itinerary SQLite database.
type Store struct {
	db      *sql.DB
	dataDir string

	// now is the clock used for timestamps and date estimates.
	now func() time.Time
}

// Open opens or creates the database at dataDir/itinerary.db and creates
// the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: dataDir, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DataDir returns the directory holding the database.
func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			user_id TEXT PRIMARY KEY,
			budget TEXT,
			travel_style TEXT,
			extra TEXT,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS itineraries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			destination TEXT NOT NULL,
			status TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			query TEXT,
			changes TEXT,
			plan_id TEXT,
			alternative INTEGER,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_itineraries_user_id ON itineraries(user_id)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			itinerary_id TEXT NOT NULL REFERENCES itineraries(id),
			event_id TEXT,
			summary TEXT NOT NULL,
			start TEXT NOT NULL,
			error TEXT,
			submitted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_itinerary_id ON submissions(itinerary_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
