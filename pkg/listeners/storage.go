package listeners

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the sqlite driver
)

// Store persists how far each listener has progressed, so restarts resume
// after the last handled resource instead of replaying everything.
type Store interface {
	// Load returns the last handled resource number for the named
	// listener. ok is false when the listener has never checkpointed.
	Load(ctx context.Context, name string) (last int, ok bool, err error)

	// Save checkpoints the last handled resource number.
	Save(ctx context.Context, name string, last int) error

	Close() error
}

// SQLiteStore keeps listener checkpoints in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the checkpoint database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening checkpoint database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS listener_progress (
		name TEXT PRIMARY KEY,
		last_resource INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating checkpoint table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load implements Store.Load.
func (s *SQLiteStore) Load(ctx context.Context, name string) (int, bool, error) {
	var last int

	err := s.db.QueryRowContext(ctx,
		`SELECT last_resource FROM listener_progress WHERE name = ?`, name).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("loading checkpoint for %q: %w", name, err)
	}

	return last, true, nil
}

// Save implements Store.Save.
func (s *SQLiteStore) Save(ctx context.Context, name string, last int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO listener_progress (name, last_resource, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET last_resource = excluded.last_resource, updated_at = excluded.updated_at`,
		name, last, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving checkpoint for %q: %w", name, err)
	}

	return nil
}

// Close implements Store.Close.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing checkpoint database: %w", err)
	}

	return nil
}

// MemoryStore keeps checkpoints in memory. Progress is lost on restart, so
// it suits tests and one-shot runs only.
type MemoryStore struct {
	checkpoints map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{checkpoints: make(map[string]int)}
}

// Load implements Store.Load.
func (s *MemoryStore) Load(_ context.Context, name string) (int, bool, error) {
	last, ok := s.checkpoints[name]

	return last, ok, nil
}

// Save implements Store.Save.
func (s *MemoryStore) Save(_ context.Context, name string, last int) error {
	s.checkpoints[name] = last

	return nil
}

// Close implements Store.Close.
func (s *MemoryStore) Close() error {
	return nil
}
