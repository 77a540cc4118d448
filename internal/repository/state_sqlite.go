package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteStateRepository implements StateRepository using an embedded SQLite
// file. This is the default backend: state survives restarts on the local
// machine without any external service.
type SQLiteStateRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStateRepository creates a new SQLite state repository.
// dbPath is the path to the SQLite database file (e.g., "./data/marketplace.db")
func NewSQLiteStateRepository(dbPath string) (*SQLiteStateRepository, error) {
	// Open with WAL mode and other optimizations
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite connection pool settings
	db.SetMaxOpenConns(1) // SQLite only supports 1 writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0) // Keep connection alive

	if err := createStateTable(db); err != nil {
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	log.Printf("[SQLiteStateRepository] Initialized with database: %s", dbPath)
	return &SQLiteStateRepository{db: db}, nil
}

// createStateTable creates the key/value state table.
func createStateTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS app_state (
		state_key TEXT PRIMARY KEY,
		state_value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	_, err := db.Exec(query)
	return err
}

// Get retrieves the value stored under key, or nil if the key is absent.
func (r *SQLiteStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT state_value FROM app_state WHERE state_key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get state %q: %w", key, err)
	}

	return []byte(value), nil
}

// Set stores value under key, replacing any previous value.
func (r *SQLiteStateRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO app_state (state_key, state_value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(state_key) DO UPDATE SET
			state_value = excluded.state_value,
			updated_at = datetime('now')`

	_, err := r.db.ExecContext(ctx, query, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (r *SQLiteStateRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE state_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (r *SQLiteStateRepository) Close() error {
	return r.db.Close()
}

// Ensure SQLiteStateRepository implements StateRepository
var _ StateRepository = (*SQLiteStateRepository)(nil)
