package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStateRepository implements StateRepository using MySQL. Meant for
// deployments that already run a MySQL server and want the marketplace
// state to live alongside it.
type MySQLStateRepository struct {
	db *sql.DB
}

// NewMySQLStateRepository creates a new MySQL state repository.
func NewMySQLStateRepository(dsn string) (*MySQLStateRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS app_state (
		state_key VARCHAR(191) PRIMARY KEY,
		state_value MEDIUMTEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	log.Println("[MySQLStateRepository] Initialized")
	return &MySQLStateRepository{db: db}, nil
}

// Get retrieves the value stored under key, or nil if the key is absent.
func (r *MySQLStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT state_value FROM app_state WHERE state_key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get state %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores value under key, replacing any previous value.
func (r *MySQLStateRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_state (state_key, state_value, updated_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			state_value = VALUES(state_value),
			updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (r *MySQLStateRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE state_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (r *MySQLStateRepository) Close() error {
	return r.db.Close()
}

// Ensure MySQLStateRepository implements StateRepository
var _ StateRepository = (*MySQLStateRepository)(nil)
