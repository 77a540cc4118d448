package repository

import "context"

// Storage keys for the marketplace state. Values are the JSON documents the
// stores persist verbatim on every mutation.
const (
	// KeyUsers holds the identity roster as a JSON array.
	KeyUsers = "users"
	// KeyCurrentUser holds the authenticated identity's id as a JSON
	// integer. The key is removed while the session is anonymous.
	KeyCurrentUser = "currentUserId"
	// KeyProducts holds the full listing catalog as a JSON array.
	KeyProducts = "products"
)

// StateRepository defines key/value access to persisted marketplace state.
// Backends are interchangeable; callers treat absence and corruption the
// same way (fall back to seed data) so Get reports absence as (nil, nil)
// rather than an error.
type StateRepository interface {
	// Get retrieves the value stored under key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close closes the repository connection.
	Close() error
}
