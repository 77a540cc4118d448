package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStateRepository implements StateRepository using Redis. Values are
// stored without TTL; the marketplace state is authoritative, not a cache.
type RedisStateRepository struct {
	client *redis.Client
	prefix string
}

// RedisStateConfig holds connection settings for the Redis backend.
type RedisStateConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStateRepository creates a new Redis state repository and verifies
// the connection with a ping.
func NewRedisStateRepository(cfg RedisStateConfig) (*RedisStateRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Printf("[RedisStateRepository] Initialized at %s", cfg.Addr)
	return &RedisStateRepository{client: client, prefix: cfg.Prefix}, nil
}

// Get retrieves the value stored under key, or nil if the key is absent.
func (r *RedisStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get state %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *RedisStateRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (r *RedisStateRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisStateRepository) Close() error {
	return r.client.Close()
}

// Ensure RedisStateRepository implements StateRepository
var _ StateRepository = (*RedisStateRepository)(nil)
