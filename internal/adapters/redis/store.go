// Package redis provides a ConfigStore and a DistributedLocker backed by
// Redis, for deployments running more than one configurator replica.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/showroomhq/showroom/pkg/domain"
)

// Store implements ports.ConfigStore using Redis. Each configuration is a
// JSON value under a prefixed key, with a ZSET index for listing.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets the expiration for stored configurations.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "showroom:config:",
		ttl:    0, // no expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(vehicleID string) string {
	return s.prefix + vehicleID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the state and updates the index in one pipeline.
func (s *Store) Save(ctx context.Context, vehicleID string, state domain.ConfigurationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(vehicleID), data, s.ttl)

	// Index score is the expiry time so List can prune lazily. With no
	// TTL, park the score far in the future.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: vehicleID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the state. A value that fails to decode counts as
// absent, matching the fail-closed read policy of the other stores.
func (s *Store) Load(ctx context.Context, vehicleID string) (domain.ConfigurationState, error) {
	val, err := s.client.Get(ctx, s.key(vehicleID)).Result()
	if err != nil {
		if err == backend.Nil {
			return domain.ConfigurationState{}, domain.ErrConfigurationNotFound
		}
		return domain.ConfigurationState{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	var state domain.ConfigurationState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return domain.ConfigurationState{}, domain.ErrConfigurationNotFound
	}
	return state, nil
}

// Delete removes the configuration and its index entry.
func (s *Store) Delete(ctx context.Context, vehicleID string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(vehicleID))
	pipe.ZRem(ctx, s.indexKey(), vehicleID)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns stored vehicle ids, pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired configurations: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	return ids, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
