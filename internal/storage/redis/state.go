// Package redis keeps OAuth state values in redis so that any replica can
// complete a redirect started by another.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/dtroode/careercoach-server/internal/model"
)

const keyPrefix = "oauth:state:"

var _ model.StateStore = (*StateStore)(nil)

// StateStore is a StateStore backed by redis.
type StateStore struct {
	client rdb.Cmdable
}

// NewStateStore creates a StateStore over an existing redis client.
func NewStateStore(client rdb.Cmdable) *StateStore {
	return &StateStore{client: client}
}

// NewClient opens a redis client and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*rdb.Client, error) {
	client := rdb.NewClient(&rdb.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Put stores state until ttl elapses.
func (s *StateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+state, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store oauth state: %w", err)
	}
	return nil
}

// Consume reports whether state was present and removes it atomically.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	err := s.client.GetDel(ctx, keyPrefix+state).Err()
	if errors.Is(err, rdb.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return true, nil
}
