// Package memory keeps OAuth state values in process memory.
package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dtroode/careercoach-server/internal/model"
)

var _ model.StateStore = (*StateStore)(nil)

// StateStore is a single-process StateStore backed by go-cache.
type StateStore struct {
	c *gocache.Cache
}

// NewStateStore creates a StateStore whose entries default to model.StateTTL.
func NewStateStore() *StateStore {
	return &StateStore{c: gocache.New(model.StateTTL, time.Minute)}
}

// Put stores state until ttl elapses.
func (s *StateStore) Put(_ context.Context, state string, ttl time.Duration) error {
	s.c.Set(state, struct{}{}, ttl)
	return nil
}

// Consume reports whether state was present and removes it.
func (s *StateStore) Consume(_ context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	if _, ok := s.c.Get(state); !ok {
		return false, nil
	}
	// Add fails when the key exists, so only one concurrent caller wins.
	if err := s.c.Add(state+":used", struct{}{}, model.StateTTL); err != nil {
		return false, nil
	}
	s.c.Delete(state)
	return true, nil
}
