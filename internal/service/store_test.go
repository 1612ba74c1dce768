package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/careercoach-server/internal/model"
)

// memStore is a UserStore kept in a map, used by scenario tests.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[uuid.UUID]model.User)}
}

func (s *memStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.User{}, model.ErrDuplicateEmail
		}
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *memStore) UpdateOnboarding(_ context.Context, id uuid.UUID, o model.Onboarding) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	industry, level := o.Industry, o.ExperienceLevel
	u.Industry = &industry
	u.ExperienceLevel = &level
	s.users[id] = u
	return u, nil
}

func (s *memStore) Ping(context.Context) error { return nil }

func (s *memStore) delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
