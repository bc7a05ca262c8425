package memory

import (
	"context"
	"sync"

	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/storage"
)

type usersTable struct {
	mu   sync.RWMutex
	rows []models.User
	byID map[int64]int
}

// CreateUser assigns an id and appends the user, rejecting emails held by an enabled user.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	if s.users.emailTaken(user.Email, 0) {
		return models.User{}, storage.ErrAlreadyExists
	}

	user.ID = s.NextID(storage.KindUser)
	s.users.byID[user.ID] = len(s.users.rows)
	s.users.rows = append(s.users.rows, user)
	return user, nil
}

// FindUserByID fetches an enabled user.
func (s *Store) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.LookupUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if user.IsDisabled {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// FindUserByEmail fetches the enabled user holding email. Matching is exact.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()

	for _, user := range s.users.rows {
		if !user.IsDisabled && user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// LookupUser fetches a user whether or not it is disabled.
func (s *Store) LookupUser(ctx context.Context, id int64) (models.User, error) {
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()

	idx, ok := s.users.byID[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return s.users.rows[idx], nil
}

// UpdateUser applies mutate to a copy of the enabled user and saves it if mutate succeeds.
func (s *Store) UpdateUser(ctx context.Context, id int64, mutate func(*models.User) error) (models.User, error) {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	idx, ok := s.users.byID[id]
	if !ok || s.users.rows[idx].IsDisabled {
		return models.User{}, storage.ErrNotFound
	}

	updated := s.users.rows[idx]
	if err := mutate(&updated); err != nil {
		return models.User{}, err
	}
	updated.ID = id
	if updated.Email != s.users.rows[idx].Email && s.users.emailTaken(updated.Email, id) {
		return models.User{}, storage.ErrAlreadyExists
	}

	s.users.rows[idx] = updated
	return updated, nil
}

// DisableUser soft-deletes an enabled user.
func (s *Store) DisableUser(ctx context.Context, id int64) error {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	idx, ok := s.users.byID[id]
	if !ok || s.users.rows[idx].IsDisabled {
		return storage.ErrNotFound
	}
	s.users.rows[idx].IsDisabled = true
	return nil
}

// emailTaken must be called with mu held.
func (t *usersTable) emailTaken(email string, exceptID int64) bool {
	for _, user := range t.rows {
		if user.ID != exceptID && !user.IsDisabled && user.Email == email {
			return true
		}
	}
	return false
}
