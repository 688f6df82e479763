package impl

import (
	"context"
	"sync"

	"authhub/internal/domain/service"
	"authhub/internal/errors"
)

// persistedKeys are the storage keys written for a client session.
var persistedKeys = []string{service.StorageKeyAuthToken, service.StorageKeyLastActivity}

// sessionStorage is the AuthStorage of one registry entry. It can be moved to
// the namespace of another client session id.
type sessionStorage struct {
	factory service.AuthStorageFactory

	mu      sync.RWMutex
	current service.AuthStorage
}

func newSessionStorage(factory service.AuthStorageFactory, sessionID string) *sessionStorage {
	return &sessionStorage{factory: factory, current: factory.ForSession(sessionID)}
}

func (s *sessionStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.GetItem(ctx, key)
}

func (s *sessionStorage) SetItem(ctx context.Context, key, value string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.SetItem(ctx, key, value)
}

func (s *sessionStorage) RemoveItem(ctx context.Context, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.RemoveItem(ctx, key)
}

// moveTo copies the persisted keys into the namespace of sessionID and
// removes them from the old one. Later writes go to the new namespace even
// when copying failed.
func (s *sessionStorage) moveTo(ctx context.Context, sessionID string) error {
	next := s.factory.ForSession(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, key := range persistedKeys {
		value, ok, err := s.current.GetItem(ctx, key)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "read %s", key))

			continue
		}
		if !ok {
			continue
		}
		if err := next.SetItem(ctx, key, value); err != nil {
			errs = append(errs, errors.Wrapf(err, "write %s", key))

			continue
		}
		if err := s.current.RemoveItem(ctx, key); err != nil {
			errs = append(errs, errors.Wrapf(err, "remove %s", key))
		}
	}
	s.current = next

	return errors.Join(errs...)
}
