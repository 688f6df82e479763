package storage

import (
	"context"
	"sync"

	"authhub/internal/domain/service"
)

// memoryFactory keeps every client session's items in one process-local map.
// Items do not survive a restart and are not shared between replicas.
type memoryFactory struct {
	items sync.Map // namespaced key -> string
}

// NewMemoryFactory creates an in-process AuthStorageFactory.
func NewMemoryFactory() service.AuthStorageFactory {
	return &memoryFactory{}
}

func (f *memoryFactory) ForSession(sessionID string) service.AuthStorage {
	return &memoryStorage{items: &f.items, prefix: sessionID + "\x00"}
}

type memoryStorage struct {
	items  *sync.Map
	prefix string
}

func (s *memoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	value, ok := s.items.Load(s.prefix + key)
	if !ok {
		return "", false, nil
	}

	return value.(string), true, nil
}

func (s *memoryStorage) SetItem(_ context.Context, key, value string) error {
	s.items.Store(s.prefix+key, value)

	return nil
}

func (s *memoryStorage) RemoveItem(_ context.Context, key string) error {
	s.items.Delete(s.prefix + key)

	return nil
}
