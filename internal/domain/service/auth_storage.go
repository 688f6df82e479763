package service

import "context"

// Keys written by the Auth Service into AuthStorage.
const (
	StorageKeyAuthToken    = "auth_token"
	StorageKeyLastActivity = "last_activity"
)

// AuthStorage is a small string key/value store scoped to one client session.
// Reads observe prior writes; removing a missing key is not an error.
type AuthStorage interface {
	// GetItem returns ok=false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// AuthStorageFactory hands out storage namespaced to a client session id.
type AuthStorageFactory interface {
	ForSession(sessionID string) AuthStorage
}
