package storage

import (
	"context"
	"testing"
	"time"

	"authhub/config"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// fakeRedis answers the commands redisStorage issues from a map.
type fakeRedis struct {
	items map[string]string
	ttls  map[string]time.Duration
	err   error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{items: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.items[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.items[key] = value.(string)
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, key := range keys {
		if _, ok := f.items[key]; ok {
			delete(f.items, key)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

func backends() map[string]func() service.AuthStorageFactory {
	return map[string]func() service.AuthStorageFactory{
		"memory": NewMemoryFactory,
		"redis": func() service.AuthStorageFactory {
			return newRedisFactory(newFakeRedis(), defaultKeyPrefix, time.Hour)
		},
	}
}

func TestAuthStorage_ReadYourWrites(t *testing.T) {
	for name, newFactory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			storage := newFactory().ForSession("sid-1")

			_, ok, err := storage.GetItem(ctx, service.StorageKeyAuthToken)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, storage.SetItem(ctx, service.StorageKeyAuthToken, "token-1"))
			value, ok, err := storage.GetItem(ctx, service.StorageKeyAuthToken)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "token-1", value)

			require.NoError(t, storage.SetItem(ctx, service.StorageKeyAuthToken, "token-2"))
			value, _, _ = storage.GetItem(ctx, service.StorageKeyAuthToken)
			assert.Equal(t, "token-2", value)

			require.NoError(t, storage.RemoveItem(ctx, service.StorageKeyAuthToken))
			_, ok, _ = storage.GetItem(ctx, service.StorageKeyAuthToken)
			assert.False(t, ok)

			// Removing a missing key is not an error.
			assert.NoError(t, storage.RemoveItem(ctx, service.StorageKeyAuthToken))
		})
	}
}

func TestAuthStorage_SessionsAreIsolated(t *testing.T) {
	for name, newFactory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			factory := newFactory()
			first := factory.ForSession("sid-1")
			second := factory.ForSession("sid-2")

			require.NoError(t, first.SetItem(ctx, service.StorageKeyLastActivity, "100"))

			_, ok, err := second.GetItem(ctx, service.StorageKeyLastActivity)
			require.NoError(t, err)
			assert.False(t, ok)

			// A new handle for the same session sees earlier writes.
			value, ok, err := factory.ForSession("sid-1").GetItem(ctx, service.StorageKeyLastActivity)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "100", value)
		})
	}
}

func TestRedisStorage_KeysAndTTL(t *testing.T) {
	client := newFakeRedis()
	storage := newRedisFactory(client, "app:", 7*24*time.Hour).ForSession("sid-1")

	require.NoError(t, storage.SetItem(context.Background(), service.StorageKeyAuthToken, "token"))

	assert.Equal(t, "token", client.items["app:session:sid-1:auth_token"])
	assert.Equal(t, 7*24*time.Hour, client.ttls["app:session:sid-1:auth_token"])
}

func TestRedisStorage_Errors(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")
	storage := newRedisFactory(client, defaultKeyPrefix, time.Hour).ForSession("sid-1")
	ctx := context.Background()

	_, ok, err := storage.GetItem(ctx, service.StorageKeyAuthToken)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
	assert.Error(t, storage.SetItem(ctx, service.StorageKeyAuthToken, "token"))
	assert.Error(t, storage.RemoveItem(ctx, service.StorageKeyAuthToken))
}

func TestNewRedisFactory_DefaultPrefix(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenLifetimeDays: 1}}

	factory := NewRedisFactory(nil, cfg).(*redisFactory)

	assert.Equal(t, defaultKeyPrefix, factory.prefix)
	assert.Equal(t, 24*time.Hour, factory.ttl)
}

func TestModule_SelectsDriver(t *testing.T) {
	var factory service.AuthStorageFactory
	app := fx.New(
		fx.NopLogger,
		Module(&config.Config{Storage: &config.StorageConfig{Driver: config.StorageMemory}}),
		fx.Populate(&factory),
	)
	require.NoError(t, app.Err())

	_, isMemory := factory.(*memoryFactory)
	assert.True(t, isMemory)
}
