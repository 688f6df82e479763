package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"authhub/internal/domain/service"
	"authhub/internal/infra/storage"
	"authhub/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuth implements the parts of AuthUsecase the registry relies on.
type stubAuth struct {
	usecase.AuthUsecase

	storage       service.AuthStorage
	authenticated atomic.Bool
	token         atomic.Value
	restores      atomic.Int32
	closed        atomic.Bool
}

func (s *stubAuth) Restore(ctx context.Context) bool {
	s.restores.Add(1)
	if _, ok, _ := s.storage.GetItem(ctx, service.StorageKeyAuthToken); ok {
		return s.authenticated.Load()
	}

	return false
}

func (s *stubAuth) IsAuthenticated() bool { return s.authenticated.Load() }

func (s *stubAuth) GetToken() string {
	token, _ := s.token.Load().(string)

	return token
}

func (s *stubAuth) Close() { s.closed.Store(true) }

type registryFixture struct {
	registry *sessionRegistry
	clock    *clockwork.FakeClock
	storage  service.AuthStorageFactory

	mu        sync.Mutex
	stubs     []*stubAuth
	restoreOK bool
}

func newTestRegistry() *registryFixture {
	f := &registryFixture{
		clock:     clockwork.NewFakeClockAt(testEpoch),
		storage:   storage.NewMemoryFactory(),
		restoreOK: true,
	}
	factory := func(st service.AuthStorage) usecase.AuthUsecase {
		stub := &stubAuth{storage: st}
		f.mu.Lock()
		stub.authenticated.Store(f.restoreOK)
		f.stubs = append(f.stubs, stub)
		f.mu.Unlock()

		return stub
	}
	f.registry = newSessionRegistry(factory, f.storage, f.clock, testIdleTimeout, newDiscardLogger())

	return f
}

func (f *registryFixture) create(t *testing.T) (string, *stubAuth) {
	t.Helper()

	id, auth, err := f.registry.Create(context.Background())
	require.NoError(t, err)
	stub, ok := auth.(*stubAuth)
	require.True(t, ok)
	stub.authenticated.Store(false)

	return id, stub
}

func (f *registryFixture) persist(t *testing.T, sessionID, token string) {
	t.Helper()

	require.NoError(t, f.storage.ForSession(sessionID).SetItem(context.Background(), service.StorageKeyAuthToken, token))
}

func TestSessionRegistry_Create(t *testing.T) {
	f := newTestRegistry()

	first, firstAuth := f.create(t)
	second, secondAuth := f.create(t)

	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)
	assert.NotSame(t, firstAuth, secondAuth)
	assert.Equal(t, 2, f.registry.Len())

	auth, ok := f.registry.Lookup(first)
	require.True(t, ok)
	assert.Same(t, firstAuth, auth)
}

func TestSessionRegistry_Resume(t *testing.T) {
	t.Run("unknown id without persisted session", func(t *testing.T) {
		f := newTestRegistry()

		auth, ok := f.registry.Resume(context.Background(), "attacker-chosen-id")

		assert.False(t, ok)
		assert.Nil(t, auth)
		assert.Empty(t, f.stubs)
		assert.Zero(t, f.registry.Len())
	})

	t.Run("registered id", func(t *testing.T) {
		f := newTestRegistry()
		id, stub := f.create(t)

		auth, ok := f.registry.Resume(context.Background(), id)

		require.True(t, ok)
		assert.Same(t, stub, auth)
		assert.Zero(t, stub.restores.Load())
	})

	t.Run("persisted session is restored", func(t *testing.T) {
		f := newTestRegistry()
		f.persist(t, "persisted-id", "access-1")

		auth, ok := f.registry.Resume(context.Background(), "persisted-id")

		require.True(t, ok)
		require.Len(t, f.stubs, 1)
		assert.Same(t, f.stubs[0], auth)
		assert.Equal(t, int32(1), f.stubs[0].restores.Load())
		assert.Equal(t, 1, f.registry.Len())

		again, ok := f.registry.Resume(context.Background(), "persisted-id")
		require.True(t, ok)
		assert.Same(t, auth, again)
		assert.Len(t, f.stubs, 1)
	})

	t.Run("stale persisted session is discarded", func(t *testing.T) {
		f := newTestRegistry()
		f.restoreOK = false
		f.persist(t, "stale-id", "expired")

		auth, ok := f.registry.Resume(context.Background(), "stale-id")

		assert.False(t, ok)
		assert.Nil(t, auth)
		require.Len(t, f.stubs, 1)
		assert.True(t, f.stubs[0].closed.Load())
		assert.Zero(t, f.registry.Len())
	})
}

func TestSessionRegistry_Rotate(t *testing.T) {
	t.Run("moves entry and storage to a fresh id", func(t *testing.T) {
		f := newTestRegistry()
		id, stub := f.create(t)
		require.NoError(t, stub.storage.SetItem(context.Background(), service.StorageKeyAuthToken, "access-1"))

		rotated, err := f.registry.Rotate(context.Background(), id)
		require.NoError(t, err)

		assert.NotEqual(t, id, rotated)
		assert.Equal(t, 1, f.registry.Len())
		_, ok := f.registry.Lookup(id)
		assert.False(t, ok)
		auth, ok := f.registry.Lookup(rotated)
		require.True(t, ok)
		assert.Same(t, stub, auth)
		assert.False(t, stub.closed.Load())

		_, ok, err = f.storage.ForSession(id).GetItem(context.Background(), service.StorageKeyAuthToken)
		require.NoError(t, err)
		assert.False(t, ok)
		token, ok, err := f.storage.ForSession(rotated).GetItem(context.Background(), service.StorageKeyAuthToken)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "access-1", token)

		require.NoError(t, stub.storage.SetItem(context.Background(), service.StorageKeyLastActivity, "later"))
		value, ok, err := f.storage.ForSession(rotated).GetItem(context.Background(), service.StorageKeyLastActivity)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "later", value)
	})

	t.Run("old id cannot be resumed from storage", func(t *testing.T) {
		f := newTestRegistry()
		id, stub := f.create(t)
		require.NoError(t, stub.storage.SetItem(context.Background(), service.StorageKeyAuthToken, "access-1"))

		_, err := f.registry.Rotate(context.Background(), id)
		require.NoError(t, err)

		_, ok := f.registry.Resume(context.Background(), id)
		assert.False(t, ok)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newTestRegistry()

		_, err := f.registry.Rotate(context.Background(), "missing")

		require.Error(t, err)
		assert.Zero(t, f.registry.Len())
	})
}

func TestSessionRegistry_LookupAndRemove(t *testing.T) {
	f := newTestRegistry()

	_, ok := f.registry.Lookup("sid-1")
	assert.False(t, ok)
	assert.Empty(t, f.stubs)

	id, stub := f.create(t)
	auth, ok := f.registry.Lookup(id)
	require.True(t, ok)
	assert.NotNil(t, auth)

	f.registry.Remove(id)
	f.registry.Remove(id)

	assert.True(t, stub.closed.Load())
	assert.Zero(t, f.registry.Len())
}

func TestSessionRegistry_Sweep(t *testing.T) {
	f := newTestRegistry()

	_, signedOut := f.create(t)
	_, signedIn := f.create(t)
	_, mfaPending := f.create(t)
	signedIn.authenticated.Store(true)
	mfaPending.token.Store("mfa-token")

	f.clock.Advance(anonymousSessionTTL - time.Second)
	assert.Zero(t, f.registry.Sweep(context.Background()))

	_, recent := f.create(t)
	f.clock.Advance(time.Second)

	assert.Equal(t, 1, f.registry.Sweep(context.Background()))
	assert.True(t, signedOut.closed.Load())
	assert.False(t, signedIn.closed.Load())
	assert.False(t, mfaPending.closed.Load())
	assert.False(t, recent.closed.Load())
	assert.Equal(t, 3, f.registry.Len())
}

func TestSessionRegistry_AnonymousTTLNeverExceedsIdleTimeout(t *testing.T) {
	registry := newSessionRegistry(nil, storage.NewMemoryFactory(), clockwork.NewFakeClockAt(testEpoch), time.Minute, newDiscardLogger())
	assert.Equal(t, time.Minute, registry.anonymousTTL)

	registry = newSessionRegistry(nil, storage.NewMemoryFactory(), clockwork.NewFakeClockAt(testEpoch), testIdleTimeout, newDiscardLogger())
	assert.Equal(t, anonymousSessionTTL, registry.anonymousTTL)
}

func TestSessionRegistry_CloseAll(t *testing.T) {
	f := newTestRegistry()
	f.create(t)
	f.create(t)

	f.registry.CloseAll()

	assert.Zero(t, f.registry.Len())
	for i, stub := range f.stubs {
		assert.True(t, stub.closed.Load(), i)
	}
}
