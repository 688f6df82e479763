package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/service"
	mockSvc "authhub/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testIdleTimeout      = 30 * time.Minute
	testCheckInterval    = time.Minute
	testRefreshThreshold = 5 * time.Minute
)

var testEpoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStorage is an AuthStorage backed by a map.
type memoryStorage struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{items: make(map[string]string)}
}

func (s *memoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.items[key]

	return value, ok, nil
}

func (s *memoryStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value

	return nil
}

func (s *memoryStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)

	return nil
}

func (s *memoryStorage) has(key string) bool {
	_, ok, _ := s.GetItem(context.Background(), key)

	return ok
}

// recordingAudit collects audit entries written from background goroutines.
type recordingAudit struct {
	mu      sync.Mutex
	entries []entity.AuditEntry
}

func (a *recordingAudit) LogUserAction(_ context.Context, entry entity.AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = append(a.entries, entry)
}

func (a *recordingAudit) find(action string, status entity.AuditStatus) (entity.AuditEntry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, entry := range a.entries {
		if entry.Action == action && entry.Status == status {
			return entry, true
		}
	}

	return entity.AuditEntry{}, false
}

type eventRecorder struct {
	mu     sync.Mutex
	events []entity.AuthEvent
}

func (r *eventRecorder) record(event entity.AuthEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *eventRecorder) all() []entity.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.AuthEvent(nil), r.events...)
}

func (r *eventRecorder) ofType(eventType entity.AuthEventType) []entity.AuthEvent {
	var matched []entity.AuthEvent
	for _, event := range r.all() {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}

	return matched
}

func (r *eventRecorder) count(eventType entity.AuthEventType) int {
	return len(r.ofType(eventType))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	srv      *authService
	provider *mockSvc.MockAuthDataProvider
	storage  *memoryStorage
	audit    *recordingAudit
	clock    *clockwork.FakeClock
	events   *eventRecorder
}

func createTestAuthService(t *testing.T, opts ...func(*AuthServiceConfig)) authServiceFixtures {
	provider := mockSvc.NewMockAuthDataProvider(t)

	return buildAuthService(t, provider, provider, opts...)
}

func buildAuthService(t *testing.T, mocked *mockSvc.MockAuthDataProvider, provider service.AuthDataProvider, opts ...func(*AuthServiceConfig)) authServiceFixtures {
	t.Helper()

	storage := newMemoryStorage()
	audit := &recordingAudit{}
	fakeClock := clockwork.NewFakeClockAt(testEpoch)

	cfg := AuthServiceConfig{
		Provider:             provider,
		Storage:              storage,
		Audit:                audit,
		Clock:                fakeClock,
		Logger:               newDiscardLogger(),
		IdleTimeout:          testIdleTimeout,
		SessionCheckInterval: testCheckInterval,
		RefreshThreshold:     testRefreshThreshold,
		TransientRetries:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv := newAuthService(cfg)
	t.Cleanup(srv.Close)

	events := &eventRecorder{}
	srv.events.SubscribeAll(events.record)

	return authServiceFixtures{
		srv:      srv,
		provider: mocked,
		storage:  storage,
		audit:    audit,
		clock:    fakeClock,
		events:   events,
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Email:         "jane@example.com",
		Name:          "Jane",
		EmailVerified: true,
		Roles:         entity.Roles{entity.RoleUser},
	}
}

func newTestSession(user *entity.User, accessToken string, expiresAt time.Time) *service.ProviderSession {
	return &service.ProviderSession{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: "refresh-" + accessToken,
		ExpiresAt:    expiresAt,
	}
}

// loginAs signs the fixture in with sess.
func (f authServiceFixtures) loginAs(t *testing.T, sess *service.ProviderSession) {
	t.Helper()

	f.provider.EXPECT().Login(mock.Anything, mock.Anything).Return(sess, nil).Once()

	result := f.srv.Login(context.Background(), entity.LoginCredentials{Email: sess.User.Email, Password: "s3cret!"})
	require.True(t, result.Success, result.Error)
}

func signedTestToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

// waitForTimers blocks until exactly n timers are armed on clk. Timer
// callbacks of the fake clock run on their own goroutines.
func waitForTimers(t *testing.T, clk *clockwork.FakeClock, n int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), eventuallyWait)
	defer cancel()

	require.NoError(t, clk.BlockUntilContext(ctx, n), "waiting for %d timers", n)
}
