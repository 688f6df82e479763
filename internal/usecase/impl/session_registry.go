package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authhub/config"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/usecase"
	"authhub/internal/util"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

const (
	sessionIDBytes = 32

	// anonymousSessionTTL bounds how long a session that is neither signed in
	// nor waiting for a second factor stays registered without requests. It
	// matches oauthStateTTL so a pending OAuth redirect can still complete.
	anonymousSessionTTL = oauthStateTTL
)

// AuthServiceFactory builds the orchestrator of one client session on top of
// the session's storage.
type AuthServiceFactory func(storage service.AuthStorage) usecase.AuthUsecase

// AuthServiceFactoryParams holds dependencies shared by every session, injected by Fx.
type AuthServiceFactoryParams struct {
	fx.In

	Config   *config.Config
	Provider service.AuthDataProvider
	Audit    service.AuditLogger
	Clock    clockwork.Clock
	Logger   *slog.Logger
}

// NewAuthServiceFactory binds the dependencies shared by every session.
func NewAuthServiceFactory(params AuthServiceFactoryParams) AuthServiceFactory {
	auth := params.Config.Auth

	return func(storage service.AuthStorage) usecase.AuthUsecase {
		return NewAuthService(AuthServiceConfig{
			Provider:             params.Provider,
			Storage:              storage,
			Audit:                params.Audit,
			Clock:                params.Clock,
			Logger:               params.Logger,
			IdleTimeout:          auth.IdleTimeout,
			SessionCheckInterval: auth.SessionCheckInterval,
			RefreshThreshold:     auth.RefreshThreshold,
			TransientRetries:     auth.Retries(),
			RetryDelay:           auth.RetryDelay,
		})
	}
}

type registryEntry struct {
	auth     usecase.AuthUsecase
	storage  *sessionStorage
	lastSeen time.Time
}

// sessionRegistry owns every live orchestrator of the process. Session ids are
// only ever minted here.
type sessionRegistry struct {
	factory      AuthServiceFactory
	storage      service.AuthStorageFactory
	clock        clockwork.Clock
	anonymousTTL time.Duration
	logger       *slog.Logger

	mu      sync.Mutex
	entries map[string]*registryEntry
}

// SessionRegistryParams holds dependencies for the registry, injected by Fx.
type SessionRegistryParams struct {
	fx.In

	Lc      fx.Lifecycle
	Factory AuthServiceFactory
	Storage service.AuthStorageFactory
	Config  *config.Config
	Clock   clockwork.Clock
	Logger  *slog.Logger
}

// NewSessionRegistry creates the registry and ties its sweeper to the app lifecycle.
func NewSessionRegistry(params SessionRegistryParams) usecase.SessionRegistry {
	registry := newSessionRegistry(params.Factory, params.Storage, params.Clock, params.Config.Auth.IdleTimeout, params.Logger)

	stop := make(chan struct{})
	swept := make(chan struct{})
	interval := params.Config.Auth.SessionCheckInterval

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(swept)
				registry.sweepLoop(interval, stop)
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			<-swept
			registry.CloseAll()

			return nil
		},
	})

	return registry
}

func newSessionRegistry(factory AuthServiceFactory, storage service.AuthStorageFactory, clk clockwork.Clock, idleTimeout time.Duration, logger *slog.Logger) *sessionRegistry {
	return &sessionRegistry{
		factory:      factory,
		storage:      storage,
		clock:        clk,
		anonymousTTL: min(idleTimeout, anonymousSessionTTL),
		logger:       logger,
		entries:      make(map[string]*registryEntry),
	}
}

func (r *sessionRegistry) newEntry(sessionID string) *registryEntry {
	storage := newSessionStorage(r.storage, sessionID)

	return &registryEntry{auth: r.factory(storage), storage: storage, lastSeen: r.clock.Now()}
}

func (r *sessionRegistry) Create(context.Context) (string, usecase.AuthUsecase, error) {
	sessionID, err := util.RandomToken(sessionIDBytes)
	if err != nil {
		return "", nil, err
	}

	entry := r.newEntry(sessionID)

	r.mu.Lock()
	r.entries[sessionID] = entry
	r.mu.Unlock()

	return sessionID, entry.auth, nil
}

func (r *sessionRegistry) Resume(ctx context.Context, sessionID string) (usecase.AuthUsecase, bool) {
	if auth, ok := r.Lookup(sessionID); ok {
		return auth, true
	}

	_, ok, err := r.storage.ForSession(sessionID).GetItem(ctx, service.StorageKeyAuthToken)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to read persisted session", slog.Any("error", err))

		return nil, false
	}
	if !ok {
		return nil, false
	}

	entry := r.newEntry(sessionID)
	if !entry.auth.Restore(ctx) {
		entry.auth.Close()

		return nil, false
	}

	r.mu.Lock()
	if existing, ok := r.entries[sessionID]; ok {
		existing.lastSeen = r.clock.Now()
		r.mu.Unlock()
		entry.auth.Close()

		return existing.auth, true
	}
	r.entries[sessionID] = entry
	r.mu.Unlock()

	return entry.auth, true
}

func (r *sessionRegistry) Lookup(sessionID string) (usecase.AuthUsecase, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}
	entry.lastSeen = r.clock.Now()

	return entry.auth, true
}

func (r *sessionRegistry) Rotate(ctx context.Context, sessionID string) (string, error) {
	rotated, err := util.RandomToken(sessionIDBytes)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	entry, ok := r.entries[sessionID]
	if !ok {
		r.mu.Unlock()

		return "", errors.New("client session is not registered")
	}
	delete(r.entries, sessionID)
	entry.lastSeen = r.clock.Now()
	r.entries[rotated] = entry
	r.mu.Unlock()

	if err := entry.storage.moveTo(ctx, rotated); err != nil {
		r.logger.WarnContext(ctx, "Failed to move persisted session to the rotated id", slog.Any("error", err))
	}

	return rotated, nil
}

func (r *sessionRegistry) Remove(sessionID string) {
	r.mu.Lock()
	entry, ok := r.entries[sessionID]
	delete(r.entries, sessionID)
	r.mu.Unlock()

	if ok {
		entry.auth.Close()
	}
}

func (r *sessionRegistry) Sweep(ctx context.Context) int {
	now := r.clock.Now()

	r.mu.Lock()
	var evicted []usecase.AuthUsecase
	for id, entry := range r.entries {
		if now.Sub(entry.lastSeen) < r.anonymousTTL {
			continue
		}
		if entry.auth.IsAuthenticated() || entry.auth.GetToken() != "" {
			continue
		}
		evicted = append(evicted, entry.auth)
		delete(r.entries, id)
	}
	r.mu.Unlock()

	for _, auth := range evicted {
		auth.Close()
	}
	if len(evicted) > 0 {
		r.logger.DebugContext(ctx, "Evicted idle client sessions", slog.Int("count", len(evicted)))
	}

	return len(evicted)
}

func (r *sessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// CloseAll stops every orchestrator and empties the registry.
func (r *sessionRegistry) CloseAll() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, entry := range entries {
		entry.auth.Close()
	}
}

func (r *sessionRegistry) sweepLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := r.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			r.Sweep(context.Background())
		}
	}
}
