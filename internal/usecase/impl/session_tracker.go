package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authhub/internal/domain/service"

	"github.com/jonboulle/clockwork"
)

type trackerSignalKind int

const (
	signalSessionTimeout trackerSignalKind = iota + 1
	signalRefreshDue
)

func (k trackerSignalKind) String() string {
	switch k {
	case signalSessionTimeout:
		return "session_timeout"
	case signalRefreshDue:
		return "refresh_due"
	default:
		return "unknown"
	}
}

// trackerSignal asks the owning service to act. epoch identifies the
// session the timer was armed for.
type trackerSignal struct {
	kind  trackerSignalKind
	epoch uint64
}

const (
	storageTimeout = 5 * time.Second

	// minRefreshInterval is the least spacing between two refresh signals of
	// one session.
	minRefreshInterval = 30 * time.Second
)

// sessionTracker owns the idle check and the pre-expiry refresh timer of
// one session. It never mutates session state itself; it only posts signals.
type sessionTracker struct {
	clock            clockwork.Clock
	storage          service.AuthStorage
	checkInterval    time.Duration
	idleTimeout      time.Duration
	refreshThreshold time.Duration
	notify           func(trackerSignal)
	logger           *slog.Logger

	mu             sync.Mutex
	checkTimer     clockwork.Timer
	checkEpoch     uint64
	refreshTimer   clockwork.Timer
	refreshEpoch   uint64
	lastRefreshDue time.Time
	lastActivity   time.Time
}

type sessionTrackerConfig struct {
	Clock            clockwork.Clock
	Storage          service.AuthStorage
	CheckInterval    time.Duration
	IdleTimeout      time.Duration
	RefreshThreshold time.Duration
	Notify           func(trackerSignal)
	Logger           *slog.Logger
}

func newSessionTracker(cfg sessionTrackerConfig) *sessionTracker {
	return &sessionTracker{
		clock:            cfg.Clock,
		storage:          cfg.Storage,
		checkInterval:    cfg.CheckInterval,
		idleTimeout:      cfg.IdleTimeout,
		refreshThreshold: cfg.RefreshThreshold,
		notify:           cfg.Notify,
		logger:           cfg.Logger,
	}
}

// InitializeSessionCheck starts the recurring idle check for the session
// identified by epoch, replacing any running check.
func (t *sessionTracker) InitializeSessionCheck(epoch uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.checkTimer != nil {
		t.checkTimer.Stop()
	}
	t.checkEpoch = epoch
	t.armCheckLocked(epoch)
}

func (t *sessionTracker) armCheckLocked(epoch uint64) {
	t.checkTimer = t.clock.AfterFunc(t.checkInterval, func() { t.checkIdle(epoch) })
}

func (t *sessionTracker) checkIdle(epoch uint64) {
	last := t.readLastActivity()

	t.mu.Lock()
	if t.checkTimer == nil || t.checkEpoch != epoch {
		t.mu.Unlock()

		return
	}

	idle := t.clock.Now().Sub(last)
	if idle < t.idleTimeout {
		t.armCheckLocked(epoch)
		t.mu.Unlock()

		return
	}

	// One signal per breach: the check stays off until re-initialised.
	t.checkTimer = nil
	t.mu.Unlock()

	t.logger.Debug("Session idle timeout reached", slog.Duration("idle", idle))
	t.notify(trackerSignal{kind: signalSessionTimeout, epoch: epoch})
}

// InitializeTokenRefresh arms a one-shot signal refreshThreshold before
// expiresAt, replacing any pending one. A deadline already in the past
// signals immediately unless the session was signalled less than
// minRefreshInterval ago; the signal is then deferred to that boundary.
func (t *sessionTracker) InitializeTokenRefresh(epoch uint64, expiresAt time.Time) {
	t.mu.Lock()
	if t.refreshTimer != nil {
		t.refreshTimer.Stop()
		t.refreshTimer = nil
	}

	now := t.clock.Now()
	delay := expiresAt.Add(-t.refreshThreshold).Sub(now)
	if t.refreshEpoch == epoch && !t.lastRefreshDue.IsZero() {
		delay = max(delay, t.lastRefreshDue.Add(minRefreshInterval).Sub(now))
	}
	if delay <= 0 {
		t.markRefreshDueLocked(epoch, now)
		t.mu.Unlock()
		t.notify(trackerSignal{kind: signalRefreshDue, epoch: epoch})

		return
	}

	var timer clockwork.Timer
	timer = t.clock.AfterFunc(delay, func() {
		t.mu.Lock()
		if t.refreshTimer != timer {
			t.mu.Unlock()

			return
		}
		t.refreshTimer = nil
		t.markRefreshDueLocked(epoch, t.clock.Now())
		t.mu.Unlock()

		t.notify(trackerSignal{kind: signalRefreshDue, epoch: epoch})
	})
	t.refreshTimer = timer
	t.mu.Unlock()
}

func (t *sessionTracker) markRefreshDueLocked(epoch uint64, at time.Time) {
	t.refreshEpoch = epoch
	t.lastRefreshDue = at
}

// UpdateLastActivity stamps now into storage.
func (t *sessionTracker) UpdateLastActivity(ctx context.Context) {
	now := t.clock.Now()

	t.mu.Lock()
	t.lastActivity = now
	t.mu.Unlock()

	if err := t.storage.SetItem(ctx, service.StorageKeyLastActivity, now.UTC().Format(time.RFC3339Nano)); err != nil {
		t.logger.Warn("Failed to persist last activity", slog.Any("error", err))
	}
}

// Cleanup stops both timers. It is safe to call repeatedly.
func (t *sessionTracker) Cleanup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.checkTimer != nil {
		t.checkTimer.Stop()
		t.checkTimer = nil
	}
	if t.refreshTimer != nil {
		t.refreshTimer.Stop()
		t.refreshTimer = nil
	}
	t.refreshEpoch = 0
	t.lastRefreshDue = time.Time{}
	t.lastActivity = time.Time{}
}

// Active reports whether any timer is armed.
func (t *sessionTracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.checkTimer != nil || t.refreshTimer != nil
}

// readLastActivity prefers the persisted stamp so activity recorded by
// another replica sharing the storage counts too.
func (t *sessionTracker) readLastActivity() time.Time {
	t.mu.Lock()
	fallback := t.lastActivity
	t.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	raw, ok, err := t.storage.GetItem(ctx, service.StorageKeyLastActivity)
	if err != nil {
		t.logger.Warn("Failed to read last activity", slog.Any("error", err))

		return fallback
	}
	if !ok {
		return fallback
	}

	stamp, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fallback
	}
	if stamp.Before(fallback) {
		return fallback
	}

	return stamp
}
