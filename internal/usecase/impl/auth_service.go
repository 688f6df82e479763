// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/usecase"
	"authhub/internal/util/observer"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const (
	signalQueueSize     = 8
	signalTimeout       = 30 * time.Second
	refreshRetryBackoff = 30 * time.Second
	oauthStateTTL       = 10 * time.Minute
)

// Audit actions.
const (
	auditLogin          = "login"
	auditLogout         = "logout"
	auditSessionTimeout = "session_timeout"
	auditPasswordUpdate = "password_update"
	auditPasswordReset  = "password_reset"
	auditAccountDelete  = "account_delete"
	auditMFAVerify      = "mfa_verify"
	auditMFADisable     = "mfa_disable"
)

type oauthPending struct {
	provider  string
	verifier  string
	createdAt time.Time
}

// authService is the orchestrator of one client session. State changes happen
// under mu; provider calls happen outside it. epoch advances whenever a session
// is established or cleared so late refresh results and stale timer signals
// can be recognised and dropped.
type authService struct {
	provider    service.AuthDataProvider
	storage     service.AuthStorage
	audit       service.AuditLogger
	tracker     *sessionTracker
	mfa         *mfaHandler
	events      *observer.Bus[entity.AuthEventType, entity.AuthEvent]
	retry       retryPolicy
	clock       clockwork.Clock
	idleTimeout time.Duration
	logger      *slog.Logger

	mu          sync.Mutex
	state       entity.SessionState
	epoch       uint64
	oauthStates map[string]oauthPending

	signals   chan trackerSignal
	done      chan struct{}
	loopDone  chan struct{}
	closeOnce sync.Once
}

// AuthServiceConfig holds the dependencies of one session orchestrator.
type AuthServiceConfig struct {
	Provider service.AuthDataProvider
	Storage  service.AuthStorage
	Audit    service.AuditLogger
	Clock    clockwork.Clock
	Logger   *slog.Logger

	IdleTimeout          time.Duration
	SessionCheckInterval time.Duration
	RefreshThreshold     time.Duration
	TransientRetries     int
	RetryDelay           time.Duration
}

// NewAuthService builds a session orchestrator and starts its signal loop.
// Close stops the loop.
func NewAuthService(cfg AuthServiceConfig) usecase.AuthUsecase {
	return newAuthService(cfg)
}

func newAuthService(cfg AuthServiceConfig) *authService {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	srv := &authService{
		provider:    cfg.Provider,
		storage:     cfg.Storage,
		audit:       cfg.Audit,
		mfa:         newMFAHandler(cfg.Provider),
		events:      observer.New[entity.AuthEventType, entity.AuthEvent](),
		retry:       retryPolicy{retries: cfg.TransientRetries, delay: cfg.RetryDelay, clock: cfg.Clock},
		clock:       cfg.Clock,
		idleTimeout: cfg.IdleTimeout,
		logger:      cfg.Logger,
		oauthStates: make(map[string]oauthPending),
		signals:     make(chan trackerSignal, signalQueueSize),
		done:        make(chan struct{}),
		loopDone:    make(chan struct{}),
	}
	srv.tracker = newSessionTracker(sessionTrackerConfig{
		Clock:            cfg.Clock,
		Storage:          cfg.Storage,
		CheckInterval:    cfg.SessionCheckInterval,
		IdleTimeout:      cfg.IdleTimeout,
		RefreshThreshold: cfg.RefreshThreshold,
		Notify:           srv.post,
		Logger:           cfg.Logger,
	})

	go srv.run()

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- signal loop ---

// post never blocks its caller, which may hold mu. When the queue is full the
// send moves to a goroutine that gives up only once the service is closed.
func (srv *authService) post(sig trackerSignal) {
	select {
	case srv.signals <- sig:
		return
	default:
	}

	srv.logger.Debug("Tracker signal queue is full, deferring send", slog.String("signal", sig.kind.String()))
	go func() {
		select {
		case srv.signals <- sig:
		case <-srv.done:
		}
	}()
}

func (srv *authService) run() {
	defer close(srv.loopDone)

	for {
		select {
		case <-srv.done:
			return
		case sig := <-srv.signals:
			srv.handleSignal(sig)
		}
	}
}

func (srv *authService) handleSignal(sig trackerSignal) {
	ctx, cancel := context.WithTimeout(context.Background(), signalTimeout)
	defer cancel()

	if srv.currentEpoch() != sig.epoch {
		srv.logger.Debug("Ignoring stale tracker signal", slog.String("signal", sig.kind.String()))

		return
	}

	switch sig.kind {
	case signalSessionTimeout:
		srv.expireSession(ctx, sig.epoch, true)
	case signalRefreshDue:
		srv.RefreshToken(ctx)
	}
}

func (srv *authService) currentEpoch() uint64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.epoch
}

// --- state transitions (callers hold mu) ---

// establishLocked installs a full session and arms both timers.
func (srv *authService) establishLocked(ctx context.Context, sess *service.ProviderSession) {
	srv.epoch++
	srv.tracker.Cleanup()

	srv.state = entity.SessionState{
		User:         sess.User.Clone(),
		Token:        sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		TokenExpiry:  expiryPtr(sess.ExpiresAt),
	}

	if err := srv.storage.SetItem(ctx, service.StorageKeyAuthToken, sess.AccessToken); err != nil {
		srv.log(ctx).Warn("Failed to persist auth token", slog.Any("error", err))
	}
	srv.tracker.UpdateLastActivity(ctx)
	srv.tracker.InitializeSessionCheck(srv.epoch)
	if !sess.ExpiresAt.IsZero() {
		srv.tracker.InitializeTokenRefresh(srv.epoch, sess.ExpiresAt)
	}
}

// clearLocked drops the session, its timers and its persisted data. It
// reports the state that was cleared.
func (srv *authService) clearLocked(ctx context.Context) entity.SessionState {
	prev := srv.state

	srv.epoch++
	srv.state = entity.SessionState{}
	srv.tracker.Cleanup()

	for _, key := range persistedKeys {
		if err := srv.storage.RemoveItem(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to clear auth storage", slog.String("key", key), slog.Any("error", err))
		}
	}

	return prev
}

func (srv *authService) clearSession(ctx context.Context) entity.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.clearLocked(ctx)
}

func (srv *authService) establish(ctx context.Context, sess *service.ProviderSession) *entity.AuthResult {
	srv.mu.Lock()
	srv.establishLocked(ctx, sess)
	result := &entity.AuthResult{
		Success:   true,
		User:      srv.state.User.Clone(),
		Token:     srv.state.Token,
		ExpiresAt: copyTime(srv.state.TokenExpiry),
	}
	srv.mu.Unlock()

	return result
}

// beginMFAChallenge holds only the temporary token of a pending login. No
// refresh credential exists yet, so only the idle check is armed.
func (srv *authService) beginMFAChallenge(ctx context.Context, sess *service.ProviderSession) *entity.AuthResult {
	srv.mu.Lock()
	srv.clearLocked(ctx)
	srv.state = entity.SessionState{
		User:       sess.User.Clone(),
		Token:      sess.MFAToken,
		MFAPending: true,
	}
	srv.tracker.UpdateLastActivity(ctx)
	srv.tracker.InitializeSessionCheck(srv.epoch)
	user := srv.state.User.Clone()
	srv.mu.Unlock()

	event := entity.AuthEvent{Type: entity.EventMFARequired}
	if user != nil {
		event.UserID = user.ID
		event.Email = user.Email
	}
	srv.emit(event)

	return &entity.AuthResult{Success: true, User: user, Token: sess.MFAToken, RequiresMFA: true}
}

// expireSession force-logs the session out. With matchEpoch it only acts if
// the session is still the one identified by epoch.
func (srv *authService) expireSession(ctx context.Context, epoch uint64, matchEpoch bool) bool {
	srv.mu.Lock()
	if matchEpoch && srv.epoch != epoch {
		srv.mu.Unlock()

		return false
	}
	if srv.state.Empty() {
		srv.tracker.Cleanup()
		srv.mu.Unlock()

		return false
	}
	prev := srv.clearLocked(ctx)
	srv.mu.Unlock()

	if prev.Token != "" && !prev.MFAPending {
		if err := srv.provider.HandleSessionTimeout(ctx, prev.Token); err != nil {
			srv.log(ctx).Warn("Provider session timeout handling failed", slog.Any("error", err))
		}
	}

	event := entity.AuthEvent{Type: entity.EventUserLoggedOut, SessionExpired: true}
	if prev.User != nil {
		event.UserID = prev.User.ID
		event.Email = prev.User.Email
	}
	srv.emit(event)
	srv.recordAudit(ctx, auditSessionTimeout, entity.AuditSuccess, prev.User, nil)

	return true
}

// --- events & audit ---

func (srv *authService) emit(event entity.AuthEvent) {
	event.Timestamp = srv.clock.Now()

	defer func() {
		if r := recover(); r != nil {
			srv.logger.Error("Auth event handler panicked",
				slog.String("event", string(event.Type)),
				slog.Any("panic", r),
			)
		}
	}()

	srv.events.Emit(event.Type, event)
}

// recordAudit hands the entry to the audit logger without waiting for it.
func (srv *authService) recordAudit(ctx context.Context, action string, status entity.AuditStatus, user *entity.User, details map[string]any) {
	if srv.audit == nil {
		return
	}

	client := deliverycontext.GetClientInfo(ctx)
	entry := entity.AuditEntry{
		Action:             action,
		Status:             status,
		TargetResourceType: "session",
		TargetResourceID:   client.SessionID,
		IPAddress:          client.IPAddress,
		UserAgent:          client.UserAgent,
		Details:            details,
		Timestamp:          srv.clock.Now(),
	}
	if user != nil {
		entry.UserID = user.ID.String()
	}

	detached := context.WithoutCancel(ctx)
	go srv.audit.LogUserAction(detached, entry)
}

// --- session lifecycle ---

func (srv *authService) Login(ctx context.Context, credentials entity.LoginCredentials) *entity.AuthResult {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return validationFailure("Email and password are required.")
	}

	sess, err := withRetry(ctx, srv.retry, srv.log(ctx), "login", func(ctx context.Context) (*service.ProviderSession, error) {
		return srv.provider.Login(ctx, credentials)
	})
	if err == nil {
		err = checkSession(sess)
	}
	if err != nil {
		return srv.failLogin(ctx, credentials.Email, err)
	}

	if sess.RequiresMFA {
		srv.log(ctx).Info("Login requires MFA", slog.String("email", credentials.Email))

		return srv.beginMFAChallenge(ctx, sess)
	}

	result := srv.establish(ctx, sess)
	srv.log(ctx).Info("User logged in", slog.String("user_id", result.User.ID.String()))
	srv.emit(entity.AuthEvent{
		Type:     entity.EventUserLoggedIn,
		UserID:   result.User.ID,
		Email:    result.User.Email,
		Provider: entity.ProviderEmail,
	})
	srv.recordAudit(ctx, auditLogin, entity.AuditSuccess, result.User, map[string]any{"method": "password"})

	return result
}

func (srv *authService) failLogin(ctx context.Context, email string, err error) *entity.AuthResult {
	srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

	prev := srv.clearSession(ctx)
	result := authFailure(err)
	if prev.Authenticated() {
		srv.emit(entity.AuthEvent{Type: entity.EventUserLoggedOut, UserID: prev.User.ID, Email: prev.User.Email})
	}
	srv.emit(entity.AuthEvent{Type: entity.EventAuthenticationFailed, Email: email, Reason: result.Code})
	srv.recordAudit(ctx, auditLogin, entity.AuditFailure, nil, map[string]any{"email": email, "error_code": result.Code})

	return result
}

func (srv *authService) Register(ctx context.Context, payload entity.RegisterPayload) *entity.AuthResult {
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" || payload.Password == "" {
		return validationFailure("Email and password are required.")
	}

	reg, err := withRetry(ctx, srv.retry, srv.log(ctx), "register", func(ctx context.Context) (*service.RegistrationResult, error) {
		return srv.provider.Register(ctx, payload)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", payload.Email), slog.Any("error", err))

		return authFailure(err)
	}

	if reg.Session != nil && !reg.Session.RequiresMFA && reg.Session.AccessToken != "" {
		result := srv.establish(ctx, reg.Session)
		srv.emit(entity.AuthEvent{
			Type:          entity.EventUserRegistered,
			UserID:        result.User.ID,
			Email:         result.User.Email,
			Authenticated: true,
		})

		return result
	}

	event := entity.AuthEvent{Type: entity.EventUserRegistered, RequiresVerification: reg.RequiresEmailVerification}
	if reg.User != nil {
		event.UserID = reg.User.ID
		event.Email = reg.User.Email
	}
	srv.emit(event)

	return &entity.AuthResult{
		Success:                   true,
		User:                      reg.User.Clone(),
		RequiresEmailVerification: reg.RequiresEmailVerification,
	}
}

func (srv *authService) Logout(ctx context.Context) {
	srv.mu.Lock()
	token := srv.state.Token
	srv.mu.Unlock()

	if err := srv.provider.Logout(ctx, token); err != nil {
		srv.log(ctx).Warn("Provider logout failed, clearing local session anyway", slog.Any("error", err))
	}

	prev := srv.clearSession(ctx)

	event := entity.AuthEvent{Type: entity.EventUserLoggedOut}
	if prev.User != nil {
		event.UserID = prev.User.ID
		event.Email = prev.User.Email
	}
	srv.emit(event)
	srv.recordAudit(ctx, auditLogout, entity.AuditSuccess, prev.User, nil)
}

func (srv *authService) RefreshToken(ctx context.Context) bool {
	srv.mu.Lock()
	epoch := srv.epoch
	refreshToken := srv.state.RefreshToken
	authenticated := srv.state.Authenticated()
	srv.mu.Unlock()

	if !authenticated {
		return false
	}
	if refreshToken == "" {
		srv.failRefresh(ctx, epoch, errors.WithStack(domainerrors.ErrRefreshTokenInvalid))

		return false
	}

	sess, err := withRetry(ctx, srv.retry, srv.log(ctx), "refresh_token", func(ctx context.Context) (*service.ProviderSession, error) {
		return srv.provider.RefreshToken(ctx, refreshToken)
	})
	if err != nil {
		srv.failRefresh(ctx, epoch, err)

		return false
	}

	srv.mu.Lock()
	if srv.epoch != epoch {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Discarding refresh result for a replaced session")

		return false
	}

	srv.state.Token = sess.AccessToken
	if sess.RefreshToken != "" {
		srv.state.RefreshToken = sess.RefreshToken
	}
	srv.state.TokenExpiry = expiryPtr(sess.ExpiresAt)
	if sess.User != nil {
		srv.state.User = sess.User.Clone()
	}
	if err := srv.storage.SetItem(ctx, service.StorageKeyAuthToken, sess.AccessToken); err != nil {
		srv.log(ctx).Warn("Failed to persist refreshed token", slog.Any("error", err))
	}
	if !sess.ExpiresAt.IsZero() {
		srv.tracker.InitializeTokenRefresh(epoch, sess.ExpiresAt)
	}
	userID := srv.state.User.ID
	srv.mu.Unlock()

	srv.emit(entity.AuthEvent{Type: entity.EventTokenRefreshed, UserID: userID})

	return true
}

// failRefresh keeps the session through transient failures while the token
// is still valid and force-logs out on anything else.
func (srv *authService) failRefresh(ctx context.Context, epoch uint64, err error) {
	class := classifyError(err)
	srv.log(ctx).Warn("Token refresh failed", slog.String("class", class.String()), slog.Any("error", err))

	if class == errorClassTransient || class == errorClassRateLimited {
		srv.mu.Lock()
		if srv.epoch == epoch && srv.state.TokenExpiry != nil && srv.clock.Now().Before(*srv.state.TokenExpiry) {
			retryAt := srv.clock.Now().Add(srv.tracker.refreshThreshold + refreshRetryBackoff)
			srv.tracker.InitializeTokenRefresh(epoch, retryAt)
			srv.mu.Unlock()

			return
		}
		srv.mu.Unlock()
	}

	if !srv.expireSession(ctx, epoch, true) {
		return
	}

	srv.emit(entity.AuthEvent{Type: entity.EventAuthStateRecoveryFailed, Reason: toAppError(err).Message()})
}

func (srv *authService) HandleSessionTimeout(ctx context.Context) {
	if srv.expireSession(ctx, 0, false) {
		srv.log(ctx).Info("Session timed out")
	}
}

func (srv *authService) Restore(ctx context.Context) bool {
	srv.mu.Lock()
	if !srv.state.Empty() {
		authenticated := srv.state.Authenticated()
		srv.mu.Unlock()

		return authenticated
	}
	epoch := srv.epoch
	srv.mu.Unlock()

	token, ok, err := srv.storage.GetItem(ctx, service.StorageKeyAuthToken)
	if err != nil {
		srv.log(ctx).Warn("Failed to read persisted auth token", slog.Any("error", err))

		return false
	}
	if !ok || token == "" {
		return false
	}

	if srv.idleExpired(ctx) {
		srv.abandonRestore(ctx, epoch, domainerrors.ErrSessionExpired.Message())

		return false
	}

	user, err := withRetry(ctx, srv.retry, srv.log(ctx), "get_current_user", func(ctx context.Context) (*entity.User, error) {
		return srv.provider.GetCurrentUser(ctx, token)
	})
	if err != nil || user == nil {
		reason := domainerrors.ErrSessionExpired.Message()
		if err != nil {
			reason = toAppError(err).Message()
			srv.log(ctx).Warn("Failed to restore session", slog.Any("error", err))
		}
		srv.abandonRestore(ctx, epoch, reason)

		return false
	}

	srv.mu.Lock()
	if srv.epoch != epoch {
		srv.mu.Unlock()

		return srv.IsAuthenticated()
	}
	srv.epoch++
	expiresAt := tokenExpiry(token)
	srv.state = entity.SessionState{User: user.Clone(), Token: token, TokenExpiry: expiryPtr(expiresAt)}
	srv.tracker.UpdateLastActivity(ctx)
	srv.tracker.InitializeSessionCheck(srv.epoch)
	if !expiresAt.IsZero() {
		srv.tracker.InitializeTokenRefresh(srv.epoch, expiresAt)
	}
	srv.mu.Unlock()

	srv.emit(entity.AuthEvent{Type: entity.EventUserLoggedIn, UserID: user.ID, Email: user.Email, Reason: "restored"})

	return true
}

func (srv *authService) idleExpired(ctx context.Context) bool {
	raw, ok, err := srv.storage.GetItem(ctx, service.StorageKeyLastActivity)
	if err != nil || !ok {
		return false
	}
	last, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return false
	}

	return srv.clock.Now().Sub(last) >= srv.idleTimeout
}

func (srv *authService) abandonRestore(ctx context.Context, epoch uint64, reason string) {
	srv.mu.Lock()
	if srv.epoch != epoch {
		srv.mu.Unlock()

		return
	}
	srv.clearLocked(ctx)
	srv.mu.Unlock()

	srv.emit(entity.AuthEvent{Type: entity.EventAuthStateRecoveryFailed, Reason: reason})
}

func (srv *authService) RecordActivity(ctx context.Context) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.state.Empty() {
		return
	}
	srv.tracker.UpdateLastActivity(ctx)
}

// --- observation ---

func (srv *authService) OnAuthStateChanged(handler usecase.AuthStateHandler) func() {
	return srv.events.SubscribeAll(func(event entity.AuthEvent) {
		if event.ChangesAuthState() {
			handler(srv.GetCurrentUser())
		}
	})
}

func (srv *authService) Subscribe(eventType entity.AuthEventType, handler usecase.AuthEventHandler) func() {
	return srv.events.Subscribe(eventType, handler)
}

// GetCurrentUser returns the signed-in user. It is nil while an MFA challenge is pending.
func (srv *authService) GetCurrentUser() *entity.User {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.state.Authenticated() {
		return nil
	}

	return srv.state.User.Clone()
}

func (srv *authService) IsAuthenticated() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state.Authenticated()
}

// GetToken returns the bearer token, or the temporary MFA token while a challenge is pending.
func (srv *authService) GetToken() string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state.Token
}

func (srv *authService) GetTokenExpiry() *time.Time {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return copyTime(srv.state.TokenExpiry)
}

func (srv *authService) Close() {
	srv.closeOnce.Do(func() {
		srv.tracker.Cleanup()
		close(srv.done)
		<-srv.loopDone
		srv.events.Clear()
	})
}

// --- helpers ---

// sessionToken returns the full session token, or ErrNotAuthenticated.
func (srv *authService) sessionToken() (string, *entity.User, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.state.Authenticated() {
		return "", nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	return srv.state.Token, srv.state.User.Clone(), nil
}

// checkSession rejects provider responses that cannot back a session.
func checkSession(sess *service.ProviderSession) error {
	switch {
	case sess == nil:
		return errors.WithStack(domainerrors.ErrProvider.WithDetails("empty session"))
	case sess.RequiresMFA:
		if sess.MFAToken == "" {
			return errors.WithStack(domainerrors.ErrProvider.WithDetails("mfa challenge without token"))
		}
	case sess.User == nil || sess.AccessToken == "":
		return errors.WithStack(domainerrors.ErrProvider.WithDetails("session without user or token"))
	}

	return nil
}

func expiryPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t

	return &c
}

// tokenExpiry reads the exp claim of a JWT access token without verifying it.
// Verification is the provider's job; this only schedules the refresh.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
