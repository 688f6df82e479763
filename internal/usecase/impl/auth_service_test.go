package impl

import (
	"context"
	"io"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	mockSvc "authhub/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const eventuallyWait, eventuallyTick = time.Second, 5 * time.Millisecond

func TestAuthService_Login(t *testing.T) {
	t.Run("success establishes the session", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		expiresAt := testEpoch.Add(time.Hour)

		var observed []*entity.User
		f.srv.OnAuthStateChanged(func(u *entity.User) { observed = append(observed, u) })

		f.provider.EXPECT().
			Login(mock.Anything, entity.LoginCredentials{Email: "jane@example.com", Password: "s3cret!"}).
			Return(newTestSession(user, "access-1", expiresAt), nil).
			Once()

		ctx := deliverycontext.WithClientInfo(context.Background(), deliverycontext.ClientInfo{
			IPAddress: "203.0.113.7",
			UserAgent: "test-agent",
			SessionID: "sid-1",
		})
		result := f.srv.Login(ctx, entity.LoginCredentials{Email: "  jane@example.com ", Password: "s3cret!"})

		require.True(t, result.Success)
		assert.Equal(t, "access-1", result.Token)
		require.NotNil(t, result.ExpiresAt)
		assert.True(t, result.ExpiresAt.Equal(expiresAt))
		assert.Equal(t, user.ID, result.User.ID)

		assert.True(t, f.srv.IsAuthenticated())
		assert.Equal(t, "access-1", f.srv.GetToken())
		assert.Equal(t, user.Email, f.srv.GetCurrentUser().Email)
		assert.True(t, f.storage.has(service.StorageKeyAuthToken))
		assert.True(t, f.storage.has(service.StorageKeyLastActivity))

		logins := f.events.ofType(entity.EventUserLoggedIn)
		require.Len(t, logins, 1)
		assert.Equal(t, entity.ProviderEmail, logins[0].Provider)
		assert.Equal(t, testEpoch, logins[0].Timestamp)

		require.Len(t, observed, 1)
		assert.Equal(t, user.ID, observed[0].ID)

		assert.Eventually(t, func() bool {
			entry, ok := f.audit.find(auditLogin, entity.AuditSuccess)

			return ok && entry.IPAddress == "203.0.113.7" && entry.TargetResourceID == "sid-1" && entry.UserID == user.ID.String()
		}, eventuallyWait, eventuallyTick)
	})

	t.Run("returned user cannot mutate session state", func(t *testing.T) {
		f := createTestAuthService(t)
		f.loginAs(t, newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour)))

		f.srv.GetCurrentUser().Email = "mallory@example.com"

		assert.Equal(t, "jane@example.com", f.srv.GetCurrentUser().Email)
	})

	t.Run("missing credentials never reach the provider", func(t *testing.T) {
		f := createTestAuthService(t)

		result := f.srv.Login(context.Background(), entity.LoginCredentials{Email: " ", Password: "x"})

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeValidationFailed, result.Code)
		assert.Empty(t, f.events.all())
	})

	t.Run("handler panic does not break login", func(t *testing.T) {
		f := createTestAuthService(t)
		f.srv.Subscribe(entity.EventUserLoggedIn, func(entity.AuthEvent) { panic("boom") })

		f.loginAs(t, newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour)))

		assert.True(t, f.srv.IsAuthenticated())
	})
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name          string
		providerErr   error
		expectedCalls int
		expectedCode  string
		check         func(t *testing.T, result *entity.AuthResult)
	}{
		{
			name:          "invalid credentials are mapped from the provider message",
			providerErr:   domainerrors.NewProviderError(400, "invalid_grant", "Invalid login credentials"),
			expectedCalls: 1,
			expectedCode:  domainerrors.CodeInvalidCredentials,
			check: func(t *testing.T, result *entity.AuthResult) {
				assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), result.Error)
			},
		},
		{
			name:          "unconfirmed email",
			providerErr:   errors.New("Email not confirmed"),
			expectedCalls: 1,
			expectedCode:  domainerrors.CodeEmailNotVerified,
		},
		{
			name:          "rate limit carries retry metadata",
			providerErr:   domainerrors.NewRateLimitError(30*time.Second, 2),
			expectedCalls: 1,
			expectedCode:  domainerrors.CodeRateLimitExceeded,
			check: func(t *testing.T, result *entity.AuthResult) {
				assert.Equal(t, 30*time.Second, result.RetryAfter)
				require.NotNil(t, result.RemainingAttempts)
				assert.Equal(t, 2, *result.RemainingAttempts)
				assert.Contains(t, result.Error, "30 seconds")
			},
		},
		{
			name:          "network errors are retried once",
			providerErr:   domainerrors.NewNetworkError("login", io.ErrUnexpectedEOF),
			expectedCalls: 2,
			expectedCode:  domainerrors.CodeNetworkError,
		},
		{
			name:          "caller cancellation is not retried",
			providerErr:   context.Canceled,
			expectedCalls: 1,
			expectedCode:  domainerrors.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)

			f.provider.EXPECT().
				Login(mock.Anything, mock.Anything).
				Return(nil, tt.providerErr).
				Times(tt.expectedCalls)

			result := f.srv.Login(context.Background(), entity.LoginCredentials{Email: "jane@example.com", Password: "wrong"})

			assert.False(t, result.Success)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.False(t, f.srv.IsAuthenticated())

			failures := f.events.ofType(entity.EventAuthenticationFailed)
			require.Len(t, failures, 1)
			assert.Equal(t, tt.expectedCode, failures[0].Reason)
			assert.Equal(t, "jane@example.com", failures[0].Email)

			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestAuthService_Login_RecoversFromTransientError(t *testing.T) {
	f := createTestAuthService(t)
	user := newTestUser()

	f.provider.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewNetworkError("login", errors.New("connection reset by peer"))).Once()
	f.provider.EXPECT().Login(mock.Anything, mock.Anything).
		Return(newTestSession(user, "access-1", testEpoch.Add(time.Hour)), nil).Once()

	result := f.srv.Login(context.Background(), entity.LoginCredentials{Email: user.Email, Password: "s3cret!"})

	assert.True(t, result.Success)
	assert.Zero(t, f.events.count(entity.EventAuthenticationFailed))
}

func TestAuthService_Login_FailureEndsExistingSession(t *testing.T) {
	f := createTestAuthService(t)
	user := newTestUser()
	f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

	var observed []*entity.User
	f.srv.OnAuthStateChanged(func(u *entity.User) { observed = append(observed, u) })

	f.provider.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	result := f.srv.Login(context.Background(), entity.LoginCredentials{Email: "other@example.com", Password: "wrong"})

	assert.False(t, result.Success)
	assert.False(t, f.srv.IsAuthenticated())
	assert.False(t, f.storage.has(service.StorageKeyAuthToken))

	logouts := f.events.ofType(entity.EventUserLoggedOut)
	require.Len(t, logouts, 1)
	assert.Equal(t, user.ID, logouts[0].UserID)
	assert.False(t, logouts[0].SessionExpired)
	assert.Equal(t, 1, f.events.count(entity.EventAuthenticationFailed))
	assert.Equal(t, []*entity.User{nil}, observed)
}

func TestAuthService_Login_FailureWithoutSessionEmitsNoLogout(t *testing.T) {
	f := createTestAuthService(t)
	f.provider.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	f.srv.Login(context.Background(), entity.LoginCredentials{Email: "jane@example.com", Password: "wrong"})

	assert.Zero(t, f.events.count(entity.EventUserLoggedOut))
	assert.Equal(t, 1, f.events.count(entity.EventAuthenticationFailed))
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("provider failure still clears the session", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		lastObserved := user
		f.srv.OnAuthStateChanged(func(u *entity.User) { lastObserved = u })

		f.provider.EXPECT().Logout(mock.Anything, "access-1").Return(errors.New("gotrue unavailable")).Once()

		f.srv.Logout(context.Background())

		assert.False(t, f.srv.IsAuthenticated())
		assert.Empty(t, f.srv.GetToken())
		assert.Nil(t, f.srv.GetTokenExpiry())
		assert.False(t, f.storage.has(service.StorageKeyAuthToken))
		assert.False(t, f.storage.has(service.StorageKeyLastActivity))
		assert.Nil(t, lastObserved)
		waitForTimers(t, f.clock, 0)

		logouts := f.events.ofType(entity.EventUserLoggedOut)
		require.Len(t, logouts, 1)
		assert.False(t, logouts[0].SessionExpired)
		assert.Equal(t, user.ID, logouts[0].UserID)

		assert.Eventually(t, func() bool {
			_, ok := f.audit.find(auditLogout, entity.AuditSuccess)

			return ok
		}, eventuallyWait, eventuallyTick)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("scheduled refresh replaces the token and reschedules", func(t *testing.T) {
		f := createTestAuthService(t, func(cfg *AuthServiceConfig) { cfg.IdleTimeout = 24 * time.Hour })
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(10*time.Minute)))

		f.provider.EXPECT().RefreshToken(mock.Anything, "refresh-access-1").
			Return(newTestSession(user, "access-2", testEpoch.Add(time.Hour)), nil).Once()

		f.clock.Advance(5 * time.Minute)

		require.Eventually(t, func() bool { return f.srv.GetToken() == "access-2" }, eventuallyWait, eventuallyTick)
		value, _, _ := f.storage.GetItem(context.Background(), service.StorageKeyAuthToken)
		assert.Equal(t, "access-2", value)
		waitForTimers(t, f.clock, 2)

		f.provider.EXPECT().RefreshToken(mock.Anything, "refresh-access-2").
			Return(newTestSession(user, "access-3", testEpoch.Add(2*time.Hour)), nil).Once()

		f.clock.Advance(50 * time.Minute)

		assert.Eventually(t, func() bool { return f.srv.GetToken() == "access-3" }, eventuallyWait, eventuallyTick)
		assert.Eventually(t, func() bool { return f.events.count(entity.EventTokenRefreshed) == 2 }, eventuallyWait, eventuallyTick)
		expiry := f.srv.GetTokenExpiry()
		require.NotNil(t, expiry)
		assert.True(t, expiry.Equal(testEpoch.Add(2*time.Hour)))
	})

	t.Run("invalid refresh token logs out exactly once", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(10*time.Minute)))

		f.provider.EXPECT().RefreshToken(mock.Anything, "refresh-access-1").
			Return(nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)).Once()
		f.provider.EXPECT().HandleSessionTimeout(mock.Anything, "access-1").Return(nil).Once()

		f.clock.Advance(5 * time.Minute)

		assert.Eventually(t, func() bool {
			return f.events.count(entity.EventAuthStateRecoveryFailed) == 1
		}, eventuallyWait, eventuallyTick)

		logouts := f.events.ofType(entity.EventUserLoggedOut)
		require.Len(t, logouts, 1)
		assert.True(t, logouts[0].SessionExpired)
		assert.Equal(t, user.ID, logouts[0].UserID)

		assert.False(t, f.srv.IsAuthenticated())
		assert.False(t, f.storage.has(service.StorageKeyAuthToken))
		waitForTimers(t, f.clock, 0)

		f.clock.Advance(time.Hour)
		assert.Len(t, f.events.ofType(entity.EventUserLoggedOut), 1)
	})

	t.Run("missing refresh token counts as invalid", func(t *testing.T) {
		f := createTestAuthService(t)
		sess := newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour))
		sess.RefreshToken = ""
		f.loginAs(t, sess)

		f.provider.EXPECT().HandleSessionTimeout(mock.Anything, "access-1").Return(nil).Once()

		assert.False(t, f.srv.RefreshToken(context.Background()))
		assert.False(t, f.srv.IsAuthenticated())
		assert.Equal(t, 1, f.events.count(entity.EventUserLoggedOut))
		assert.Equal(t, 1, f.events.count(entity.EventAuthStateRecoveryFailed))
	})

	t.Run("transient failure keeps the session and retries later", func(t *testing.T) {
		f := createTestAuthService(t, func(cfg *AuthServiceConfig) { cfg.IdleTimeout = 24 * time.Hour })
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(10*time.Minute)))

		var calls atomic.Int32
		f.provider.EXPECT().RefreshToken(mock.Anything, "refresh-access-1").
			RunAndReturn(func(context.Context, string) (*service.ProviderSession, error) {
				calls.Add(1)

				return nil, domainerrors.NewNetworkError("refresh", io.ErrUnexpectedEOF)
			}).Times(2)

		f.clock.Advance(5 * time.Minute)

		require.Eventually(t, func() bool { return calls.Load() == 2 }, eventuallyWait, eventuallyTick)
		// Idle check plus the re-armed refresh.
		waitForTimers(t, f.clock, 2)
		assert.True(t, f.srv.IsAuthenticated())
		assert.Zero(t, f.events.count(entity.EventUserLoggedOut))

		f.provider.EXPECT().RefreshToken(mock.Anything, "refresh-access-1").
			Return(newTestSession(user, "access-2", testEpoch.Add(time.Hour)), nil).Once()

		f.clock.Advance(refreshRetryBackoff)

		assert.Eventually(t, func() bool { return f.srv.GetToken() == "access-2" }, eventuallyWait, eventuallyTick)
	})

	t.Run("short-lived tokens are not refreshed back to back", func(t *testing.T) {
		f := createTestAuthService(t, func(cfg *AuthServiceConfig) { cfg.IdleTimeout = 24 * time.Hour })
		user := newTestUser()

		var calls atomic.Int32
		f.provider.EXPECT().RefreshToken(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, string) (*service.ProviderSession, error) {
				n := calls.Add(1)

				return newTestSession(user, "access-"+strconv.Itoa(int(n)+1), f.clock.Now().Add(2*time.Minute)), nil
			})

		// Both tokens expire inside the refresh threshold.
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(2*time.Minute)))

		require.Eventually(t, func() bool { return f.srv.GetToken() == "access-2" }, eventuallyWait, eventuallyTick)
		waitForTimers(t, f.clock, 2)
		assert.Equal(t, int32(1), calls.Load())

		f.clock.Advance(minRefreshInterval)

		require.Eventually(t, func() bool { return f.srv.GetToken() == "access-3" }, eventuallyWait, eventuallyTick)
		waitForTimers(t, f.clock, 2)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("result for a replaced session is discarded", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		started := make(chan struct{})
		release := make(chan struct{})
		f.provider.EXPECT().RefreshToken(mock.Anything, "refresh-access-1").
			RunAndReturn(func(context.Context, string) (*service.ProviderSession, error) {
				close(started)
				<-release

				return newTestSession(user, "access-late", testEpoch.Add(2*time.Hour)), nil
			}).Once()
		f.provider.EXPECT().Logout(mock.Anything, "access-1").Return(nil).Once()

		refreshed := make(chan bool, 1)
		go func() { refreshed <- f.srv.RefreshToken(context.Background()) }()

		<-started
		f.srv.Logout(context.Background())
		close(release)

		assert.False(t, <-refreshed)
		assert.Empty(t, f.srv.GetToken())
		assert.False(t, f.storage.has(service.StorageKeyAuthToken))
		assert.Zero(t, f.events.count(entity.EventTokenRefreshed))
	})

	t.Run("signed out session does not refresh", func(t *testing.T) {
		f := createTestAuthService(t)

		assert.False(t, f.srv.RefreshToken(context.Background()))
		assert.Empty(t, f.events.all())
	})
}

func TestAuthService_StaleTimerSignalIsIgnored(t *testing.T) {
	f := createTestAuthService(t)
	user := newTestUser()
	f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))
	stale := f.srv.currentEpoch()

	f.loginAs(t, newTestSession(user, "access-2", testEpoch.Add(time.Hour)))

	f.srv.handleSignal(trackerSignal{kind: signalSessionTimeout, epoch: stale})

	assert.True(t, f.srv.IsAuthenticated())
	assert.Equal(t, "access-2", f.srv.GetToken())
	assert.Zero(t, f.events.count(entity.EventUserLoggedOut))
}

func TestAuthService_HandleSessionTimeout(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		f := createTestAuthService(t)
		f.loginAs(t, newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().HandleSessionTimeout(mock.Anything, "access-1").Return(nil).Once()

		f.srv.HandleSessionTimeout(context.Background())
		f.srv.HandleSessionTimeout(context.Background())

		logouts := f.events.ofType(entity.EventUserLoggedOut)
		require.Len(t, logouts, 1)
		assert.True(t, logouts[0].SessionExpired)
		assert.False(t, f.srv.IsAuthenticated())
		waitForTimers(t, f.clock, 0)
	})

	t.Run("without a session is a no-op", func(t *testing.T) {
		f := createTestAuthService(t)

		f.srv.HandleSessionTimeout(context.Background())

		assert.Empty(t, f.events.all())
	})

	t.Run("provider failure is tolerated", func(t *testing.T) {
		f := createTestAuthService(t)
		f.loginAs(t, newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().HandleSessionTimeout(mock.Anything, "access-1").Return(errors.New("offline")).Once()

		f.srv.HandleSessionTimeout(context.Background())

		assert.False(t, f.srv.IsAuthenticated())
		assert.Equal(t, 1, f.events.count(entity.EventUserLoggedOut))
	})
}

func TestAuthService_IdleTimeout(t *testing.T) {
	t.Run("inactivity expires the session", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().HandleSessionTimeout(mock.Anything, "access-1").Return(nil).Once()

		f.clock.Advance(testIdleTimeout)

		assert.Eventually(t, func() bool { return !f.srv.IsAuthenticated() }, eventuallyWait, eventuallyTick)
		assert.Eventually(t, func() bool { return f.events.count(entity.EventUserLoggedOut) == 1 }, eventuallyWait, eventuallyTick)
		assert.True(t, f.events.ofType(entity.EventUserLoggedOut)[0].SessionExpired)
		assert.Eventually(t, func() bool {
			entry, ok := f.audit.find(auditSessionTimeout, entity.AuditSuccess)

			return ok && entry.UserID == user.ID.String()
		}, eventuallyWait, eventuallyTick)
	})

	t.Run("activity keeps the session alive", func(t *testing.T) {
		f := createTestAuthService(t)
		f.loginAs(t, newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour)))

		f.clock.Advance(20 * time.Minute)
		waitForTimers(t, f.clock, 2)
		f.srv.RecordActivity(context.Background())
		f.clock.Advance(20 * time.Minute)
		waitForTimers(t, f.clock, 2)

		assert.True(t, f.srv.IsAuthenticated())
		assert.Zero(t, f.events.count(entity.EventUserLoggedOut))
	})

	t.Run("recording activity without a session stores nothing", func(t *testing.T) {
		f := createTestAuthService(t)

		f.srv.RecordActivity(context.Background())

		assert.False(t, f.storage.has(service.StorageKeyLastActivity))
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("immediate session signs the user in", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		payload := entity.RegisterPayload{Email: user.Email, Password: "s3cret!", Name: "Jane"}

		var observed *entity.User
		f.srv.OnAuthStateChanged(func(u *entity.User) { observed = u })

		f.provider.EXPECT().Register(mock.Anything, payload).Return(&service.RegistrationResult{
			User:    user,
			Session: newTestSession(user, "access-1", testEpoch.Add(time.Hour)),
		}, nil).Once()

		result := f.srv.Register(context.Background(), payload)

		require.True(t, result.Success)
		assert.True(t, f.srv.IsAuthenticated())
		require.NotNil(t, observed)
		registered := f.events.ofType(entity.EventUserRegistered)
		require.Len(t, registered, 1)
		assert.True(t, registered[0].Authenticated)
	})

	t.Run("email confirmation leaves the session signed out", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		user.EmailVerified = false

		f.provider.EXPECT().Register(mock.Anything, mock.Anything).Return(&service.RegistrationResult{
			User:                      user,
			RequiresEmailVerification: true,
		}, nil).Once()

		result := f.srv.Register(context.Background(), entity.RegisterPayload{Email: user.Email, Password: "s3cret!"})

		require.True(t, result.Success)
		assert.True(t, result.RequiresEmailVerification)
		assert.Empty(t, result.Token)
		assert.False(t, f.srv.IsAuthenticated())
		registered := f.events.ofType(entity.EventUserRegistered)
		require.Len(t, registered, 1)
		assert.True(t, registered[0].RequiresVerification)
		assert.False(t, registered[0].ChangesAuthState())
	})

	t.Run("duplicate account", func(t *testing.T) {
		f := createTestAuthService(t)

		f.provider.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.New("User already registered")).Once()

		result := f.srv.Register(context.Background(), entity.RegisterPayload{Email: "jane@example.com", Password: "s3cret!"})

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeUserAlreadyExists, result.Code)
	})
}

func TestAuthService_PasswordFlows(t *testing.T) {
	t.Run("update password invalidates other sessions once", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().UpdatePassword(mock.Anything, "access-1", "old-pass", "new-pass").Return(nil).Once()
		f.provider.EXPECT().InvalidateSessions(mock.Anything, user.ID, "access-1").Return(nil).Once()

		err := f.srv.UpdatePassword(context.Background(), "old-pass", "new-pass")

		require.NoError(t, err)
		assert.True(t, f.srv.IsAuthenticated())
		assert.Equal(t, 1, f.events.count(entity.EventPasswordUpdated))
	})

	t.Run("update password failure keeps other sessions", func(t *testing.T) {
		f := createTestAuthService(t)
		f.loginAs(t, newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().UpdatePassword(mock.Anything, "access-1", "old-pass", "short").
			Return(errors.New("Password should be at least 8 characters")).Once()

		err := f.srv.UpdatePassword(context.Background(), "old-pass", "short")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		assert.Zero(t, f.events.count(entity.EventPasswordUpdated))
	})

	t.Run("update password requires a session", func(t *testing.T) {
		f := createTestAuthService(t)

		err := f.srv.UpdatePassword(context.Background(), "old-pass", "new-pass")

		assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
	})

	t.Run("reset request retries a transient failure", func(t *testing.T) {
		f := createTestAuthService(t)

		f.provider.EXPECT().ResetPassword(mock.Anything, "jane@example.com").
			Return(domainerrors.NewNetworkError("recover", io.ErrUnexpectedEOF)).Once()
		f.provider.EXPECT().ResetPassword(mock.Anything, "jane@example.com").Return(nil).Once()

		result := f.srv.ResetPassword(context.Background(), "jane@example.com")

		assert.True(t, result.Success)
		assert.Equal(t, 1, f.events.count(entity.EventPasswordResetRequested))
	})

	t.Run("token update is never retried", func(t *testing.T) {
		f := createTestAuthService(t)

		f.provider.EXPECT().UpdatePasswordWithToken(mock.Anything, "reset-token", "new-pass").
			Return(domainerrors.NewNetworkError("update", io.ErrUnexpectedEOF)).Once()

		result := f.srv.UpdatePasswordWithToken(context.Background(), "reset-token", "new-pass")

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeNetworkError, result.Code)
	})

	t.Run("expired reset token", func(t *testing.T) {
		f := createTestAuthService(t)

		f.provider.EXPECT().VerifyPasswordResetToken(mock.Anything, "stale").
			Return(errors.WithStack(domainerrors.ErrTokenInvalid)).Once()

		result := f.srv.VerifyPasswordResetToken(context.Background(), "stale")

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeTokenInvalid, result.Code)
	})
}

func TestAuthService_EmailFlows(t *testing.T) {
	t.Run("verify email marks the signed-in user", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		user.EmailVerified = false
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().VerifyEmail(mock.Anything, "verify-token").Return(user, nil).Once()

		require.NoError(t, f.srv.VerifyEmail(context.Background(), "verify-token"))
		assert.True(t, f.srv.GetCurrentUser().EmailVerified)
		assert.Equal(t, 1, f.events.count(entity.EventEmailVerified))
	})

	t.Run("magic link signs in", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()

		f.provider.EXPECT().SendMagicLink(mock.Anything, user.Email).Return(nil).Once()
		f.provider.EXPECT().VerifyMagicLink(mock.Anything, "link-token").
			Return(newTestSession(user, "access-1", testEpoch.Add(time.Hour)), nil).Once()

		assert.True(t, f.srv.SendMagicLink(context.Background(), user.Email).Success)
		result := f.srv.VerifyMagicLink(context.Background(), "link-token")

		require.True(t, result.Success)
		assert.True(t, f.srv.IsAuthenticated())
		assert.Equal(t, 1, f.events.count(entity.EventMagicLinkSent))
	})

	t.Run("send verification email validates input", func(t *testing.T) {
		f := createTestAuthService(t)

		result := f.srv.SendVerificationEmail(context.Background(), "")

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeValidationFailed, result.Code)
	})
}

func TestAuthService_DeleteAccount(t *testing.T) {
	f := createTestAuthService(t)
	user := newTestUser()
	f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

	f.provider.EXPECT().DeleteAccount(mock.Anything, "access-1", "s3cret!").Return(nil).Once()

	require.NoError(t, f.srv.DeleteAccount(context.Background(), "s3cret!"))

	assert.False(t, f.srv.IsAuthenticated())
	assert.False(t, f.storage.has(service.StorageKeyAuthToken))
	assert.Equal(t, 1, f.events.count(entity.EventAccountDeleted))
	assert.Zero(t, f.events.count(entity.EventUserLoggedOut))
}

func TestAuthService_MFA(t *testing.T) {
	t.Run("login challenge completes after a valid code", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		user.MFAEnabled = true

		f.provider.EXPECT().Login(mock.Anything, mock.Anything).Return(&service.ProviderSession{
			User:        user,
			RequiresMFA: true,
			MFAToken:    "mfa-token",
		}, nil).Once()

		result := f.srv.Login(context.Background(), entity.LoginCredentials{Email: user.Email, Password: "s3cret!"})

		require.True(t, result.Success)
		assert.True(t, result.RequiresMFA)
		assert.False(t, f.srv.IsAuthenticated())
		assert.Nil(t, f.srv.GetCurrentUser())
		assert.Equal(t, "mfa-token", f.srv.GetToken())
		assert.False(t, f.storage.has(service.StorageKeyAuthToken))
		assert.Equal(t, 1, f.events.count(entity.EventMFARequired))
		assert.Zero(t, f.events.count(entity.EventUserLoggedIn))

		f.provider.EXPECT().VerifyMFA(mock.Anything, "mfa-token", "123456").Return(&service.MFAVerification{
			User:    user,
			Session: newTestSession(user, "access-1", testEpoch.Add(time.Hour)),
		}, nil).Once()

		verified := f.srv.VerifyMFA(context.Background(), "123456")

		require.True(t, verified.Success)
		assert.True(t, verified.LoggedIn)
		assert.True(t, f.srv.IsAuthenticated())
		assert.Equal(t, "access-1", f.srv.GetToken())
		assert.True(t, f.storage.has(service.StorageKeyAuthToken))

		logins := f.events.ofType(entity.EventUserLoggedIn)
		require.Len(t, logins, 1)
		assert.Equal(t, "mfa", logins[0].Provider)
	})

	t.Run("wrong code keeps the challenge pending", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()

		f.provider.EXPECT().Login(mock.Anything, mock.Anything).Return(&service.ProviderSession{
			User:        user,
			RequiresMFA: true,
			MFAToken:    "mfa-token",
		}, nil).Once()
		f.srv.Login(context.Background(), entity.LoginCredentials{Email: user.Email, Password: "s3cret!"})

		f.provider.EXPECT().VerifyMFA(mock.Anything, "mfa-token", "000000").
			Return(nil, errors.New("Invalid TOTP code entered")).Once()

		verified := f.srv.VerifyMFA(context.Background(), "000000")

		assert.False(t, verified.Success)
		assert.Equal(t, domainerrors.CodeMFAInvalidCode, verified.Code)
		assert.Equal(t, "mfa-token", f.srv.GetToken())
		assert.Equal(t, 1, f.events.count(entity.EventAuthenticationFailed))
	})

	t.Run("malformed code never reaches the provider", func(t *testing.T) {
		f := createTestAuthService(t)
		f.loginAs(t, newTestSession(newTestUser(), "access-1", testEpoch.Add(time.Hour)))

		verified := f.srv.VerifyMFA(context.Background(), "12 34")

		assert.False(t, verified.Success)
		assert.Equal(t, domainerrors.CodeMFAInvalidCode, verified.Code)
	})

	t.Run("first verification enables the factor", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().VerifyMFA(mock.Anything, "access-1", "654321").
			Return(&service.MFAVerification{User: user, Enabled: true}, nil).Once()

		verified := f.srv.VerifyMFA(context.Background(), "654321")

		require.True(t, verified.Success)
		assert.True(t, verified.Enabled)
		assert.True(t, f.srv.GetCurrentUser().MFAEnabled)
		assert.Equal(t, 1, f.events.count(entity.EventMFAEnabled))
		assert.Zero(t, f.events.count(entity.EventMFAVerified))
	})

	t.Run("step-up verification", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		user.MFAEnabled = true
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		f.provider.EXPECT().VerifyMFA(mock.Anything, "access-1", "ABCD-123").
			Return(&service.MFAVerification{User: user}, nil).Once()

		verified := f.srv.VerifyMFA(context.Background(), "ABCD-123")

		require.True(t, verified.Success)
		assert.Equal(t, 1, f.events.count(entity.EventMFAVerified))
	})

	t.Run("verify without a session", func(t *testing.T) {
		f := createTestAuthService(t)

		verified := f.srv.VerifyMFA(context.Background(), "123456")

		assert.Equal(t, domainerrors.CodeNotAuthenticated, verified.Code)
	})

	t.Run("setup and disable", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		user.MFAEnabled = true
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		setup := &entity.MFASetup{FactorID: "factor-1", Secret: "JBSWY3DPEHPK3PXP", OTPAuthURL: "otpauth://totp/authhub:jane"}
		f.provider.EXPECT().SetupMFA(mock.Anything, "access-1").Return(setup, nil).Once()
		f.provider.EXPECT().DisableMFA(mock.Anything, "access-1", "123456").Return(nil).Once()

		setupResult := f.srv.SetupMFA(context.Background())
		require.True(t, setupResult.Success)
		assert.Equal(t, "factor-1", setupResult.Setup.FactorID)

		disabled := f.srv.DisableMFA(context.Background(), "123456")
		require.True(t, disabled.Success)
		assert.False(t, f.srv.GetCurrentUser().MFAEnabled)
		assert.Equal(t, 1, f.events.count(entity.EventMFASetupStarted))
		assert.Equal(t, 1, f.events.count(entity.EventMFADisabled))
	})
}

func TestAuthService_Restore(t *testing.T) {
	seed := func(f authServiceFixtures, token string, lastActivity time.Time) {
		ctx := context.Background()
		_ = f.storage.SetItem(ctx, service.StorageKeyAuthToken, token)
		_ = f.storage.SetItem(ctx, service.StorageKeyLastActivity, lastActivity.Format(time.RFC3339Nano))
	}

	t.Run("recent session is rehydrated", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		token := signedTestToken(t, testEpoch.Add(time.Hour))
		seed(f, token, testEpoch.Add(-5*time.Minute))

		f.provider.EXPECT().GetCurrentUser(mock.Anything, token).Return(user, nil).Once()

		assert.True(t, f.srv.Restore(context.Background()))
		assert.True(t, f.srv.IsAuthenticated())
		expiry := f.srv.GetTokenExpiry()
		require.NotNil(t, expiry)
		assert.True(t, expiry.Equal(testEpoch.Add(time.Hour)))

		logins := f.events.ofType(entity.EventUserLoggedIn)
		require.Len(t, logins, 1)
		assert.Equal(t, "restored", logins[0].Reason)

		// Already restored: no second provider call.
		assert.True(t, f.srv.Restore(context.Background()))
	})

	t.Run("restored session counts as active", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser()
		token := signedTestToken(t, testEpoch.Add(time.Hour))
		require.NoError(t, f.storage.SetItem(context.Background(), service.StorageKeyAuthToken, token))

		f.provider.EXPECT().GetCurrentUser(mock.Anything, token).Return(user, nil).Once()

		require.True(t, f.srv.Restore(context.Background()))
		raw, ok, err := f.storage.GetItem(context.Background(), service.StorageKeyLastActivity)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, testEpoch.Format(time.RFC3339Nano), raw)

		// Idle check plus refresh.
		f.clock.Advance(testCheckInterval)
		waitForTimers(t, f.clock, 2)

		assert.True(t, f.srv.IsAuthenticated())
		assert.Zero(t, f.events.count(entity.EventUserLoggedOut))
	})

	t.Run("idle session is discarded", func(t *testing.T) {
		f := createTestAuthService(t)
		seed(f, signedTestToken(t, testEpoch.Add(time.Hour)), testEpoch.Add(-2*time.Hour))

		assert.False(t, f.srv.Restore(context.Background()))
		assert.False(t, f.storage.has(service.StorageKeyAuthToken))
		assert.False(t, f.storage.has(service.StorageKeyLastActivity))
		assert.Equal(t, 1, f.events.count(entity.EventAuthStateRecoveryFailed))
	})

	t.Run("rejected token is discarded", func(t *testing.T) {
		f := createTestAuthService(t)
		token := signedTestToken(t, testEpoch.Add(time.Hour))
		seed(f, token, testEpoch)

		f.provider.EXPECT().GetCurrentUser(mock.Anything, token).
			Return(nil, errors.WithStack(domainerrors.ErrSessionExpired)).Once()

		assert.False(t, f.srv.Restore(context.Background()))
		assert.False(t, f.storage.has(service.StorageKeyAuthToken))
		failures := f.events.ofType(entity.EventAuthStateRecoveryFailed)
		require.Len(t, failures, 1)
		assert.Equal(t, domainerrors.ErrSessionExpired.Message(), failures[0].Reason)
	})

	t.Run("empty storage", func(t *testing.T) {
		f := createTestAuthService(t)

		assert.False(t, f.srv.Restore(context.Background()))
		assert.Empty(t, f.events.all())
	})
}

type oauthCapableProvider struct {
	*mockSvc.MockAuthDataProvider
	*mockSvc.MockOAuthProvider
}

func TestAuthService_OAuth(t *testing.T) {
	setup := func(t *testing.T) (authServiceFixtures, *mockSvc.MockOAuthProvider) {
		data := mockSvc.NewMockAuthDataProvider(t)
		oauth := mockSvc.NewMockOAuthProvider(t)

		return buildAuthService(t, data, oauthCapableProvider{data, oauth}), oauth
	}

	t.Run("code exchange signs in and syncs the profile", func(t *testing.T) {
		f, oauth := setup(t)
		user := newTestUser()

		oauth.EXPECT().AuthorizationURL(mock.Anything, "google", "state-1").Return(&service.OAuthAuthorization{
			URL:          "https://accounts.google.com/o/oauth2/auth?state=state-1",
			CodeVerifier: "verifier-1",
		}, nil).Once()
		oauth.EXPECT().ExchangeCode(mock.Anything, "google", "code-1", "verifier-1").
			Return(newTestSession(user, "access-1", testEpoch.Add(time.Hour)), nil).Once()
		oauth.EXPECT().FetchUserProfile(mock.Anything, "google", "access-1").Return(&service.OAuthUser{
			ID:            "google-42",
			Name:          "Jane G",
			AvatarURL:     "https://example.com/jane.png",
			EmailVerified: true,
		}, nil).Once()
		oauth.EXPECT().SetProviderMetadata(mock.Anything, "access-1", "google", mock.MatchedBy(func(m map[string]any) bool {
			return m["provider_user_id"] == "google-42" && m["avatar_url"] == "https://example.com/jane.png"
		})).Return(nil).Once()

		url, err := f.srv.OAuthAuthorizationURL(context.Background(), "Google", "state-1")
		require.NoError(t, err)
		assert.Contains(t, url, "accounts.google.com")

		result := f.srv.CompleteOAuth(context.Background(), "google", "code-1", "state-1")

		require.True(t, result.Success)
		assert.True(t, f.srv.IsAuthenticated())
		assert.Equal(t, "https://example.com/jane.png", f.srv.GetCurrentUser().AvatarURL)
		logins := f.events.ofType(entity.EventUserLoggedIn)
		require.Len(t, logins, 1)
		assert.Equal(t, "google", logins[0].Provider)
	})

	t.Run("unknown state is rejected", func(t *testing.T) {
		f, _ := setup(t)

		result := f.srv.CompleteOAuth(context.Background(), "google", "code-1", "forged")

		assert.False(t, result.Success)
		assert.Equal(t, domainerrors.CodeOAuthFailed, result.Code)
	})

	t.Run("state expires", func(t *testing.T) {
		f, oauth := setup(t)

		oauth.EXPECT().AuthorizationURL(mock.Anything, "google", "state-1").
			Return(&service.OAuthAuthorization{URL: "https://accounts.google.com", CodeVerifier: "v"}, nil).Once()

		_, err := f.srv.OAuthAuthorizationURL(context.Background(), "google", "state-1")
		require.NoError(t, err)

		f.clock.Advance(oauthStateTTL + time.Second)

		result := f.srv.CompleteOAuth(context.Background(), "google", "code-1", "state-1")
		assert.Equal(t, domainerrors.CodeOAuthFailed, result.Code)
	})

	t.Run("provider without oauth support", func(t *testing.T) {
		f := createTestAuthService(t)

		_, err := f.srv.OAuthAuthorizationURL(context.Background(), "google", "state-1")

		assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotSupported))
		assert.Equal(t, domainerrors.CodeOAuthNotSupported, f.srv.CompleteOAuth(context.Background(), "google", "c", "s").Code)
	})
}

func TestAuthService_PostNeverDropsSignals(t *testing.T) {
	srv := &authService{
		signals: make(chan trackerSignal, 1),
		done:    make(chan struct{}),
		logger:  newDiscardLogger(),
	}
	defer close(srv.done)

	srv.post(trackerSignal{kind: signalRefreshDue, epoch: 1})
	srv.post(trackerSignal{kind: signalSessionTimeout, epoch: 1})

	received := []trackerSignal{<-srv.signals, <-srv.signals}
	assert.ElementsMatch(t, []trackerSignal{
		{kind: signalRefreshDue, epoch: 1},
		{kind: signalSessionTimeout, epoch: 1},
	}, received)
}

func TestAuthService_StorageFailures(t *testing.T) {
	storageErr := errors.New("redis: connection refused")

	t.Run("session survives failed writes and still clears", func(t *testing.T) {
		storage := mockSvc.NewMockAuthStorage(t)
		storage.EXPECT().SetItem(mock.Anything, mock.Anything, mock.Anything).Return(storageErr)
		storage.EXPECT().RemoveItem(mock.Anything, service.StorageKeyAuthToken).Return(storageErr).Once()
		storage.EXPECT().RemoveItem(mock.Anything, service.StorageKeyLastActivity).Return(storageErr).Once()

		f := createTestAuthService(t, func(cfg *AuthServiceConfig) { cfg.Storage = storage })
		user := newTestUser()
		f.loginAs(t, newTestSession(user, "access-1", testEpoch.Add(time.Hour)))

		assert.True(t, f.srv.IsAuthenticated())
		assert.Equal(t, "access-1", f.srv.GetToken())

		f.provider.EXPECT().Logout(mock.Anything, "access-1").Return(nil).Once()

		f.srv.Logout(context.Background())

		assert.False(t, f.srv.IsAuthenticated())
		assert.Empty(t, f.srv.GetToken())
		waitForTimers(t, f.clock, 0)
		assert.Equal(t, 1, f.events.count(entity.EventUserLoggedOut))
	})

	t.Run("unreadable storage restores nothing", func(t *testing.T) {
		storage := mockSvc.NewMockAuthStorage(t)
		storage.EXPECT().GetItem(mock.Anything, service.StorageKeyAuthToken).Return("", false, storageErr).Once()

		f := createTestAuthService(t, func(cfg *AuthServiceConfig) { cfg.Storage = storage })

		assert.False(t, f.srv.Restore(context.Background()))
		assert.False(t, f.srv.IsAuthenticated())
		assert.Empty(t, f.events.all())
	})
}
