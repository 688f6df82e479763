package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"authhub/config"
	"authhub/internal/delivery/http/middleware"
	"authhub/internal/delivery/http/response"
	"authhub/internal/delivery/http/router"
	"authhub/internal/delivery/http/router/handler"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/infra/storage"
	mockSvc "authhub/internal/mocks/service"
	"authhub/internal/usecase"
	"authhub/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type serverFixture struct {
	echo     *echo.Echo
	provider *mockSvc.MockAuthDataProvider
	registry usecase.SessionRegistry
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenLifetimeDays:    7,
			IdleTimeout:          30 * time.Minute,
			SessionCheckInterval: time.Minute,
			RefreshThreshold:     5 * time.Minute,
		},
	}
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.HTTP.Cookie.Name = "authhub_sid"
	cfg.HTTP.Cookie.SameSite = "lax"

	return cfg
}

func setupServer(t *testing.T) *serverFixture {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := mockSvc.NewMockAuthDataProvider(t)
	audit := mockSvc.NewMockAuditLogger(t)
	audit.EXPECT().LogUserAction(mock.Anything, mock.Anything).Maybe()

	fakeClock := clockwork.NewFakeClockAt(testNow)
	lc := fxtest.NewLifecycle(t)
	registry := impl.NewSessionRegistry(impl.SessionRegistryParams{
		Lc: lc,
		Factory: impl.NewAuthServiceFactory(impl.AuthServiceFactoryParams{
			Config:   cfg,
			Provider: provider,
			Audit:    audit,
			Clock:    fakeClock,
			Logger:   logger,
		}),
		Storage: storage.NewMemoryFactory(),
		Config:  cfg,
		Clock:   fakeClock,
		Logger:  logger,
	})
	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	sessions := middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
		Registry: registry,
		Cookie:   middleware.NewSessionCookie(cfg),
		Logger:   logger,
	})
	r := router.NewRouter(router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			Config:   cfg,
			Registry: registry,
			Sessions: sessions,
			Logger:   logger,
		}),
		SessionMiddleware: sessions,
	})

	return &serverFixture{
		echo:     NewEcho(cfg, logger, r),
		provider: provider,
		registry: registry,
	}
}

func (f *serverFixture) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var resp response.Response
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}

	return rec, resp
}

// sessionCookie returns the session cookie the browser keeps, which is the
// last one set by the response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	var last *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "authhub_sid" {
			last = c
		}
	}
	require.NotNil(t, last, "session cookie not set")

	return last
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

func (f *serverFixture) login(t *testing.T, user *entity.User, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	f.provider.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(c entity.LoginCredentials) bool { return c.Email == user.Email })).
		Return(&service.ProviderSession{
			User:         user,
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresAt:    testNow.Add(time.Hour),
		}, nil).Once()

	return f.do(t, http.MethodPost, "/auth/login", body, cookies...)
}

func TestServer_HealthCheck(t *testing.T) {
	f := setupServer(t)

	rec, resp := f.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]any{"status": "ok", "sessions": float64(0)}, resp.Data)
	assert.Empty(t, rec.Result().Cookies())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_LoginThenMe(t *testing.T) {
	f := setupServer(t)
	user := newTestUser()

	rec, resp := f.login(t, user, `{"email":"jane@example.com","password":"s3cret!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["authenticated"])
	assert.Equal(t, "jane@example.com", data["user"].(map[string]any)["email"])

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Zero(t, cookie.MaxAge, "session cookie without remember me")

	rec, resp = f.do(t, http.MethodGet, "/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String(), resp.Data.(map[string]any)["user"].(map[string]any)["id"])
	assert.Equal(t, 1, f.registry.Len())
}

func TestServer_LoginRememberMe(t *testing.T) {
	f := setupServer(t)

	rec, _ := f.login(t, newTestUser(), `{"email":"jane@example.com","password":"s3cret!","remember_me":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	persistent := sessionCookie(t, rec)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), persistent.MaxAge)
}

func TestServer_LoginFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid credentials",
			err:        errors.WithStack(domainerrors.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.CodeInvalidCredentials,
		},
		{
			name:       "email not verified",
			err:        errors.WithStack(domainerrors.ErrEmailNotVerified),
			wantStatus: http.StatusForbidden,
			wantCode:   domainerrors.CodeEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupServer(t)
			f.provider.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec, resp := f.do(t, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"wrong"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestServer_LoginRateLimited(t *testing.T) {
	f := setupServer(t)
	f.provider.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewRateLimitError(90*time.Second, 0)).Once()

	rec, resp := f.do(t, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "90", rec.Header().Get(response.HeaderRetryAfter))
	assert.Equal(t, "0", rec.Header().Get(response.HeaderRateLimitRemaining))
	assert.Equal(t, domainerrors.CodeRateLimitExceeded, resp.Error.Code)
}

func TestServer_RequestValidation(t *testing.T) {
	f := setupServer(t)

	rec, resp := f.do(t, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.CodeValidationFailed, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "password is required")

	rec, resp = f.do(t, http.MethodPost, "/auth/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestServer_SignedInRoutesRequireSession(t *testing.T) {
	f := setupServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/auth/me"},
		{http.MethodPut, "/auth/password"},
		{http.MethodDelete, "/auth/account"},
		{http.MethodPost, "/auth/mfa/setup"},
		{http.MethodPost, "/auth/mfa/disable"},
	} {
		rec, resp := f.do(t, route.method, route.path, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
		assert.Equal(t, domainerrors.CodeNotAuthenticated, resp.Error.Code, route.path)
	}
	assert.Zero(t, f.registry.Len())
}

func TestServer_LoginRotatesSessionID(t *testing.T) {
	f := setupServer(t)
	f.provider.EXPECT().ResetPassword(mock.Anything, "jane@example.com").Return(nil).Once()

	rec, _ := f.do(t, http.MethodPost, "/auth/password/reset", `{"email":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	anonymous := sessionCookie(t, rec)

	rec, _ = f.login(t, newTestUser(), `{"email":"jane@example.com","password":"s3cret!"}`, anonymous)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	signedIn := sessionCookie(t, rec)
	assert.NotEqual(t, anonymous.Value, signedIn.Value)

	rec, _ = f.do(t, http.MethodGet, "/auth/me", "", anonymous)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, resp := f.do(t, http.MethodGet, "/auth/me", "", signedIn)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp.Data.(map[string]any)["authenticated"])
	assert.Equal(t, 1, f.registry.Len())
}

func TestServer_PlantedSessionCookieIsNotAdopted(t *testing.T) {
	f := setupServer(t)
	planted := &http.Cookie{Name: "authhub_sid", Value: strings.Repeat("p", 43)}

	rec, _ := f.do(t, http.MethodGet, "/auth/me", "", planted)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	cleared := sessionCookie(t, rec)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)

	rec, _ = f.login(t, newTestUser(), `{"email":"jane@example.com","password":"s3cret!"}`, planted)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	issued := sessionCookie(t, rec)
	assert.NotEqual(t, planted.Value, issued.Value)

	rec, _ = f.do(t, http.MethodGet, "/auth/me", "", planted)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/auth/me", "", issued)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AnonymousReadsRegisterNoSession(t *testing.T) {
	f := setupServer(t)

	for i := range 20 {
		unknown := &http.Cookie{Name: "authhub_sid", Value: strings.Repeat(string(rune('a'+i)), 43)}

		rec, _ := f.do(t, http.MethodGet, "/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec, _ = f.do(t, http.MethodGet, "/auth/me", "", unknown)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec, _ = f.do(t, http.MethodPost, "/auth/refresh", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	assert.Zero(t, f.registry.Len())
}

func TestServer_Logout(t *testing.T) {
	f := setupServer(t)

	rec, _ := f.login(t, newTestUser(), `{"email":"jane@example.com","password":"s3cret!"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	f.provider.EXPECT().Logout(mock.Anything, "access-1").Return(nil).Once()

	rec, resp := f.do(t, http.MethodPost, "/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, -1, sessionCookie(t, rec).MaxAge)
	assert.Zero(t, f.registry.Len())

	rec, _ = f.do(t, http.MethodGet, "/auth/me", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_MFALoginRotatesSessionID(t *testing.T) {
	f := setupServer(t)
	user := newTestUser()

	f.provider.EXPECT().Login(mock.Anything, mock.Anything).Return(&service.ProviderSession{
		User:        user,
		RequiresMFA: true,
		MFAToken:    "mfa-token",
	}, nil).Once()

	rec, resp := f.do(t, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"s3cret!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, resp.Data.(map[string]any)["requires_mfa"])
	pending := sessionCookie(t, rec)

	f.provider.EXPECT().VerifyMFA(mock.Anything, "mfa-token", "123456").Return(&service.MFAVerification{
		Session: &service.ProviderSession{
			User:         user,
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresAt:    testNow.Add(time.Hour),
		},
	}, nil).Once()

	rec, resp = f.do(t, http.MethodPost, "/auth/mfa/verify", `{"code":"123456"}`, pending)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, resp.Data.(map[string]any)["logged_in"])
	signedIn := sessionCookie(t, rec)
	assert.NotEqual(t, pending.Value, signedIn.Value)

	rec, _ = f.do(t, http.MethodGet, "/auth/me", "", pending)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = f.do(t, http.MethodGet, "/auth/me", "", signedIn)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_PasswordResetHidesUnknownEmail(t *testing.T) {
	f := setupServer(t)
	f.provider.EXPECT().ResetPassword(mock.Anything, "nobody@example.com").Return(nil).Once()

	rec, resp := f.do(t, http.MethodPost, "/auth/password/reset", `{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "If the address is registered, a link has been sent", resp.Message)
}

func TestServer_RefreshWithoutSession(t *testing.T) {
	f := setupServer(t)

	rec, resp := f.do(t, http.MethodPost, "/auth/refresh", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.CodeSessionExpired, resp.Error.Code)
}

func TestServer_OAuthUnsupportedProvider(t *testing.T) {
	f := setupServer(t)

	rec, resp := f.do(t, http.MethodGet, "/auth/oauth/github/authorize", "")

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, domainerrors.CodeOAuthNotSupported, resp.Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := setupServer(t)

	rec, resp := f.do(t, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
}
