package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/delivery/http/response"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keySession   = "auth_session"
	keySessionID = "auth_session_id"

	minSessionIDLength = 32
	maxSessionIDLength = 128
)

// SessionCookie writes the opaque client session cookie.
type SessionCookie struct {
	name     string
	domain   string
	secure   bool
	sameSite http.SameSite
	lifetime time.Duration
}

// NewSessionCookie builds the cookie settings from the http.cookie config section.
func NewSessionCookie(cfg *config.Config) *SessionCookie {
	cookie := cfg.HTTP.Cookie

	return &SessionCookie{
		name:     cookie.Name,
		domain:   cookie.Domain,
		secure:   cookie.Secure,
		sameSite: parseSameSite(cookie.SameSite),
		lifetime: cfg.Auth.TokenLifetime(),
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Name returns the cookie name.
func (sc *SessionCookie) Name() string {
	return sc.name
}

// Write sets the cookie. A persistent cookie outlives the browser session
// for the token lifetime ("remember me").
func (sc *SessionCookie) Write(c echo.Context, sessionID string, persistent bool) {
	cookie := sc.base(sessionID)
	if persistent {
		cookie.MaxAge = int(sc.lifetime.Seconds())
		cookie.Expires = time.Now().Add(sc.lifetime)
	}

	c.SetCookie(cookie)
}

// Clear expires the cookie in the browser.
func (sc *SessionCookie) Clear(c echo.Context) {
	cookie := sc.base("")
	cookie.MaxAge = -1

	c.SetCookie(cookie)
}

func (sc *SessionCookie) base(value string) *http.Cookie {
	return &http.Cookie{
		Name:     sc.name,
		Value:    value,
		Path:     "/",
		Domain:   sc.domain,
		Secure:   sc.secure,
		HttpOnly: true,
		SameSite: sc.sameSite,
	}
}

// SessionMiddleware binds each request to the orchestrator of its client session.
type SessionMiddleware struct {
	registry usecase.SessionRegistry
	cookie   *SessionCookie
	logger   *slog.Logger
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Registry usecase.SessionRegistry
	Cookie   *SessionCookie
	Logger   *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		registry: params.Registry,
		cookie:   params.Cookie,
		logger:   params.Logger,
	}
}

// Attach binds the request to the session named by its cookie when the
// registry knows it. Unknown ids are never adopted: their cookie is cleared
// and the request continues without a session. Attach never creates one;
// handlers that need a session call Open.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		client := deliverycontext.ClientInfo{IPAddress: c.RealIP(), UserAgent: req.UserAgent()}
		c.SetRequest(req.WithContext(deliverycontext.WithClientInfo(req.Context(), client)))

		cookie, err := c.Cookie(m.cookie.Name())
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		var auth usecase.AuthUsecase
		found := false
		if validSessionID(cookie.Value) {
			auth, found = m.registry.Resume(c.Request().Context(), cookie.Value)
		}
		if !found {
			m.logger.DebugContext(c.Request().Context(), "Ignoring unknown session cookie")
			m.cookie.Clear(c)

			return next(c)
		}

		bindSession(c, cookie.Value, auth)
		if auth.IsAuthenticated() {
			auth.RecordActivity(c.Request().Context())
		}

		return next(c)
	}
}

// Open returns the session bound to the request, registering a new one with
// a fresh id and cookie when there is none. It must be used AFTER Attach.
func (m *SessionMiddleware) Open(c echo.Context) (usecase.AuthUsecase, error) {
	if auth, ok := GetSession(c); ok {
		return auth, nil
	}

	sessionID, auth, err := m.registry.Create(c.Request().Context())
	if err != nil {
		return nil, err
	}

	m.cookie.Write(c, sessionID, false)
	bindSession(c, sessionID, auth)

	return auth, nil
}

// Rotate moves the request's session to a fresh id and rewrites the cookie.
// It is called whenever the session signs in.
func (m *SessionMiddleware) Rotate(c echo.Context, persistent bool) error {
	auth, ok := GetSession(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "client session not attached")
	}

	sessionID, err := m.registry.Rotate(c.Request().Context(), GetSessionID(c))
	if err != nil {
		return err
	}

	m.cookie.Write(c, sessionID, persistent)
	bindSession(c, sessionID, auth)

	return nil
}

// End forgets the request's session and clears its cookie.
func (m *SessionMiddleware) End(c echo.Context) {
	if sessionID := GetSessionID(c); sessionID != "" {
		m.registry.Remove(sessionID)
	}
	m.cookie.Clear(c)
}

func bindSession(c echo.Context, sessionID string, auth usecase.AuthUsecase) {
	req := c.Request()
	client := deliverycontext.GetClientInfo(req.Context())
	client.SessionID = sessionID
	c.SetRequest(req.WithContext(deliverycontext.WithClientInfo(req.Context(), client)))

	c.Set(keySessionID, sessionID)
	c.Set(keySession, auth)
}

// RequireAuthenticated rejects requests whose session is not signed in.
// It must be used AFTER Attach.
func (m *SessionMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth, ok := GetSession(c)
		if !ok || !auth.IsAuthenticated() {
			return response.Unauthorized(c, domainerrors.CodeNotAuthenticated, domainerrors.ErrNotAuthenticated.Message())
		}

		return next(c)
	}
}

// GetSession returns the orchestrator attached to the request.
func GetSession(c echo.Context) (usecase.AuthUsecase, bool) {
	auth, ok := c.Get(keySession).(usecase.AuthUsecase)

	return auth, ok
}

// GetSessionID returns the client session id attached to the request.
func GetSessionID(c echo.Context) string {
	id, _ := c.Get(keySessionID).(string)

	return id
}

func validSessionID(id string) bool {
	if len(id) < minSessionIDLength || len(id) > maxSessionIDLength {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}

	return true
}
