package handler

import (
	"log/slog"
	"net/http"
	"time"

	"authhub/config"
	"authhub/internal/delivery/http/middleware"
	"authhub/internal/delivery/http/response"
	"authhub/internal/delivery/http/validator"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Config   *config.Config
	Registry usecase.SessionRegistry
	Sessions *middleware.SessionMiddleware
	Logger   *slog.Logger
}

// AuthHandler serves the session endpoints of the client session bound to
// the request by the session middleware.
type AuthHandler struct {
	registry  usecase.SessionRegistry
	sessions  *middleware.SessionMiddleware
	publicURL string
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		registry:  params.Registry,
		sessions:  params.Sessions,
		publicURL: params.Config.Auth.PublicURL,
		logger:    params.Logger.With("component", "auth_handler"),
	}
}

// LoginRequest represents the request body for password login
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required"`
	Name     string         `json:"name" validate:"max=200"`
	Metadata map[string]any `json:"metadata"`
}

// UserView is the public representation of a user.
type UserView struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Name          string         `json:"name,omitempty"`
	EmailVerified bool           `json:"email_verified"`
	MFAEnabled    bool           `json:"mfa_enabled"`
	Roles         []string       `json:"roles"`
	AvatarURL     string         `json:"avatar_url,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// SessionView describes the client session after an operation.
type SessionView struct {
	Authenticated             bool       `json:"authenticated"`
	User                      *UserView  `json:"user,omitempty"`
	ExpiresAt                 *time.Time `json:"expires_at,omitempty"`
	RequiresMFA               bool       `json:"requires_mfa,omitempty"`
	RequiresEmailVerification bool       `json:"requires_email_verification,omitempty"`
}

func toUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
		MFAEnabled:    user.MFAEnabled,
		Roles:         user.Roles.ToStrings(),
		AvatarURL:     user.AvatarURL,
		Metadata:      user.Metadata,
	}
}

// session returns the request's orchestrator, opening a session when the
// request carries none.
func (h *AuthHandler) session(c echo.Context) (usecase.AuthUsecase, error) {
	return h.sessions.Open(c)
}

// signedIn moves the session to a fresh id once result has established it.
func (h *AuthHandler) signedIn(c echo.Context, result *entity.AuthResult, persistent bool) error {
	if !result.Success || result.Token == "" || result.RequiresMFA {
		return nil
	}

	return h.sessions.Rotate(c, persistent)
}

// bind decodes and validates the request body into req. It writes the error
// response itself and reports false when the request is rejected.
func bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.Describe(err))
	}

	return true, nil
}

func writeAuthResult(c echo.Context, status int, result *entity.AuthResult, message string) error {
	if !result.Success {
		if result.Code == domainerrors.CodeRateLimitExceeded {
			return response.RateLimited(c, result.Error, result.RetryAfter, result.RemainingAttempts)
		}

		return response.Failure(c, result.Code, result.Error)
	}

	view := &SessionView{
		Authenticated:             result.Token != "" && !result.RequiresMFA,
		User:                      toUserView(result.User),
		ExpiresAt:                 result.ExpiresAt,
		RequiresMFA:               result.RequiresMFA,
		RequiresEmailVerification: result.RequiresEmailVerification,
	}
	if result.RequiresMFA {
		message = "Enter the code from your authenticator app"
	}

	return response.Success(c, status, view, message)
}

func writeOperation(c echo.Context, result *entity.OperationResult, message string) error {
	if !result.Success {
		return response.Failure(c, result.Code, result.Error)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// Login handles password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	result := auth.Login(c.Request().Context(), entity.LoginCredentials{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err := h.signedIn(c, result, req.RememberMe); err != nil {
		return err
	}

	return writeAuthResult(c, http.StatusOK, result, "Logged in")
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	result := auth.Register(c.Request().Context(), entity.RegisterPayload{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Metadata: req.Metadata,
	})

	if err := h.signedIn(c, result, false); err != nil {
		return err
	}

	message := "Account created"
	if result.RequiresEmailVerification {
		message = "Account created, check your inbox to verify your email"
	}

	return writeAuthResult(c, http.StatusCreated, result, message)
}

// Logout ends the client session and forgets its cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if auth, ok := middleware.GetSession(c); ok {
		auth.Logout(c.Request().Context())
	}
	h.sessions.End(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Refresh renews the session token ahead of the automatic refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	auth, ok := middleware.GetSession(c)
	if !ok || !auth.RefreshToken(c.Request().Context()) {
		return response.Unauthorized(c, domainerrors.CodeSessionExpired, domainerrors.ErrSessionExpired.Message())
	}

	return response.Success(c, http.StatusOK, currentSession(auth), "Session refreshed")
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(c echo.Context) error {
	auth, err := h.session(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, currentSession(auth), "")
}

func currentSession(auth usecase.AuthUsecase) *SessionView {
	return &SessionView{
		Authenticated: auth.IsAuthenticated(),
		User:          toUserView(auth.GetCurrentUser()),
		ExpiresAt:     auth.GetTokenExpiry(),
	}
}
