// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authhub/internal/delivery/http/middleware"
	"authhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware registered on the server, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler *handler.AuthHandler
	sessions    *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler: params.AuthHandler,
		sessions:    params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	h := r.authHandler

	// Health check endpoint, outside the session cookie
	e.GET("/health", h.HealthCheck)

	authGroup := e.Group("/auth", r.sessions.Attach)
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/refresh", h.Refresh)

		authGroup.POST("/password/reset", h.ResetPassword)
		authGroup.POST("/password/reset/verify", h.VerifyResetToken)
		authGroup.POST("/password/reset/confirm", h.ConfirmReset)

		authGroup.POST("/email/verification", h.SendVerification)
		authGroup.POST("/email/verify", h.VerifyEmail)
		authGroup.POST("/magic-link", h.SendMagicLink)
		authGroup.POST("/magic-link/verify", h.VerifyMagicLink)

		// mfa/verify also completes logins that are waiting for a second factor
		authGroup.POST("/mfa/verify", h.VerifyMFA)

		authGroup.GET("/oauth/:provider/authorize", h.OAuthAuthorize)
		authGroup.GET("/oauth/:provider/callback", h.OAuthCallback)
	}

	// Routes that require a signed-in session
	signedIn := r.sessions.RequireAuthenticated
	authGroup.GET("/me", h.Me, signedIn)
	authGroup.PUT("/password", h.UpdatePassword, signedIn)
	authGroup.DELETE("/account", h.DeleteAccount, signedIn)
	authGroup.POST("/mfa/setup", h.SetupMFA, signedIn)
	authGroup.POST("/mfa/disable", h.DisableMFA, signedIn)
}
