package handler

import (
	"net/http"
	"net/url"
	"strings"

	"authhub/internal/delivery/http/response"
	"authhub/internal/util"

	"github.com/labstack/echo/v4"
)

// OAuthAuthorize redirects the browser to the provider's consent screen.
func (h *AuthHandler) OAuthAuthorize(c echo.Context) error {
	auth, err := h.session(c)
	if err != nil {
		return err
	}

	state, err := util.RandomToken(24)
	if err != nil {
		return err
	}

	redirect, err := auth.OAuthAuthorizationURL(c.Request().Context(), c.Param("provider"), state)
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, redirect)
}

// OAuthCallback completes the sign-in started by OAuthAuthorize. With a
// public URL configured the browser is sent back to the app, otherwise the
// result is returned as JSON.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	auth, err := h.session(c)
	if err != nil {
		return err
	}

	if providerErr := c.QueryParam("error"); providerErr != "" {
		h.logger.WarnContext(c.Request().Context(), "OAuth provider returned an error",
			"provider", c.Param("provider"), "error", providerErr)

		return h.oauthOutcome(c, false, "OAUTH_FAILED", c.QueryParam("error_description"))
	}

	result := auth.CompleteOAuth(c.Request().Context(), c.Param("provider"), c.QueryParam("code"), c.QueryParam("state"))
	if err := h.signedIn(c, result, false); err != nil {
		return err
	}
	if h.publicURL == "" {
		return writeAuthResult(c, http.StatusOK, result, "Logged in")
	}

	return h.oauthOutcome(c, result.Success, result.Code, result.Error)
}

func (h *AuthHandler) oauthOutcome(c echo.Context, success bool, code, message string) error {
	if h.publicURL == "" {
		return response.Failure(c, code, message)
	}

	query := url.Values{}
	if success {
		query.Set("status", "success")
	} else {
		query.Set("status", "error")
		query.Set("code", code)
	}

	return c.Redirect(http.StatusFound, strings.TrimRight(h.publicURL, "/")+"/auth/callback?"+query.Encode())
}
