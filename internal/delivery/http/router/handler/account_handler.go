package handler

import (
	"net/http"

	"authhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// EmailRequest carries the address for link-sending operations.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenRequest carries a one-time token delivered by email.
type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ResetConfirmRequest completes a password reset.
type ResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// UpdatePasswordRequest changes the password of the signed-in user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,nefield=CurrentPassword"`
}

// DeleteAccountRequest confirms account deletion with the password.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// linkSent is returned whether or not the address is known.
const linkSent = "If the address is registered, a link has been sent"

// ResetPassword sends a password reset link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req EmailRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	return writeOperation(c, auth.ResetPassword(c.Request().Context(), req.Email), linkSent)
}

// VerifyResetToken checks a reset token before the new password is asked for.
func (h *AuthHandler) VerifyResetToken(c echo.Context) error {
	var req TokenRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	return writeOperation(c, auth.VerifyPasswordResetToken(c.Request().Context(), req.Token), "Token is valid")
}

// ConfirmReset sets a new password with a reset token.
func (h *AuthHandler) ConfirmReset(c echo.Context) error {
	var req ResetConfirmRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	result := auth.UpdatePasswordWithToken(c.Request().Context(), req.Token, req.NewPassword)

	return writeOperation(c, result, "Password updated")
}

// UpdatePassword changes the password of the signed-in user.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	if err := auth.UpdatePassword(c.Request().Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}

// SendVerification resends the email verification link.
func (h *AuthHandler) SendVerification(c echo.Context) error {
	var req EmailRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	return writeOperation(c, auth.SendVerificationEmail(c.Request().Context(), req.Email), linkSent)
}

// VerifyEmail confirms an email address.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req TokenRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	if err := auth.VerifyEmail(c.Request().Context(), req.Token); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}

// SendMagicLink emails a passwordless sign-in link.
func (h *AuthHandler) SendMagicLink(c echo.Context) error {
	var req EmailRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	return writeOperation(c, auth.SendMagicLink(c.Request().Context(), req.Email), linkSent)
}

// VerifyMagicLink signs in with a magic link token.
func (h *AuthHandler) VerifyMagicLink(c echo.Context) error {
	var req TokenRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	result := auth.VerifyMagicLink(c.Request().Context(), req.Token)
	if err := h.signedIn(c, result, false); err != nil {
		return err
	}

	return writeAuthResult(c, http.StatusOK, result, "Logged in")
}

// DeleteAccount removes the signed-in user and ends the client session.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	var req DeleteAccountRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	if err := auth.DeleteAccount(c.Request().Context(), req.Password); err != nil {
		return err
	}

	h.sessions.End(c)

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}
