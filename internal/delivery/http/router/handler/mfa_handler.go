package handler

import (
	"net/http"

	"authhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// MFACodeRequest carries a TOTP or backup code.
type MFACodeRequest struct {
	Code string `json:"code" validate:"required,min=6,max=16"`
}

// MFASetupView is returned once on enrolment; the backup codes are not retrievable later.
type MFASetupView struct {
	FactorID    string   `json:"factor_id"`
	Secret      string   `json:"secret"`
	OTPAuthURL  string   `json:"otpauth_url"`
	QRCode      string   `json:"qr_code"`
	BackupCodes []string `json:"backup_codes,omitempty"`
}

// MFAVerifyView reports what a verified code did.
type MFAVerifyView struct {
	Enabled  bool      `json:"enabled"`
	LoggedIn bool      `json:"logged_in"`
	User     *UserView `json:"user,omitempty"`
}

// SetupMFA starts TOTP enrolment.
func (h *AuthHandler) SetupMFA(c echo.Context) error {
	auth, err := h.session(c)
	if err != nil {
		return err
	}

	result := auth.SetupMFA(c.Request().Context())
	if !result.Success {
		return response.Failure(c, result.Code, result.Error)
	}

	return response.Success(c, http.StatusOK, &MFASetupView{
		FactorID:    result.Setup.FactorID,
		Secret:      result.Setup.Secret,
		OTPAuthURL:  result.Setup.OTPAuthURL,
		QRCode:      result.Setup.QRCode,
		BackupCodes: result.Setup.BackupCodes,
	}, "Scan the QR code and confirm with a code")
}

// VerifyMFA confirms enrolment, or completes a login waiting for a second factor.
func (h *AuthHandler) VerifyMFA(c echo.Context) error {
	var req MFACodeRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	result := auth.VerifyMFA(c.Request().Context(), req.Code)
	if !result.Success {
		return response.Failure(c, result.Code, result.Error)
	}

	if result.LoggedIn {
		if err := h.sessions.Rotate(c, false); err != nil {
			return err
		}
	}

	message := "Code verified"
	switch {
	case result.LoggedIn:
		message = "Logged in"
	case result.Enabled:
		message = "Two-factor authentication enabled"
	}

	return response.Success(c, http.StatusOK, &MFAVerifyView{
		Enabled:  result.Enabled,
		LoggedIn: result.LoggedIn,
		User:     toUserView(result.User),
	}, message)
}

// DisableMFA removes the TOTP factor after checking a code.
func (h *AuthHandler) DisableMFA(c echo.Context) error {
	var req MFACodeRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	auth, err := h.session(c)
	if err != nil {
		return err
	}

	return writeOperation(c, auth.DisableMFA(c.Request().Context(), req.Code), "Two-factor authentication disabled")
}
