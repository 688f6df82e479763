package impl

import (
	"context"
	"log/slog"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
)

func (srv *authService) SetupMFA(ctx context.Context) *entity.MFASetupResult {
	token, user, err := srv.sessionToken()
	if err != nil {
		return mfaSetupFailure(err)
	}

	setup, err := srv.mfa.Setup(ctx, token)
	if err != nil {
		srv.log(ctx).Warn("MFA setup failed", slog.String("user_id", user.ID.String()), slog.Any("error", err))

		return mfaSetupFailure(err)
	}

	srv.emit(entity.AuthEvent{Type: entity.EventMFASetupStarted, UserID: user.ID})

	return &entity.MFASetupResult{Success: true, Setup: setup}
}

// VerifyMFA completes a pending login challenge, finishes enrolment of a new
// factor, or performs a step-up check, depending on the session state.
func (srv *authService) VerifyMFA(ctx context.Context, code string) *entity.MFAVerifyResult {
	srv.mu.Lock()
	token := srv.state.Token
	pending := srv.state.MFAPending
	epoch := srv.epoch
	user := srv.state.User.Clone()
	srv.mu.Unlock()

	if token == "" {
		return mfaVerifyFailure(errors.WithStack(domainerrors.ErrNotAuthenticated))
	}

	verification, err := srv.mfa.Verify(ctx, token, code)
	if err != nil {
		srv.log(ctx).Info("MFA verification failed", slog.Bool("pending_login", pending), slog.Any("error", err))
		srv.recordAudit(ctx, auditMFAVerify, entity.AuditFailure, user, nil)
		result := mfaVerifyFailure(err)
		if pending {
			event := entity.AuthEvent{Type: entity.EventAuthenticationFailed, Reason: result.Code}
			if user != nil {
				event.UserID = user.ID
				event.Email = user.Email
			}
			srv.emit(event)
		}

		return result
	}
	srv.recordAudit(ctx, auditMFAVerify, entity.AuditSuccess, user, map[string]any{"pending_login": pending})

	if pending {
		return srv.completeMFALogin(ctx, epoch, verification.Session)
	}

	srv.mu.Lock()
	if srv.epoch != epoch || srv.state.User == nil {
		srv.mu.Unlock()

		return mfaVerifyFailure(errors.WithStack(domainerrors.ErrSessionExpired))
	}
	if verification.Enabled {
		srv.state.User.MFAEnabled = true
	}
	current := srv.state.User.Clone()
	srv.mu.Unlock()

	eventType := entity.EventMFAVerified
	if verification.Enabled {
		eventType = entity.EventMFAEnabled
	}
	srv.emit(entity.AuthEvent{Type: eventType, UserID: current.ID})

	return &entity.MFAVerifyResult{Success: true, Enabled: verification.Enabled, User: current}
}

func (srv *authService) completeMFALogin(ctx context.Context, epoch uint64, sess *service.ProviderSession) *entity.MFAVerifyResult {
	err := checkSession(sess)
	if err == nil && sess.RequiresMFA {
		err = errors.WithStack(domainerrors.ErrProvider.WithDetails("challenge still pending after verification"))
	}
	if err != nil {
		srv.log(ctx).Error("Provider returned no session for a verified MFA challenge", slog.Any("error", err))

		return mfaVerifyFailure(err)
	}

	srv.mu.Lock()
	if srv.epoch != epoch || !srv.state.MFAPending {
		srv.mu.Unlock()

		return mfaVerifyFailure(errors.WithStack(domainerrors.ErrSessionExpired))
	}
	srv.establishLocked(ctx, sess)
	user := srv.state.User.Clone()
	srv.mu.Unlock()

	srv.emit(entity.AuthEvent{
		Type:     entity.EventUserLoggedIn,
		UserID:   user.ID,
		Email:    user.Email,
		Provider: "mfa",
	})
	srv.recordAudit(ctx, auditLogin, entity.AuditSuccess, user, map[string]any{"method": "mfa"})

	return &entity.MFAVerifyResult{Success: true, LoggedIn: true, User: user}
}

func (srv *authService) DisableMFA(ctx context.Context, code string) *entity.OperationResult {
	token, user, err := srv.sessionToken()
	if err != nil {
		return operationFailure(err)
	}

	if err := srv.mfa.Disable(ctx, token, code); err != nil {
		srv.log(ctx).Warn("MFA disable failed", slog.String("user_id", user.ID.String()), slog.Any("error", err))
		srv.recordAudit(ctx, auditMFADisable, entity.AuditFailure, user, nil)

		return operationFailure(err)
	}

	srv.mu.Lock()
	if srv.state.User != nil && srv.state.User.ID == user.ID {
		srv.state.User.MFAEnabled = false
	}
	srv.mu.Unlock()

	srv.emit(entity.AuthEvent{Type: entity.EventMFADisabled, UserID: user.ID})
	srv.recordAudit(ctx, auditMFADisable, entity.AuditSuccess, user, nil)

	return operationSuccess()
}

func mfaSetupFailure(err error) *entity.MFASetupResult {
	appErr := toAppError(err)

	return &entity.MFASetupResult{Success: false, Error: appErr.Message(), Code: appErr.ErrorCode()}
}

func mfaVerifyFailure(err error) *entity.MFAVerifyResult {
	appErr := toAppError(err)

	return &entity.MFAVerifyResult{Success: false, Error: appErr.Message(), Code: appErr.ErrorCode()}
}
