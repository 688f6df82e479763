package impl

import (
	"context"
	"log/slog"
	"strings"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"
)

func (srv *authService) ResetPassword(ctx context.Context, email string) *entity.OperationResult {
	email = strings.TrimSpace(email)
	if email == "" {
		return operationValidationFailure("Email is required.")
	}

	err := withRetryErr(ctx, srv.retry, srv.log(ctx), "reset_password", func(ctx context.Context) error {
		return srv.provider.ResetPassword(ctx, email)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.String("email", email), slog.Any("error", err))

		return operationFailure(err)
	}

	srv.emit(entity.AuthEvent{Type: entity.EventPasswordResetRequested, Email: email})

	return operationSuccess()
}

func (srv *authService) VerifyPasswordResetToken(ctx context.Context, token string) *entity.OperationResult {
	if strings.TrimSpace(token) == "" {
		return operationValidationFailure("Reset token is required.")
	}

	err := withRetryErr(ctx, srv.retry, srv.log(ctx), "verify_password_reset_token", func(ctx context.Context) error {
		return srv.provider.VerifyPasswordResetToken(ctx, token)
	})
	if err != nil {
		srv.log(ctx).Info("Password reset token rejected", slog.Any("error", err))

		return operationFailure(err)
	}

	return operationSuccess()
}

func (srv *authService) UpdatePasswordWithToken(ctx context.Context, token, newPassword string) *entity.OperationResult {
	if strings.TrimSpace(token) == "" || newPassword == "" {
		return operationValidationFailure("Reset token and new password are required.")
	}

	// Reset tokens are single use, so a lost response must not be replayed.
	if err := srv.provider.UpdatePasswordWithToken(ctx, token, newPassword); err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))
		srv.recordAudit(ctx, auditPasswordReset, entity.AuditFailure, nil, nil)

		return operationFailure(err)
	}

	srv.emit(entity.AuthEvent{Type: entity.EventPasswordResetCompleted})
	srv.recordAudit(ctx, auditPasswordReset, entity.AuditSuccess, nil, nil)

	return operationSuccess()
}

func (srv *authService) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	token, user, err := srv.sessionToken()
	if err != nil {
		return err
	}
	if currentPassword == "" || newPassword == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Current and new password are required."))
	}

	if err := srv.provider.UpdatePassword(ctx, token, currentPassword, newPassword); err != nil {
		srv.log(ctx).Warn("Password update failed", slog.String("user_id", user.ID.String()), slog.Any("error", err))
		srv.recordAudit(ctx, auditPasswordUpdate, entity.AuditFailure, user, nil)

		return errors.WithStack(toAppError(err))
	}

	if err := srv.provider.InvalidateSessions(ctx, user.ID, token); err != nil {
		srv.log(ctx).Warn("Failed to invalidate other sessions after password update",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.emit(entity.AuthEvent{Type: entity.EventPasswordUpdated, UserID: user.ID, Email: user.Email})
	srv.recordAudit(ctx, auditPasswordUpdate, entity.AuditSuccess, user, nil)

	return nil
}

func (srv *authService) SendVerificationEmail(ctx context.Context, email string) *entity.OperationResult {
	email = strings.TrimSpace(email)
	if email == "" {
		return operationValidationFailure("Email is required.")
	}

	err := withRetryErr(ctx, srv.retry, srv.log(ctx), "send_verification_email", func(ctx context.Context) error {
		return srv.provider.SendVerificationEmail(ctx, email)
	})
	if err != nil {
		srv.log(ctx).Warn("Sending verification email failed", slog.String("email", email), slog.Any("error", err))

		return operationFailure(err)
	}

	srv.emit(entity.AuthEvent{Type: entity.EventEmailVerificationSent, Email: email})

	return operationSuccess()
}

func (srv *authService) VerifyEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Verification token is required."))
	}

	verified, err := srv.provider.VerifyEmail(ctx, token)
	if err != nil {
		srv.log(ctx).Info("Email verification failed", slog.Any("error", err))

		return errors.WithStack(toAppError(err))
	}

	event := entity.AuthEvent{Type: entity.EventEmailVerified}
	if verified != nil {
		event.UserID = verified.ID
		event.Email = verified.Email

		srv.mu.Lock()
		if srv.state.User != nil && srv.state.User.ID == verified.ID {
			srv.state.User.EmailVerified = true
		}
		srv.mu.Unlock()
	}
	srv.emit(event)

	return nil
}

func (srv *authService) SendMagicLink(ctx context.Context, email string) *entity.OperationResult {
	email = strings.TrimSpace(email)
	if email == "" {
		return operationValidationFailure("Email is required.")
	}

	err := withRetryErr(ctx, srv.retry, srv.log(ctx), "send_magic_link", func(ctx context.Context) error {
		return srv.provider.SendMagicLink(ctx, email)
	})
	if err != nil {
		srv.log(ctx).Warn("Sending magic link failed", slog.String("email", email), slog.Any("error", err))

		return operationFailure(err)
	}

	srv.emit(entity.AuthEvent{Type: entity.EventMagicLinkSent, Email: email})

	return operationSuccess()
}

func (srv *authService) VerifyMagicLink(ctx context.Context, token string) *entity.AuthResult {
	if strings.TrimSpace(token) == "" {
		return validationFailure("Magic link token is required.")
	}

	sess, err := srv.provider.VerifyMagicLink(ctx, token)
	if err == nil {
		err = checkSession(sess)
	}
	if err != nil {
		return srv.failLogin(ctx, "", err)
	}
	if sess.RequiresMFA {
		return srv.beginMFAChallenge(ctx, sess)
	}

	result := srv.establish(ctx, sess)
	srv.emit(entity.AuthEvent{
		Type:     entity.EventUserLoggedIn,
		UserID:   result.User.ID,
		Email:    result.User.Email,
		Provider: "magic_link",
	})
	srv.recordAudit(ctx, auditLogin, entity.AuditSuccess, result.User, map[string]any{"method": "magic_link"})

	return result
}

func (srv *authService) DeleteAccount(ctx context.Context, password string) error {
	token, user, err := srv.sessionToken()
	if err != nil {
		return err
	}
	if password == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Password is required."))
	}

	if err := srv.provider.DeleteAccount(ctx, token, password); err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.String("user_id", user.ID.String()), slog.Any("error", err))
		srv.recordAudit(ctx, auditAccountDelete, entity.AuditFailure, user, nil)

		return errors.WithStack(toAppError(err))
	}

	srv.clearSession(ctx)
	srv.log(ctx).Info("Account deleted", slog.String("user_id", user.ID.String()))
	srv.emit(entity.AuthEvent{Type: entity.EventAccountDeleted, UserID: user.ID, Email: user.Email})
	srv.recordAudit(ctx, auditAccountDelete, entity.AuditSuccess, user, nil)

	return nil
}
