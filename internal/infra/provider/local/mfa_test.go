package local

import (
	"context"
	"strings"
	"testing"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProvider_SetupMFA(t *testing.T) {
	ctx := context.Background()
	f := setupProviderTest(t)
	user := newTestUser()
	f.expectSession(ctx, user)

	f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.totp.EXPECT().Generate(user.Email).Return(&service.TOTPKey{Secret: "SECRET", URL: "otpauth://totp/authhub:jane"}, nil)
	f.mfa.EXPECT().UpsertSecret(ctx, mock.MatchedBy(func(s *entity.MFASecret) bool {
		return s.UserID == user.ID && s.Secret == "SECRET" && !s.Enabled && s.FactorID != uuid.Nil
	})).Return(nil)

	var stored []*entity.BackupCode
	f.mfa.EXPECT().ReplaceBackupCodes(ctx, user.ID, mock.AnythingOfType("[]*entity.BackupCode")).
		Run(func(_ context.Context, _ uuid.UUID, codes []*entity.BackupCode) { stored = codes }).Return(nil)
	f.qrcode.EXPECT().GenerateDataURL("otpauth://totp/authhub:jane").Return("data:image/png;base64,AAAA", nil)

	setup, err := f.provider.SetupMFA(ctx, "access-token")
	require.NoError(t, err)

	assert.Equal(t, "SECRET", setup.Secret)
	assert.Equal(t, "data:image/png;base64,AAAA", setup.QRCode)
	require.Len(t, setup.BackupCodes, 4)
	require.Len(t, stored, 4)

	for i, code := range setup.BackupCodes {
		assert.Len(t, code, 11)
		assert.Equal(t, "-", code[5:6])
		assert.Equal(t, util.HashToken(strings.ReplaceAll(code, "-", "")), stored[i].CodeHash)
	}
}

func TestProvider_SetupMFAAlreadyEnabled(t *testing.T) {
	ctx := context.Background()
	f := setupProviderTest(t)
	user := newTestUser()
	user.MFAEnabled = true
	f.expectSession(ctx, user)
	f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := f.provider.SetupMFA(ctx, "access-token")
	assert.True(t, errors.Is(err, domainerrors.ErrMFAAlreadyEnabled))
}

func TestProvider_VerifyMFAEnrolment(t *testing.T) {
	ctx := context.Background()
	f := setupProviderTest(t)
	user := newTestUser()

	f.tokens.EXPECT().ValidateToken("access-token", service.TokenTypeMFA).Return(nil, domainerrors.ErrTokenInvalid)
	f.expectSession(ctx, user)
	f.mfa.EXPECT().FindSecret(ctx, user.ID).Return(&entity.MFASecret{UserID: user.ID, Secret: "SECRET"}, nil)
	f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.totp.EXPECT().Validate("123456", "SECRET").Return(true)
	f.mfa.EXPECT().EnableSecret(ctx, user.ID).Return(nil)

	result, err := f.provider.VerifyMFA(ctx, "access-token", "123456")
	require.NoError(t, err)

	assert.True(t, result.Enabled)
	assert.True(t, result.User.MFAEnabled)
	assert.Nil(t, result.Session)
}

func TestProvider_VerifyMFAEnrolmentRejectsBackupCode(t *testing.T) {
	ctx := context.Background()
	f := setupProviderTest(t)
	user := newTestUser()

	f.tokens.EXPECT().ValidateToken("access-token", service.TokenTypeMFA).Return(nil, domainerrors.ErrTokenInvalid)
	f.expectSession(ctx, user)
	f.mfa.EXPECT().FindSecret(ctx, user.ID).Return(&entity.MFASecret{UserID: user.ID, Secret: "SECRET"}, nil)
	f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.totp.EXPECT().Validate("abcde-12345", "SECRET").Return(false)

	_, err := f.provider.VerifyMFA(ctx, "access-token", "abcde-12345")
	assert.True(t, errors.Is(err, domainerrors.ErrMFAInvalidCode))
}

func TestProvider_VerifyMFALogin(t *testing.T) {
	ctx := context.Background()
	user := newTestUser()
	user.MFAEnabled = true
	secret := &entity.MFASecret{UserID: user.ID, Secret: "SECRET", Enabled: true}

	tests := []struct {
		name    string
		code    string
		setup   func(f *providerFixture)
		wantErr error
	}{
		{
			name: "totp code",
			code: "123456",
			setup: func(f *providerFixture) {
				f.totp.EXPECT().Validate("123456", "SECRET").Return(true)
				f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
				f.expectIssueSession(ctx, user)
			},
		},
		{
			name: "backup code",
			code: "ABCDE-12345",
			setup: func(f *providerFixture) {
				f.totp.EXPECT().Validate("ABCDE-12345", "SECRET").Return(false)
				f.mfa.EXPECT().ConsumeBackupCode(ctx, user.ID, util.HashToken("abcde12345")).Return(true, nil)
				f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
				f.expectIssueSession(ctx, user)
			},
		},
		{
			name: "used backup code",
			code: "abcde-12345",
			setup: func(f *providerFixture) {
				f.totp.EXPECT().Validate("abcde-12345", "SECRET").Return(false)
				f.mfa.EXPECT().ConsumeBackupCode(ctx, user.ID, util.HashToken("abcde12345")).Return(false, nil)
			},
			wantErr: domainerrors.ErrMFAInvalidCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupProviderTest(t)
			f.tokens.EXPECT().ValidateToken("mfa-token", service.TokenTypeMFA).Return(&service.Claims{UserID: user.ID}, nil)
			f.mfa.EXPECT().FindSecret(ctx, user.ID).Return(secret, nil)
			tt.setup(f)

			result, err := f.provider.VerifyMFA(ctx, "mfa-token", tt.code)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result.Session)
			assert.Equal(t, "access-token", result.Session.AccessToken)
			assert.False(t, result.Enabled)
		})
	}
}

func TestProvider_VerifyMFAExpiredChallenge(t *testing.T) {
	f := setupProviderTest(t)
	f.tokens.EXPECT().ValidateToken("mfa-token", service.TokenTypeMFA).Return(nil, domainerrors.ErrSessionExpired)

	_, err := f.provider.VerifyMFA(context.Background(), "mfa-token", "123456")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestProvider_DisableMFA(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code", func(t *testing.T) {
		f := setupProviderTest(t)
		user := newTestUser()
		f.expectSession(ctx, user)
		f.mfa.EXPECT().FindSecret(ctx, user.ID).Return(&entity.MFASecret{UserID: user.ID, Secret: "SECRET", Enabled: true}, nil)
		f.totp.EXPECT().Validate("123456", "SECRET").Return(true)
		f.mfa.EXPECT().DeleteSecret(ctx, user.ID).Return(nil)

		assert.NoError(t, f.provider.DisableMFA(ctx, "access-token", "123456"))
	})

	t.Run("no factor", func(t *testing.T) {
		f := setupProviderTest(t)
		user := newTestUser()
		f.expectSession(ctx, user)
		f.mfa.EXPECT().FindSecret(ctx, user.ID).Return(nil, repository.ErrMFASecretNotFound)

		err := f.provider.DisableMFA(ctx, "access-token", "123456")
		assert.True(t, errors.Is(err, domainerrors.ErrMFANotEnabled))
	})
}

func TestProvider_AuthorizationURL(t *testing.T) {
	f := setupProviderTest(t)
	f.google.EXPECT().AuthCodeURL("state-1", mock.AnythingOfType("string")).Return("https://accounts.google.com/auth")

	auth, err := f.provider.AuthorizationURL(context.Background(), entity.ProviderGoogle, "state-1")
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.google.com/auth", auth.URL)
	assert.Len(t, auth.CodeVerifier, 43)

	_, err = f.provider.AuthorizationURL(context.Background(), "github", "state-1")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotSupported))
}

func TestProvider_ExchangeCode(t *testing.T) {
	ctx := context.Background()
	profile := &service.OAuthUser{
		ID:            "google-sub",
		Email:         "Jane@example.com",
		Name:          "Jane",
		EmailVerified: true,
		Locale:        "en",
		ExtraData:     map[string]any{"given_name": "Jane"},
	}

	t.Run("creates account", func(t *testing.T) {
		f := setupProviderTest(t)
		f.google.EXPECT().Exchange(ctx, "code", "verifier").Return(profile, nil)
		f.auths.EXPECT().FindAuthentication(ctx, entity.ProviderGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
		f.users.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
		f.users.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "jane@example.com" && u.EmailVerified && u.Metadata["locale"] == "en" && u.Metadata["given_name"] == "Jane"
		})).Return(nil)
		f.auths.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.Provider == entity.ProviderGoogle && a.ProviderUserID == "google-sub" && a.PasswordHash == ""
		})).Return(nil)
		f.tokens.EXPECT().IssueTokens(mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("uuid.UUID"), []string{"user"}).Return(newIssuedTokens(), nil)
		f.refreshTokens.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

		session, err := f.provider.ExchangeCode(ctx, entity.ProviderGoogle, "code", "verifier")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", session.User.Email)
	})

	t.Run("known identity", func(t *testing.T) {
		f := setupProviderTest(t)
		user := newTestUser()
		f.google.EXPECT().Exchange(ctx, "code", "verifier").Return(profile, nil)
		f.auths.EXPECT().FindAuthentication(ctx, entity.ProviderGoogle, "google-sub").Return(&entity.Authentication{UserID: user.ID}, nil)
		f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.expectIssueSession(ctx, user)

		session, err := f.provider.ExchangeCode(ctx, entity.ProviderGoogle, "code", "verifier")
		require.NoError(t, err)
		assert.Same(t, user, session.User)
	})

	t.Run("refuses to link unverified email", func(t *testing.T) {
		f := setupProviderTest(t)
		unverified := *profile
		unverified.EmailVerified = false
		f.google.EXPECT().Exchange(ctx, "code", "verifier").Return(&unverified, nil)
		f.auths.EXPECT().FindAuthentication(ctx, entity.ProviderGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
		f.users.EXPECT().FindByEmail(ctx, "jane@example.com").Return(newTestUser(), nil)

		_, err := f.provider.ExchangeCode(ctx, entity.ProviderGoogle, "code", "verifier")
		assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
	})

	t.Run("exchange fails", func(t *testing.T) {
		f := setupProviderTest(t)
		f.google.EXPECT().Exchange(ctx, "code", "verifier").Return(nil, errors.New("invalid_grant"))

		_, err := f.provider.ExchangeCode(ctx, entity.ProviderGoogle, "code", "verifier")
		assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
	})
}

func TestProvider_FetchUserProfile(t *testing.T) {
	ctx := context.Background()
	f := setupProviderTest(t)
	user := newTestUser()
	user.Metadata = map[string]any{"locale": "fr"}
	f.expectSession(ctx, user)

	f.auths.EXPECT().FindAuthenticationByUser(ctx, user.ID, entity.ProviderGoogle).
		Return(&entity.Authentication{ProviderUserID: "google-sub"}, nil)
	f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	profile, err := f.provider.FetchUserProfile(ctx, entity.ProviderGoogle, "access-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub", profile.ID)
	assert.Equal(t, "fr", profile.Locale)
	assert.Equal(t, entity.ProviderGoogle, profile.Provider)
}

func TestProvider_SetProviderMetadata(t *testing.T) {
	ctx := context.Background()
	f := setupProviderTest(t)
	user := newTestUser()
	user.Metadata = map[string]any{"locale": "en"}
	f.expectSession(ctx, user)

	f.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.users.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Metadata["locale"] == "en" && u.Metadata["theme"] == "dark"
	})).Return(nil)

	err := f.provider.SetProviderMetadata(ctx, "access-token", entity.ProviderGoogle, map[string]any{"theme": "dark"})
	assert.NoError(t, err)
}

func TestNormalizeBackupCode(t *testing.T) {
	assert.Equal(t, "abcde12345", normalizeBackupCode(" ABCDE-12345 "))
	assert.Empty(t, normalizeBackupCode("  "))
}
