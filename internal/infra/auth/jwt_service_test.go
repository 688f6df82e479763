package auth

import (
	"testing"
	"time"

	"authhub/config"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtTestNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenLifetimeDays: 7,
			AccessTokenTTL:    time.Hour,
			MFAPendingTTL:     5 * time.Minute,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.SecretKey.MFA = "test_mfa_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) (service.TokenService, *clockwork.FakeClock) {
	t.Helper()

	fakeClock := clockwork.NewFakeClockAt(jwtTestNow)
	jwtService, err := NewJWTService(newTestJWTConfig(), fakeClock)
	require.NoError(t, err)

	return jwtService, fakeClock
}

func TestJWTService_IssueAndValidateTokens(t *testing.T) {
	jwtService, _ := newTestJWTService(t)

	userID := uuid.New()
	sessionID := uuid.New()
	roles := []string{"user", "admin"}

	tokens, err := jwtService.IssueTokens(userID, sessionID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, jwtTestNow.Add(time.Hour), tokens.AccessExpiresAt)
	assert.Equal(t, jwtTestNow.Add(7*24*time.Hour), tokens.RefreshExpiresAt)

	accessClaims, err := jwtService.ValidateToken(tokens.AccessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, sessionID, accessClaims.SessionID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, userID.String(), accessClaims.Subject)

	refreshClaims, err := jwtService.ValidateToken(tokens.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, sessionID, refreshClaims.SessionID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles

	assert.Equal(t, 7*24*time.Hour, jwtService.RefreshTokenDuration())
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	jwtService, _ := newTestJWTService(t)
	userID, sessionID := uuid.New(), uuid.New()

	first, err := jwtService.IssueTokens(userID, sessionID, nil)
	require.NoError(t, err)
	second, err := jwtService.IssueTokens(userID, sessionID, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	jwtService, _ := newTestJWTService(t)

	tokens, err := jwtService.IssueTokens(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	// Signed with a different secret.
	_, err = jwtService.ValidateToken(tokens.RefreshToken, service.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = jwtService.ValidateToken(tokens.AccessToken, "id")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, fakeClock := newTestJWTService(t)

	tokens, err := jwtService.IssueTokens(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	fakeClock.Advance(time.Hour + time.Second)

	claims, err := jwtService.ValidateToken(tokens.AccessToken, service.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestJWTService_MFAToken(t *testing.T) {
	jwtService, fakeClock := newTestJWTService(t)
	userID := uuid.New()

	token, exp, err := jwtService.IssueMFAToken(userID)
	require.NoError(t, err)
	assert.Equal(t, jwtTestNow.Add(5*time.Minute), exp)

	claims, err := jwtService.ValidateToken(token, service.TokenTypeMFA)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, uuid.Nil, claims.SessionID)

	_, err = jwtService.ValidateToken(token, service.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	fakeClock.Advance(6 * time.Minute)
	_, err = jwtService.ValidateToken(token, service.TokenTypeMFA)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestJWTService_RejectsForeignAlgorithm(t *testing.T) {
	jwtService, _ := newTestJWTService(t)

	claims := service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(jwtTestNow.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(unsigned, service.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, _ := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg, clockwork.NewRealClock())
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
