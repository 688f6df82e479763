package auth

import (
	"time"

	"authhub/config"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const tokenIssuer = "authhub"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	mfaSecret     []byte        // Secret key for signing pending MFA tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	mfaTTL        time.Duration // Time-to-live for pending MFA tokens.
	clock         clockwork.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clk clockwork.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	mfaSecret := cfg.SecretKey.MFA
	if mfaSecret == "" {
		mfaSecret = cfg.SecretKey.Access + ":mfa"
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		mfaSecret:     []byte(mfaSecret),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.TokenLifetime(),
		mfaTTL:        cfg.Auth.MFAPendingTTL,
		clock:         clk,
	}, nil
}

// IssueTokens creates a new access token and refresh token bound to sessionID.
func (s *jwtService) IssueTokens(userID, sessionID uuid.UUID, roles []string) (*service.IssuedTokens, error) {
	now := s.clock.Now()

	accessExp := now.Add(s.accessTTL)
	accessToken, err := s.sign(service.Claims{
		UserID:    userID,
		SessionID: sessionID,
		Roles:     roles,
		Type:      service.TokenTypeAccess,
	}, now, accessExp, s.accessSecret)
	if err != nil {
		return nil, err
	}

	// Refresh tokens carry no roles; they are only good for minting access tokens.
	refreshExp := now.Add(s.refreshTTL)
	refreshToken, err := s.sign(service.Claims{
		UserID:    userID,
		SessionID: sessionID,
		Type:      service.TokenTypeRefresh,
	}, now, refreshExp, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.IssuedTokens{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// IssueMFAToken creates the challenge token of a login waiting for a second factor.
func (s *jwtService) IssueMFAToken(userID uuid.UUID) (string, time.Time, error) {
	now := s.clock.Now()
	exp := now.Add(s.mfaTTL)

	token, err := s.sign(service.Claims{UserID: userID, Type: service.TokenTypeMFA}, now, exp, s.mfaSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, exp, nil
}

// ValidateToken checks signature, expiry and token type.
func (s *jwtService) ValidateToken(tokenString, tokenType string) (*service.Claims, error) {
	secret, err := s.secretFor(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.WithStack(domainerrors.ErrSessionExpired.WithDetails(err.Error()))
		}

		return nil, errors.WithStack(domainerrors.ErrTokenInvalid.WithDetails(err.Error()))
	}
	if claims.Type != tokenType {
		return nil, errors.WithStack(domainerrors.ErrTokenInvalid.WithDetails("unexpected token type " + claims.Type))
	}

	return claims, nil
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) secretFor(tokenType string) ([]byte, error) {
	switch tokenType {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, nil
	case service.TokenTypeMFA:
		return s.mfaSecret, nil
	default:
		return nil, errors.Errorf("unknown token type %q", tokenType)
	}
}

func (s *jwtService) sign(claims service.Claims, issuedAt, expiresAt time.Time, secret []byte) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    tokenIssuer,
		Subject:   claims.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
