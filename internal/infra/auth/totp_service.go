package auth

import (
	"authhub/config"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/jonboulle/clockwork"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const defaultTOTPIssuer = "authhub"

// totpService implements RFC 6238 codes compatible with common authenticator apps.
type totpService struct {
	issuer string
	opts   totp.ValidateOpts
	clock  clockwork.Clock
}

// NewTOTPService is the constructor for totpService.
func NewTOTPService(cfg *config.Config, clk clockwork.Clock) service.TOTPService {
	issuer := defaultTOTPIssuer
	if cfg.Auth != nil && cfg.Auth.MFAIssuer != "" {
		issuer = cfg.Auth.MFAIssuer
	}

	return &totpService{
		issuer: issuer,
		opts: totp.ValidateOpts{
			Period:    30,
			Skew:      1, // Accept the previous and next step for clock drift.
			Digits:    otp.DigitsSix,
			Algorithm: otp.AlgorithmSHA1,
		},
		clock: clk,
	}
}

// Generate creates a new secret for accountName.
func (s *totpService) Generate(accountName string) (*service.TOTPKey, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
		Period:      uint(s.opts.Period),
		Digits:      s.opts.Digits,
		Algorithm:   s.opts.Algorithm,
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate totp secret")
	}

	return &service.TOTPKey{Secret: key.Secret(), URL: key.URL()}, nil
}

// Validate reports whether code is valid for secret at the current time.
func (s *totpService) Validate(code, secret string) bool {
	valid, err := totp.ValidateCustom(code, secret, s.clock.Now(), s.opts)

	return err == nil && valid
}
