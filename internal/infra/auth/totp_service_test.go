package auth

import (
	"net/url"
	"testing"
	"time"

	"authhub/config"

	"github.com/jonboulle/clockwork"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPService_GenerateAndValidate(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(jwtTestNow)
	totpService := NewTOTPService(&config.Config{Auth: &config.AuthConfig{MFAIssuer: "Acme"}}, fakeClock)

	key, err := totpService.Generate("jane@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, key.Secret)

	parsed, err := url.Parse(key.URL)
	require.NoError(t, err)
	assert.Equal(t, "otpauth", parsed.Scheme)
	assert.Equal(t, "totp", parsed.Host)
	assert.Equal(t, "Acme", parsed.Query().Get("issuer"))
	assert.Equal(t, key.Secret, parsed.Query().Get("secret"))

	code, err := totp.GenerateCode(key.Secret, fakeClock.Now())
	require.NoError(t, err)
	assert.True(t, totpService.Validate(code, key.Secret))

	// One step of drift is tolerated, two are not.
	fakeClock.Advance(30 * time.Second)
	assert.True(t, totpService.Validate(code, key.Secret))
	fakeClock.Advance(60 * time.Second)
	assert.False(t, totpService.Validate(code, key.Secret))
}

func TestTOTPService_RejectsMalformedInput(t *testing.T) {
	totpService := NewTOTPService(&config.Config{}, clockwork.NewFakeClockAt(jwtTestNow))

	key, err := totpService.Generate("jane@example.com")
	require.NoError(t, err)

	assert.False(t, totpService.Validate("", key.Secret))
	assert.False(t, totpService.Validate("12345", key.Secret))
	assert.False(t, totpService.Validate("abcdef", key.Secret))
	assert.False(t, totpService.Validate("123456", "not base32!"))
}

func TestTOTPService_DefaultIssuer(t *testing.T) {
	totpService := NewTOTPService(&config.Config{}, clockwork.NewRealClock())

	key, err := totpService.Generate("jane@example.com")
	require.NoError(t, err)

	parsed, err := url.Parse(key.URL)
	require.NoError(t, err)
	assert.Equal(t, defaultTOTPIssuer, parsed.Query().Get("issuer"))
}
