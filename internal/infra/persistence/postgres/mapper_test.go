package postgres

import (
	"testing"
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMappers(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	userM := &model.UserModel{
		ID:            userID,
		Email:         "jane@example.com",
		Name:          "Jane",
		EmailVerified: true,
		Roles:         []string{"user", "admin", "bogus"},
		Metadata:      map[string]any{"plan": "pro"},
		CreatedAt:     now,
		UpdatedAt:     now,
		MFASecret:     &model.MFASecretModel{UserID: userID, Enabled: true},
	}

	user := toUserDomain(userM)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.True(t, user.MFAEnabled)
	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleAdmin}, user.Roles)
	assert.Equal(t, "pro", user.Metadata["plan"])

	// The domain copy must not share the metadata map.
	user.Metadata["plan"] = "free"
	assert.Equal(t, "pro", userM.Metadata["plan"])

	userM.MFASecret.Enabled = false
	assert.False(t, toUserDomain(userM).MFAEnabled)
	userM.MFASecret = nil
	assert.False(t, toUserDomain(userM).MFAEnabled)

	back := fromUserDomain(&entity.User{ID: userID, Email: "jane@example.com"})
	assert.Equal(t, []string{"user"}, back.Roles)
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestAuthenticationMappers(t *testing.T) {
	auth := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Provider:       entity.ProviderEmail,
		ProviderUserID: "jane@example.com",
		PasswordHash:   "$2a$10$hash",
	}

	assert.Equal(t, auth, toAuthenticationDomain(fromAuthenticationDomain(auth)))
	assert.Nil(t, toAuthenticationDomain(nil))
}

func TestVerificationTokenMappers(t *testing.T) {
	consumed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	token := &entity.VerificationToken{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Purpose:    entity.PurposeMagicLink,
		TokenHash:  "abc",
		ExpiresAt:  consumed.Add(time.Hour),
		ConsumedAt: &consumed,
	}

	tokenM := fromVerificationTokenDomain(token)
	assert.Equal(t, "magic_link", tokenM.Purpose)
	assert.Equal(t, token, toVerificationTokenDomain(tokenM))
}

func TestMFAMappers(t *testing.T) {
	secret := &entity.MFASecret{UserID: uuid.New(), FactorID: uuid.New(), Secret: "JBSWY3DPEHPK3PXP"}
	assert.Equal(t, secret, toMFASecretDomain(fromMFASecretDomain(secret)))

	consumed := time.Now()
	code := &entity.BackupCode{CodeHash: "h", ConsumedAt: &consumed}
	codeM := fromBackupCodeDomain(code)
	require.NotNil(t, codeM.ConsumedAt)
	assert.NotSame(t, code.ConsumedAt, codeM.ConsumedAt)
}
