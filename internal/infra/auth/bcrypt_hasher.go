// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"authhub/config"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const bcryptMaxBytes = 72

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "letmein"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// It also enforces the configured password policy.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return newBcryptHasher(cfg)
}

// NewPasswordValidator exposes the hasher's policy check.
func NewPasswordValidator(cfg *config.Config) service.PasswordValidator {
	return newBcryptHasher(cfg)
}

func newBcryptHasher(cfg *config.Config) *bcryptHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		h.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		h.policy = *cfg.PasswordStrength
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := h.policy.MinLength
	if minLength <= 0 {
		minLength = 8
	}

	switch {
	case utf8.RuneCountInString(password) < minLength:
		return weakPassword("must be at least %d characters long", minLength)
	case h.policy.MaxLength > 0 && utf8.RuneCountInString(password) > h.policy.MaxLength:
		return weakPassword("must be at most %d characters long", h.policy.MaxLength)
	case len(password) > bcryptMaxBytes:
		return weakPassword("must be at most %d bytes long", bcryptMaxBytes)
	case h.policy.RequireLowercase && !hasRune(password, unicode.IsLower):
		return weakPassword("must contain at least one lowercase letter")
	case h.policy.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return weakPassword("must contain at least one uppercase letter")
	case h.policy.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return weakPassword("must contain at least one number")
	case h.policy.RequireSpecial && !hasRune(password, isSpecial):
		return weakPassword("must contain at least one special character")
	case containsForbiddenWords(password, forbiddenPasswordWords):
		return weakPassword("contains forbidden words")
	}

	return nil
}

func weakPassword(format string, args ...any) error {
	return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password "+format, args...)))
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
