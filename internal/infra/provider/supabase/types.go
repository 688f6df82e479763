package supabase

import (
	"time"

	"authhub/internal/domain/entity"
	"authhub/internal/domain/service"

	"github.com/google/uuid"
)

const (
	factorTypeTOTP   = "totp"
	factorVerified   = "verified"
	factorUnverified = "unverified"
)

type gotrueFactor struct {
	ID           string `json:"id"`
	FriendlyName string `json:"friendly_name"`
	FactorType   string `json:"factor_type"`
	Status       string `json:"status"`
}

type gotrueIdentity struct {
	ID           string         `json:"id"`
	Provider     string         `json:"provider"`
	IdentityData map[string]any `json:"identity_data"`
}

type gotrueUser struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	EmailConfirmedAt *time.Time       `json:"email_confirmed_at"`
	UserMetadata     map[string]any   `json:"user_metadata"`
	AppMetadata      map[string]any   `json:"app_metadata"`
	Factors          []gotrueFactor   `json:"factors"`
	Identities       []gotrueIdentity `json:"identities"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// totpFactor returns the TOTP factor with the given status.
func (u *gotrueUser) totpFactor(status string) (gotrueFactor, bool) {
	for _, f := range u.Factors {
		if f.FactorType == factorTypeTOTP && f.Status == status {
			return f, true
		}
	}

	return gotrueFactor{}, false
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	RefreshToken string      `json:"refresh_token"`
	User         *gotrueUser `json:"user"`
}

// signupResponse is a session when autoconfirm is on, otherwise a bare user.
type signupResponse struct {
	tokenResponse
	gotrueUser
}

type enrollResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	TOTP struct {
		QRCode string `json:"qr_code"`
		Secret string `json:"secret"`
		URI    string `json:"uri"`
	} `json:"totp"`
}

type challengeResponse struct {
	ID        string `json:"id"`
	ExpiresAt int64  `json:"expires_at"`
}

func toUser(u *gotrueUser) *entity.User {
	if u == nil {
		return nil
	}

	id, _ := uuid.Parse(u.ID)
	user := &entity.User{
		ID:            id,
		Email:         u.Email,
		EmailVerified: u.EmailConfirmedAt != nil,
		Name:          firstString(u.UserMetadata, "full_name", "name"),
		AvatarURL:     firstString(u.UserMetadata, "avatar_url", "picture"),
		Roles:         appRoles(u.AppMetadata),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if _, ok := u.totpFactor(factorVerified); ok {
		user.MFAEnabled = true
	}
	if len(u.UserMetadata) > 0 {
		user.Metadata = make(map[string]any, len(u.UserMetadata))
		for k, v := range u.UserMetadata {
			user.Metadata[k] = v
		}
	}

	return user
}

// appRoles reads app_metadata.roles, defaulting to a plain user.
func appRoles(appMetadata map[string]any) entity.Roles {
	raw, _ := appMetadata["roles"].([]any)
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			names = append(names, s)
		}
	}

	roles := entity.RolesFromStrings(names)
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}

	return roles
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}

	return ""
}

func (p *Provider) toSession(resp *tokenResponse) *service.ProviderSession {
	sess := &service.ProviderSession{
		User:         toUser(resp.User),
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}

	switch {
	case resp.ExpiresAt > 0:
		sess.ExpiresAt = time.Unix(resp.ExpiresAt, 0)
	case resp.ExpiresIn > 0:
		sess.ExpiresAt = p.clock.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	return sess
}

// loginSession withholds the aal1 session while a verified factor still has
// to be presented; the aal1 access token becomes the challenge token.
func (p *Provider) loginSession(resp *tokenResponse) *service.ProviderSession {
	sess := p.toSession(resp)
	if resp.User == nil {
		return sess
	}
	if _, ok := resp.User.totpFactor(factorVerified); !ok {
		return sess
	}

	return &service.ProviderSession{
		User:        sess.User,
		RequiresMFA: true,
		MFAToken:    resp.AccessToken,
		ExpiresAt:   sess.ExpiresAt,
	}
}
