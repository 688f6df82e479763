package service

// TOTPKey is a freshly generated authenticator secret.
type TOTPKey struct {
	Secret string
	URL    string // otpauth:// URI for authenticator apps.
}

// TOTPService generates and checks time-based one-time passwords.
type TOTPService interface {
	Generate(accountName string) (*TOTPKey, error)
	Validate(code, secret string) bool
}
