package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "user",
		},
		"supabase": map[string]any{
			"serviceKey":     "",
			"requestTimeout": "10s",
		},
		"auth": map[string]any{
			"idleTimeout":       "30m",
			"tokenLifetimeDays": 7,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "SUPABASE_SERVICEKEY", want: "supabase.serviceKey"},
		{envKey: "SUPABASE_REQUEST_TIMEOUT", want: "supabase.request.timeout"},
		{envKey: "AUTH_IDLETIMEOUT", want: "auth.idleTimeout"},
		{envKey: "AUTH_TOKENLIFETIMEDAYS", want: "auth.tokenLifetimeDays"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
