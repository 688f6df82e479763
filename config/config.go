package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultIdleTimeout          = 30 * time.Minute
	defaultSessionCheckInterval = time.Minute
	defaultRefreshThreshold     = 5 * time.Minute
	defaultTokenLifetimeDays    = 7
	defaultTransientRetries     = 1
	defaultMFAPendingTTL        = 5 * time.Minute
	defaultVerificationTokenTTL = 24 * time.Hour
	defaultAccessTokenTTL       = time.Hour
	defaultBackupCodeCount      = 10
	defaultSupabaseTimeout      = 10 * time.Second
	defaultSessionCookieName    = "authhub_sid"
)

// Provider kinds accepted by auth.provider.
const (
	ProviderSupabase = "supabase"
	ProviderLocal    = "local"
)

// Storage drivers accepted by storage.driver.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		Cookie CookieConfig `json:"cookie" yaml:"cookie"`
	} `json:"http" yaml:"http"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
		MFA     string `json:"mfa" yaml:"mfa"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// QRCode configuration for MFA enrolment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for audit and outbound message publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// CookieConfig controls the client session cookie.
type CookieConfig struct {
	Name     string `json:"name" yaml:"name"`
	Domain   string `json:"domain" yaml:"domain"`
	Secure   bool   `json:"secure" yaml:"secure"`
	SameSite string `json:"sameSite" yaml:"sameSite"`
}

// AuthConfig defines session orchestration settings
type AuthConfig struct {
	// Provider selects the identity backend: "supabase" or "local"
	Provider             string        `json:"provider" yaml:"provider"`
	TokenLifetimeDays    int           `json:"tokenLifetimeDays" yaml:"tokenLifetimeDays"`
	IdleTimeout          time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	SessionCheckInterval time.Duration `json:"sessionCheckInterval" yaml:"sessionCheckInterval"`
	RefreshThreshold     time.Duration `json:"refreshThreshold" yaml:"refreshThreshold"`
	// TransientRetries is how often a transient provider failure is retried.
	// Unset means defaultTransientRetries; 0 disables retrying.
	TransientRetries     *int          `json:"transientRetries" yaml:"transientRetries"`
	RetryDelay           time.Duration `json:"retryDelay" yaml:"retryDelay"`

	// Settings below only apply to the built-in provider
	BcryptCost               int           `json:"bcryptCost" yaml:"bcryptCost"`
	BackupCodeCount          int           `json:"backupCodeCount" yaml:"backupCodeCount"`
	MFAIssuer                string        `json:"mfaIssuer" yaml:"mfaIssuer"`
	AccessTokenTTL           time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	MFAPendingTTL            time.Duration `json:"mfaPendingTTL" yaml:"mfaPendingTTL"`
	VerificationTokenTTL     time.Duration `json:"verificationTokenTTL" yaml:"verificationTokenTTL"`
	RequireEmailVerification bool          `json:"requireEmailVerification" yaml:"requireEmailVerification"`
	PublicURL                string        `json:"publicUrl" yaml:"publicUrl"`
}

// Retries resolves TransientRetries. Negative values count as 0.
func (c *AuthConfig) Retries() int {
	if c.TransientRetries == nil {
		return defaultTransientRetries
	}

	return max(*c.TransientRetries, 0)
}

// TokenLifetime is the persisted session lifetime derived from TokenLifetimeDays.
func (c *AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeDays) * 24 * time.Hour
}

// SupabaseConfig points at a Supabase Auth (GoTrue) deployment.
type SupabaseConfig struct {
	URL            string        `json:"url" yaml:"url"`
	AnonKey        string        `json:"anonKey" yaml:"anonKey"`
	ServiceKey     string        `json:"serviceKey" yaml:"serviceKey"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

type PostgresConfig struct {
	Host            string        `json:"host" yaml:"host"`
	Port            int           `json:"port" yaml:"port"`
	UserName        string        `json:"userName" yaml:"userName"`
	Password        string        `json:"password" yaml:"password"`
	Database        string        `json:"database" yaml:"database"`
	SSLMode         string        `json:"sslMode" yaml:"sslMode"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`
}

// DSN renders the libpq connection string.
func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.UserName, c.Password, c.Database, sslMode)
}

type GoogleOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// StorageConfig selects the Auth Storage backend: "memory" or "redis"
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RateLimitConfig throttles credential operations of the built-in provider.
type RateLimitConfig struct {
	Enabled           bool `json:"enabled" yaml:"enabled"`
	RequestsPerMinute int  `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int  `json:"burst" yaml:"burst"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: SUPABASE_SERVICEKEY -> supabase.serviceKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Cookie.Name == "" {
		cfg.HTTP.Cookie.Name = defaultSessionCookieName
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	auth := cfg.Auth
	if auth.Provider == "" {
		auth.Provider = ProviderLocal
	}
	if auth.TokenLifetimeDays <= 0 {
		auth.TokenLifetimeDays = defaultTokenLifetimeDays
	}
	if auth.IdleTimeout <= 0 {
		auth.IdleTimeout = defaultIdleTimeout
	}
	if auth.SessionCheckInterval <= 0 {
		auth.SessionCheckInterval = defaultSessionCheckInterval
	}
	if auth.RefreshThreshold <= 0 {
		auth.RefreshThreshold = defaultRefreshThreshold
	}
	if auth.TransientRetries == nil {
		retries := defaultTransientRetries
		auth.TransientRetries = &retries
	}
	if auth.BackupCodeCount <= 0 {
		auth.BackupCodeCount = defaultBackupCodeCount
	}
	if auth.AccessTokenTTL <= 0 {
		auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if auth.MFAPendingTTL <= 0 {
		auth.MFAPendingTTL = defaultMFAPendingTTL
	}
	if auth.VerificationTokenTTL <= 0 {
		auth.VerificationTokenTTL = defaultVerificationTokenTTL
	}
	if auth.MFAIssuer == "" {
		auth.MFAIssuer = cfg.Env.ServiceName
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageMemory
	}

	if cfg.Supabase != nil && cfg.Supabase.RequestTimeout <= 0 {
		cfg.Supabase.RequestTimeout = defaultSupabaseTimeout
	}
	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
}

func (cfg *Config) validate() error {
	switch cfg.Auth.Provider {
	case ProviderSupabase:
		if cfg.Supabase == nil || strings.TrimSpace(cfg.Supabase.URL) == "" {
			return errors.New("supabase.url is required when auth.provider is supabase")
		}
	case ProviderLocal:
		if cfg.Postgres == nil {
			return errors.New("postgres is required when auth.provider is local")
		}
		if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
			return errors.New("secretKey.access and secretKey.refresh are required when auth.provider is local")
		}
		if cfg.Auth.AccessTokenTTL <= cfg.Auth.RefreshThreshold {
			return errors.Errorf("auth.accessTokenTTL (%s) must be longer than auth.refreshThreshold (%s)",
				cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshThreshold)
		}
	default:
		return errors.Errorf("unknown auth.provider %q", cfg.Auth.Provider)
	}

	switch cfg.Storage.Driver {
	case StorageMemory:
	case StorageRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return errors.New("redis.addr is required when storage.driver is redis")
		}
	default:
		return errors.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
