package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret   = "a-very-secret-key-should-be-longer-and-random"
	defaultNonceSecret = "a-very-secret-nonce-key-change-me"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string `validate:"required,numeric"`
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string `validate:"required"`

	DBMaxConns       int32         `validate:"gte=0"`
	DBConnectTimeout time.Duration `validate:"gte=0"`

	// Moderator authentication
	JWTSecret         string        `validate:"required,min=16"`
	JWTExpiryDuration time.Duration `validate:"gt=0"`
	JWTIssuer         string        `validate:"required"`
	AdminUsername     string
	AdminPasswordHash string

	// Review form CSRF nonces
	NonceSecret       string        `validate:"required,min=16"`
	NonceTTL          time.Duration `validate:"gt=0"`
	SessionCookieName string        `validate:"required"`

	// reCAPTCHA. Keys stored through the settings endpoint take precedence.
	RecaptchaSiteKey   string
	RecaptchaSecretKey string
	RecaptchaVerifyURL string        `validate:"required,url"`
	RecaptchaTimeout   time.Duration `validate:"gt=0"`
	RecaptchaProvider  string        `validate:"oneof=siteverify enterprise"`
	RecaptchaProjectID string        `validate:"required_if=RecaptchaProvider enterprise"`
	RecaptchaAPIKey    string // Empty means Application Default Credentials

	// Abuse protection and caching
	SubmitRateLimit   string `validate:"required"`
	LoginRateLimit    string `validate:"required"`
	RedisURL          string
	PublishedCacheTTL time.Duration `validate:"gte=0"` // Zero disables; only safe with a single writer process

	CORSAllowedOrigins []string

	// Telemetry
	PosthogAPIKey   string
	PosthogEndpoint string
	SentryDSN       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_MAX_CONNS", 0)
	viper.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "customer-reviews-app")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("NONCE_SECRET", defaultNonceSecret)
	viper.SetDefault("NONCE_TTL", "24h")
	viper.SetDefault("SESSION_COOKIE_NAME", "crf_session")
	viper.SetDefault("RECAPTCHA_SITE_KEY", "")
	viper.SetDefault("RECAPTCHA_SECRET_KEY", "")
	viper.SetDefault("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")
	viper.SetDefault("RECAPTCHA_TIMEOUT", "5s")
	viper.SetDefault("RECAPTCHA_PROVIDER", "siteverify")
	viper.SetDefault("RECAPTCHA_PROJECT_ID", "")
	viper.SetDefault("RECAPTCHA_API_KEY", "")
	viper.SetDefault("SUBMIT_RATE_LIMIT", "10-M")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PUBLISHED_CACHE_TTL", "0s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")
	viper.SetDefault("SENTRY_DSN", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     viper.GetString("MIGRATIONS_PATH"),
		DBMaxConns:         viper.GetInt32("DB_MAX_CONNS"),
		DBConnectTimeout:   durationOrDefault("DB_CONNECT_TIMEOUT", 5*time.Second),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTExpiryDuration:  durationOrDefault("JWT_EXPIRY_DURATION", time.Hour),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		AdminUsername:      viper.GetString("ADMIN_USERNAME"),
		AdminPasswordHash:  viper.GetString("ADMIN_PASSWORD_HASH"),
		NonceSecret:        viper.GetString("NONCE_SECRET"),
		NonceTTL:           durationOrDefault("NONCE_TTL", 24*time.Hour),
		SessionCookieName:  viper.GetString("SESSION_COOKIE_NAME"),
		RecaptchaSiteKey:   viper.GetString("RECAPTCHA_SITE_KEY"),
		RecaptchaSecretKey: viper.GetString("RECAPTCHA_SECRET_KEY"),
		RecaptchaVerifyURL: viper.GetString("RECAPTCHA_VERIFY_URL"),
		RecaptchaTimeout:   durationOrDefault("RECAPTCHA_TIMEOUT", 5*time.Second),
		RecaptchaProvider:  strings.ToLower(viper.GetString("RECAPTCHA_PROVIDER")),
		RecaptchaProjectID: viper.GetString("RECAPTCHA_PROJECT_ID"),
		RecaptchaAPIKey:    viper.GetString("RECAPTCHA_API_KEY"),
		SubmitRateLimit:    viper.GetString("SUBMIT_RATE_LIMIT"),
		LoginRateLimit:     viper.GetString("LOGIN_RATE_LIMIT"),
		RedisURL:           viper.GetString("REDIS_URL"),
		PublishedCacheTTL:  durationOrDefault("PUBLISHED_CACHE_TTL", 0),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:      viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:    viper.GetString("POSTHOG_ENDPOINT"),
		SentryDSN:          viper.GetString("SENTRY_DSN"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.NonceSecret == defaultNonceSecret {
		log.Println("Warning: NONCE_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Moderator login is disabled.")
	}
	if cfg.RecaptchaSecretKey == "" && cfg.RecaptchaProvider == "siteverify" {
		log.Println("Warning: RECAPTCHA_SECRET_KEY not set. Submissions are rejected until keys are saved in settings.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.IsProduction && (cfg.JWTSecret == defaultJWTSecret || cfg.NonceSecret == defaultNonceSecret) {
		return nil, fmt.Errorf("invalid config: JWT_SECRET and NONCE_SECRET must be set in production")
	}

	return cfg, nil
}

// Validate checks the struct tags of the config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
