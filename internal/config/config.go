package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session store backends.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

var supportedLanguages = map[string]bool{"en": true, "fr": true, "es": true}

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	DatabaseURL     string   `mapstructure:"DATABASE_URL"`
	DBSchema        string   `mapstructure:"DB_SCHEMA"`
	DBMaxConns      int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32    `mapstructure:"DB_MIN_CONNS"`
	SessionStore    string   `mapstructure:"SESSION_STORE"`
	RedisURL        string   `mapstructure:"REDIS_URL"`
	SessionTTLHours int      `mapstructure:"SESSION_TTL_HOURS"`
	DefaultLanguage string   `mapstructure:"DEFAULT_LANGUAGE"`
	AuthSigningKey  string   `mapstructure:"AUTH_SIGNING_KEY"`
	AuthIssuer      string   `mapstructure:"AUTH_ISSUER"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS    float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int      `mapstructure:"RATE_LIMIT_BURST"`
	OpenAIAPIKey    string   `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel     string   `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL   string   `mapstructure:"OPENAI_BASE_URL"`
}

var keys = []string{
	"PORT", "ENV", "DATABASE_URL", "DB_SCHEMA", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"SESSION_STORE", "REDIS_URL", "SESSION_TTL_HOURS", "DEFAULT_LANGUAGE",
	"AUTH_SIGNING_KEY", "AUTH_ISSUER", "CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
}

// Load reads .env (when present) and the environment. It does not validate;
// call Validate before serving.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("SESSION_STORE", StoreMemory)
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("DEFAULT_LANGUAGE", "en")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env is optional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) <= 1 {
		if origins := v.GetString("CORS_ORIGINS"); origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}
	cfg.SessionStore = strings.ToLower(cfg.SessionStore)
	cfg.DefaultLanguage = strings.ToLower(cfg.DefaultLanguage)
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SessionTTL is the inactivity window after which intake sessions expire.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// HasDatabase reports whether Postgres is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasLLM reports whether HPI elaboration is enabled.
func (c *Config) HasLLM() bool {
	return c.OpenAIAPIKey != ""
}

// Validate rejects combinations the server cannot run with.
func (c *Config) Validate() error {
	switch c.SessionStore {
	case StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when SESSION_STORE is %q", StoreRedis)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when SESSION_STORE is %q", StorePostgres)
		}
	default:
		return fmt.Errorf("SESSION_STORE must be %q, %q or %q, got %q", StoreMemory, StoreRedis, StorePostgres, c.SessionStore)
	}

	if !c.IsDev() && c.AuthSigningKey == "" {
		return fmt.Errorf("AUTH_SIGNING_KEY is required outside development (ENV=%q)", c.Env)
	}
	if c.AuthSigningKey != "" && len(c.AuthSigningKey) < 32 {
		return fmt.Errorf("AUTH_SIGNING_KEY must be at least 32 characters")
	}
	if !supportedLanguages[c.DefaultLanguage] {
		return fmt.Errorf("DEFAULT_LANGUAGE %q is not supported", c.DefaultLanguage)
	}
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}
