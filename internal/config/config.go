package config

import (
	"time"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	LLM         LLMConfig         `yaml:"llm"`
	Generator   GeneratorConfig   `yaml:"generator"`
	Publication PublicationConfig `yaml:"publication"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Admin       AdminConfig       `yaml:"admin"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the optional read cache settings. An empty Addr disables the cache.
type RedisConfig struct {
	Addr      string        `yaml:"addr"       env:"REDIS_ADDR"`
	Password  string        `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string        `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"shlok:"`
	TTL       time.Duration `yaml:"ttl"        env:"REDIS_TTL"        env-default:"24h"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Completion providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderNone      = "none"
)

// LLMConfig holds completion provider settings.
type LLMConfig struct {
	Provider           string        `yaml:"provider"            env:"LLM_PROVIDER"            env-default:"anthropic"`
	APIKey             string        `yaml:"api_key"             env:"LLM_API_KEY"`
	Model              string        `yaml:"model"               env:"LLM_MODEL"`
	BaseURL            string        `yaml:"base_url"            env:"LLM_BASE_URL"`
	Timeout            time.Duration `yaml:"timeout"             env:"LLM_TIMEOUT"             env-default:"30s"`
	MaxTokens          int           `yaml:"max_tokens"          env:"LLM_MAX_TOKENS"          env-default:"1024"`
	Temperature        float64       `yaml:"temperature"         env:"LLM_TEMPERATURE"         env-default:"0.7"`
	VarietyTemperature float64       `yaml:"variety_temperature" env:"LLM_VARIETY_TEMPERATURE" env-default:"1.0"`
}

// ModelName returns the configured model or the provider default.
func (c LLMConfig) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return "claude-3-5-haiku-latest"
	}
}

// Enabled reports whether an AI provider is configured.
func (c LLMConfig) Enabled() bool { return c.Provider != ProviderNone }

// GeneratorConfig holds content generation settings.
type GeneratorConfig struct {
	FallbackPath  string `yaml:"fallback_path"  env:"GENERATOR_FALLBACK_PATH"`
	PromptHistory int    `yaml:"prompt_history" env:"GENERATOR_PROMPT_HISTORY" env-default:"10"`
}

// PublicationConfig holds the daily publication parameters.
type PublicationConfig struct {
	Timezone            string `yaml:"timezone"              env:"PUBLICATION_TIMEZONE"              env-default:"Asia/Kolkata"`
	PublishAtRaw        string `yaml:"publish_at"            env:"PUBLICATION_PUBLISH_AT"            env-default:"06:00"`
	UniquenessSample    int    `yaml:"uniqueness_sample"     env:"PUBLICATION_UNIQUENESS_SAMPLE"     env-default:"30"`
	CategorySample      int    `yaml:"category_sample"       env:"PUBLICATION_CATEGORY_SAMPLE"       env-default:"100"`
	HistoryDefaultLimit int    `yaml:"history_default_limit" env:"PUBLICATION_HISTORY_DEFAULT_LIMIT" env-default:"30"`
	HistoryMaxLimit     int    `yaml:"history_max_limit"     env:"PUBLICATION_HISTORY_MAX_LIMIT"     env-default:"100"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
	// PublishAt is parsed from PublishAtRaw during validation.
	PublishAt domain.Clock `yaml:"-" env:"-"`
}

// SchedulerConfig holds the daily trigger settings.
type SchedulerConfig struct {
	Enabled bool   `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"true"`
	AtRaw   string `yaml:"at"      env:"SCHEDULER_AT"      env-default:"06:00"`

	// At is parsed from AtRaw during validation.
	At domain.Clock `yaml:"-" env:"-"`
}

// AdminConfig holds admin token settings. An empty secret disables admin endpoints.
type AdminConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"ADMIN_JWT_ISSUER" env-default:"daily-shlok"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"ADMIN_TOKEN_TTL"  env-default:"24h"`
}

// Enabled reports whether admin tokens can be issued and verified.
func (c AdminConfig) Enabled() bool { return c.JWTSecret != "" }
