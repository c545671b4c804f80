package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Auth      AuthConfig      `mapstructure:"auth"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Cron      CronConfig      `mapstructure:"cron"`
	Reports   ReportsConfig   `mapstructure:"reports"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	// FetchDebounce delays dashboard fetches so rapid filter changes collapse
	// into one query.
	FetchDebounce time.Duration `mapstructure:"fetch_debounce"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type CacheConfig struct {
	// Driver is "memory", "redis" or "none".
	Driver   string        `mapstructure:"driver"`
	TTL      time.Duration `mapstructure:"ttl"`
	Cleanup  time.Duration `mapstructure:"cleanup"`
	RedisURL string        `mapstructure:"redis_url"`
}

type AuthConfig struct {
	ProviderURL     string        `mapstructure:"provider_url"`
	ProviderAPIKey  string        `mapstructure:"provider_api_key"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AllowedDomain   string        `mapstructure:"allowed_domain"`
	SessionMaxAge   time.Duration `mapstructure:"session_max_age"`
	RedirectURL     string        `mapstructure:"redirect_url"`
	ProviderTimeout time.Duration `mapstructure:"provider_timeout"`
	DisableAuth     bool          `mapstructure:"disable_auth"`
	DevUserEmail    string        `mapstructure:"dev_user_email"`
}

type LLMConfig struct {
	// Provider is "openai", "anthropic" or "gemini".
	Provider        string  `mapstructure:"provider"`
	Model           string  `mapstructure:"model"`
	OpenAIAPIKey    string  `mapstructure:"openai_api_key"`
	AnthropicAPIKey string  `mapstructure:"anthropic_api_key"`
	GeminiAPIKey    string  `mapstructure:"gemini_api_key"`
	Temperature     float64 `mapstructure:"temperature"`
	MaxTokens       int     `mapstructure:"max_tokens"`
}

type AssistantConfig struct {
	SummaryRows   int           `mapstructure:"summary_rows"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	RateBurst     int           `mapstructure:"rate_burst"`
	Timeout       time.Duration `mapstructure:"timeout"`
	// Executor is "rpc" to go through run_sql or "direct".
	Executor string `mapstructure:"executor"`
}

type CronConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	CacheWarm string `mapstructure:"cache_warm"`
}

type ReportsConfig struct {
	HouseInvestors []string `mapstructure:"house_investors"`
	SuggestLimit   int      `mapstructure:"suggest_limit"`
}

// Load reads an optional .env file, then an optional config file, then
// SERIESDASH_* environment variables. The plain DB_* and SERVER_PORT
// variables are honoured for compatibility with existing deployments.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SERIESDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("server.port", envOr("SERVER_PORT", "8080"))
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.fetch_debounce", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.host", envOr("DB_HOST", "localhost"))
	v.SetDefault("db.port", envOr("DB_PORT", "5432"))
	v.SetDefault("db.user", envOr("DB_USER", "seriesdash"))
	v.SetDefault("db.password", envOr("DB_PASSWORD", "seriesdash"))
	v.SetDefault("db.name", envOr("DB_NAME", "seriesdash"))
	v.SetDefault("db.ssl_mode", envOr("DB_SSL_MODE", "disable"))
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "5m")
	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.ttl", "15m")
	v.SetDefault("cache.cleanup", "30m")
	v.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	v.SetDefault("auth.provider_url", "")
	v.SetDefault("auth.provider_api_key", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.allowed_domain", "aliyacapitalpartners.com")
	v.SetDefault("auth.session_max_age", "336h")
	v.SetDefault("auth.redirect_url", "")
	v.SetDefault("auth.provider_timeout", "10s")
	v.SetDefault("auth.disable_auth", false)
	v.SetDefault("auth.dev_user_email", "dev@aliyacapitalpartners.com")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.openai_api_key", os.Getenv("OPENAI_API_KEY"))
	v.SetDefault("llm.anthropic_api_key", os.Getenv("ANTHROPIC_API_KEY"))
	v.SetDefault("llm.gemini_api_key", os.Getenv("GEMINI_API_KEY"))
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("assistant.summary_rows", 100)
	v.SetDefault("assistant.rate_per_second", 1.0)
	v.SetDefault("assistant.rate_burst", 5)
	v.SetDefault("assistant.timeout", "60s")
	v.SetDefault("assistant.executor", "rpc")
	v.SetDefault("cron.enabled", false)
	v.SetDefault("cron.cache_warm", "0 */10 * * * *")
	v.SetDefault("reports.house_investors", []string{"aliya", "aliya capital partners", "aliya capital partners llc"})
	v.SetDefault("reports.suggest_limit", 10)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production defaults.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
