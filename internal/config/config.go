package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the loaded configuration to the fx graph.
var Module = fx.Provide(Load)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	// BaseURL is the public URL of the deployment. Invite links are built
	// from it, so it has no usable default outside local development.
	BaseURL string

	AuthCookieSecure bool

	Assistant AssistantConfig
	RateLimit RateLimitConfig
	Email     EmailConfig

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int
}

// AssistantConfig configures the LLM-backed chat assistant.
type AssistantConfig struct {
	Enabled bool
	APIKey  string
	Model   string
}

// RateLimitConfig configures the redis-backed chat rate limiter.
type RateLimitConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ChatRate      float64
	ChatBurst     int
}

// EmailConfig selects and configures the outbound mail provider.
type EmailConfig struct {
	Provider    string // "smtp" or "noop"
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	FromAddress string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	cfg := Config{
		AppName:          getenv("APP_SERVICE", "districtclose"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      environment,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		BaseURL:          strings.TrimRight(getenv("APP_BASE_URL", "http://localhost:8080"), "/"),
		AuthCookieSecure: authCookieSecure,
		Assistant: AssistantConfig{
			Enabled: getenvBool("ASSISTANT_ENABLED", true),
			APIKey:  strings.TrimSpace(getenv("GEMINI_API_KEY", "")),
			Model:   getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       getenvBool("RATE_LIMIT_ENABLED", false),
			RedisAddr:     strings.TrimSpace(getenv("RATE_LIMIT_REDIS_ADDR", "")),
			RedisPassword: strings.TrimSpace(getenv("RATE_LIMIT_REDIS_PASSWORD", "")),
			RedisDB:       int(getenvInt64("RATE_LIMIT_REDIS_DB", 0)),
			ChatRate:      getenvFloat("RATE_LIMIT_CHAT_RATE", 0.5),
			ChatBurst:     int(getenvInt64("RATE_LIMIT_CHAT_BURST", 10)),
		},
		Email: EmailConfig{
			Provider:    getenv("EMAIL_PROVIDER", "noop"),
			SMTPHost:    getenv("SMTP_HOST", ""),
			SMTPPort:    getenv("SMTP_PORT", "587"),
			SMTPUser:    getenv("SMTP_USER", ""),
			SMTPPass:    getenv("SMTP_PASSWORD", ""),
			FromAddress: getenv("EMAIL_FROM", "no-reply@districtclose.com"),
		},
		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "districtclose"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		DBMaxIdleConn:     int(getenvInt64("DATABASE_MAX_IDLE_CONN", 10)),
		DBMaxOpenConn:     int(getenvInt64("DATABASE_MAX_OPEN_CONN", 50)),
		DBConnMaxLifetime: int(getenvInt64("DATABASE_CONN_MAX_LIFETIME", 300)),
		DBConnMaxIdleTime: int(getenvInt64("DATABASE_CONN_MAX_IDLE_TIME", 60)),
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
