package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
)

type AppConfig struct {
	Port   string
	AppEnv string

	AIProvider   string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	AITimeout    time.Duration

	StorageDriver string
	PostgresURL   string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string

	RateLimitPerMinute int
	CORSOrigins        []string
}

// LoadConfig reads the environment, loading .env first when it exists.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnvWithDefault("AI_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT: %w", err)
	}
	rateLimit, err := strconv.Atoi(getEnvWithDefault("RATE_LIMIT_PER_MINUTE", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}

	cfg := &AppConfig{
		Port:   getEnvWithDefault("PORT", "8080"),
		AppEnv: getEnvWithDefault("APP_ENV", "development"),

		AIProvider:   strings.ToLower(getEnvWithDefault("AI_PROVIDER", "gemini")),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		AITimeout:    timeout,

		StorageDriver: strings.ToLower(getEnvWithDefault("STORAGE_DRIVER", StorageMemory)),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		SQLitePath:    getEnvWithDefault("SQLITE_PATH", "vivuplan.db"),
		RedisAddr:     getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		RateLimitPerMinute: rateLimit,
		CORSOrigins:        splitList(os.Getenv("CORS_ORIGINS")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	switch c.AIProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		return fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", c.AIProvider)
	}

	switch c.StorageDriver {
	case StorageMemory, StorageSQLite, StorageRedis:
	case StoragePostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.StorageDriver)
	}

	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	return nil
}

// AIKey returns the API key and model of the selected provider.
func (c *AppConfig) AIKey() (apiKey, model string) {
	if c.AIProvider == "openai" {
		return c.OpenAIAPIKey, c.OpenAIModel
	}
	return c.GeminiAPIKey, c.GeminiModel
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
