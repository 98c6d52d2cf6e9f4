package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Model selection strategies for the router.
const (
	StrategyAuto     = "auto"
	StrategyFast     = "fast"
	StrategyAccurate = "accurate"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Ollama   OllamaConfig
	Search   SearchConfig
	Pipeline PipelineConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowOrigins   []string
	RateLimitPerSecond int
	RateLimitBurst     int
}

type DatabaseConfig struct {
	Driver          string // "sqlite" or "postgres"
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type OllamaConfig struct {
	BaseURL        string
	FastModel      string
	AccurateModel  string
	RequestTimeout time.Duration
	ModelStrategy  string // auto, fast, accurate
}

type SearchConfig struct {
	BaseURL        string
	MaxResults     int
	RequestTimeout time.Duration
}

type PipelineConfig struct {
	EnableSearch    bool
	SearchThreshold float64
	EnableSandbox   bool
	SandboxTimeout  time.Duration
}

type LoggingConfig struct {
	Level string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "data/expenses.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "expense_user"),
			Password:        getEnv("DB_PASSWORD", "expense_password"),
			Name:            getEnv("DB_NAME", "expense_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Ollama: OllamaConfig{
			BaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			FastModel:      getEnv("OLLAMA_FAST_MODEL", "llama3.2:3b"),
			AccurateModel:  getEnv("OLLAMA_ACCURATE_MODEL", "llama3.2:3b"),
			RequestTimeout: getDurationEnv("OLLAMA_TIMEOUT", 60*time.Second),
			ModelStrategy:  getEnv("MODEL_STRATEGY", StrategyAuto),
		},
		Search: SearchConfig{
			BaseURL:        getEnv("SEARCH_BASE_URL", "https://api.duckduckgo.com"),
			MaxResults:     getIntEnv("SEARCH_MAX_RESULTS", 5),
			RequestTimeout: getDurationEnv("SEARCH_TIMEOUT", 20*time.Second),
		},
		Pipeline: PipelineConfig{
			EnableSearch:    getBoolEnv("ENABLE_SEARCH_AGENT", true),
			SearchThreshold: getFloatEnv("SEARCH_THRESHOLD", 100.0),
			EnableSandbox:   getBoolEnv("ENABLE_SANDBOX_AGGREGATOR", true),
			SandboxTimeout:  getDurationEnv("SANDBOX_TIMEOUT", 5*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
