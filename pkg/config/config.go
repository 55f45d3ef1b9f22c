package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// NotifyMode selects where new-feedback notifications go.
const (
	NotifyModeConsole = "console"
	NotifyModeWebhook = "webhook"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	Notify    NotifyConfig
	CORS      CORSConfig
	OTEL      OTELConfig
}

// AppConfig holds application identity and logging configuration
type AppConfig struct {
	Name     string
	Env      string
	LogLevel string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RateLimitConfig holds the per-client admission limit
type RateLimitConfig struct {
	PerWindow int
	Window    time.Duration
}

// NotifyConfig holds notification channel configuration
type NotifyConfig struct {
	Mode       string
	WebhookURL string
	Timeout    time.Duration
}

// CORSConfig holds the allowed cross-origin hosts
type CORSConfig struct {
	AllowedOrigins []string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables. Values are read once
// here and handed to constructors; nothing re-reads the environment per call.
func Load() (*Config, error) {
	rateLimit := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30)
	if rateLimit < 1 {
		rateLimit = 1
	}

	notifyMode := strings.ToLower(getEnv("NOTIFY_MODE", NotifyModeConsole))
	if notifyMode != NotifyModeConsole && notifyMode != NotifyModeWebhook {
		return nil, fmt.Errorf("invalid NOTIFY_MODE %q: must be %q or %q", notifyMode, NotifyModeConsole, NotifyModeWebhook)
	}

	return &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "practice-feedback-api"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "practice_feedback"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RateLimit: RateLimitConfig{
			PerWindow: rateLimit,
			Window:    time.Minute,
		},
		Notify: NotifyConfig{
			Mode:       notifyMode,
			WebhookURL: getEnv("WEBHOOK_URL", ""),
			Timeout:    5 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "")),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "practice-feedback-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Addr returns the host:port the HTTP server listens on
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
