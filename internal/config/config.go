package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Queue drivers.
const (
	QueueDriverMemory = "memory"
	QueueDriverAsynq  = "asynq"
)

// Config holds all configuration for the application
type Config struct {
	AppEnv   string
	AppURL   string
	LogLevel string

	ServerPort string
	GinMode    string

	MongoURI      string
	MongoDatabase string
	RedisURI      string

	JWTSecret string
	JWTExpiry time.Duration

	PasswordResetExpiry time.Duration

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Region    string
	S3UseSSL    bool

	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	MailFromAddress string
	MailFromName    string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	QueueDriver   string
	QueueWorkers  int
	QueueCapacity int

	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	var errs []error
	required := func(key string) string {
		v, err := getEnvRequired(key)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	appURL := strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/")

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		AppURL:   appURL,
		LogLevel: getEnv("LOG_LEVEL", ""),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		MongoURI:      required("MONGO_URI"),
		MongoDatabase: required("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),

		JWTSecret: required("ACCESS_TOKEN_SECRET"),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", "teamhub"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3UseSSL:    getEnvBool("S3_USE_SSL", false),

		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPUser:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		MailFromAddress: getEnv("MAIL_FROM_ADDRESS", "noreply@teamhub.local"),
		MailFromName:    getEnv("MAIL_FROM_NAME", "Team Hub"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", appURL+"/api/v1/auth/google/callback"),

		QueueDriver: strings.ToLower(getEnv("QUEUE_DRIVER", QueueDriverMemory)),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.JWTExpiry, err = parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "24h")); err != nil {
		errs = append(errs, err)
	}
	if cfg.PasswordResetExpiry, err = parseDuration(getEnv("PASSWORD_RESET_EXPIRY", "60m")); err != nil {
		errs = append(errs, err)
	}
	if cfg.SMTPPort, err = getEnvInt("SMTP_PORT", 587); err != nil {
		errs = append(errs, err)
	}
	if cfg.QueueWorkers, err = getEnvInt("QUEUE_WORKERS", 2); err != nil {
		errs = append(errs, err)
	}
	if cfg.QueueCapacity, err = getEnvInt("QUEUE_CAPACITY", 100); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 10); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 5); err != nil {
		errs = append(errs, err)
	}

	if cfg.QueueDriver != QueueDriverMemory && cfg.QueueDriver != QueueDriverAsynq {
		errs = append(errs, fmt.Errorf("QUEUE_DRIVER must be %q or %q, got %q", QueueDriverMemory, QueueDriverAsynq, cfg.QueueDriver))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// StorageEnabled reports whether avatar storage is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != ""
}

// SMTPEnabled reports whether mail goes out over SMTP rather than to the log.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

// GoogleEnabled reports whether Google login is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable that must be set
func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, value)
	}
	return f, nil
}

// getEnvBool is true only for "true" or "1".
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1"
}

// parseDuration parses a duration string
func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
