// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string

	// Postgres. One URL feeds both the pgx pools (patients, business
	// info) and the database/sql handle used by the audit log.
	DatabaseURL string

	// Redis-backed practice configuration store.
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Practice defaults used when no config has been stored yet.
	PracticeName     string
	PracticeTimezone string
	CrisisLine       string

	// Twilio SMS delivery for appointment confirmations.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	// SendGrid email delivery for appointment confirmations.
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Practice-management directory (patient identity + calendar).
	DirectoryBaseURL string
	DirectoryAPIKey  string
	DirectoryTimeout time.Duration

	// Appointment shape.
	AppointmentDuration time.Duration

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		PracticeName:     getEnv("PRACTICE_NAME", "Mindwell Psychology"),
		PracticeTimezone: getEnv("PRACTICE_TIMEZONE", "Australia/Sydney"),
		CrisisLine:       getEnv("CRISIS_LINE", "13 11 14"),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Mindwell Psychology"),

		DirectoryBaseURL: getEnv("DIRECTORY_BASE_URL", ""),
		DirectoryAPIKey:  getEnv("DIRECTORY_API_KEY", ""),
		DirectoryTimeout: getEnvAsDuration("DIRECTORY_TIMEOUT", 30*time.Second),

		AppointmentDuration: getEnvAsDuration("APPOINTMENT_DURATION", 50*time.Minute),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
	}
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves an environment variable as a time.Duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice retrieves a comma-separated environment variable
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
