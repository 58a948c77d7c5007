package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string
	// CORS
	FrontendURL    string
	AllowedOrigins []string
	// Email provider selection: resend, smtp or log
	EmailProvider string
	// Resend Configuration
	ResendAPIKey  string
	ResendBaseURL string
	// SMTP Configuration (alternative relay)
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Contact form
	ContactFromEmail      string
	ContactEmailTo        string
	ContactMaxBodyBytes   int64
	EmailDispatchTimeout  time.Duration
	ServerReadTimeout     time.Duration
	ServerWriteTimeout    time.Duration
	ServerShutdownTimeout time.Duration
}

// DefaultFromEmail is used when CONTACT_FROM_EMAIL is unset.
const DefaultFromEmail = "Website Contact <onboarding@resend.dev>"

func LoadConfig() (*Config, error) {
	// Load .env file (local only; missing file is fine in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "json")),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// CSV list, trailing slashes stripped so they compare against the Origin header
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		EmailProvider:  strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "resend"))),
		ResendAPIKey:   strings.TrimSpace(getEnv("RESEND_API_KEY", "")),
		ResendBaseURL:  getEnv("RESEND_BASE_URL", ""),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		// Contact form
		ContactFromEmail:      getEnv("CONTACT_FROM_EMAIL", ""),
		ContactEmailTo:        getEnv("CONTACT_EMAIL_TO", "info@example-estates.com"),
		ContactMaxBodyBytes:   int64(getEnvInt("CONTACT_MAX_BODY_BYTES", 64<<10)),
		EmailDispatchTimeout:  time.Duration(getEnvInt("EMAIL_DISPATCH_TIMEOUT_SECONDS", 15)) * time.Second,
		ServerReadTimeout:     time.Duration(getEnvInt("SERVER_READ_TIMEOUT_SECONDS", 10)) * time.Second,
		ServerWriteTimeout:    time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		ServerShutdownTimeout: 5 * time.Second,
	}

	if strings.TrimSpace(cfg.ContactFromEmail) == "" {
		cfg.ContactFromEmail = DefaultFromEmail
	}
	if cfg.ContactMaxBodyBytes <= 0 {
		cfg.ContactMaxBodyBytes = 64 << 10
	}
	if cfg.EmailDispatchTimeout <= 0 {
		cfg.EmailDispatchTimeout = 15 * time.Second
	}

	if cfg.EmailProvider == "resend" && cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact form will answer 503 until it is set.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping blanks
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
