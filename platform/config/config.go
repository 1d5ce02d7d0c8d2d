// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetEnv() string
	IsDevelopment() bool
	GetCORSOrigins() []string
}

// RateLimitConfig provides settings for the per-IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitWindow() time.Duration
	GetRateLimitMax() int
}

// WebhookConfig provides the subscription handshake secret.
type WebhookConfig interface {
	GetVerifyToken() string
}

// AIConfig provides settings for the AI completion provider.
type AIConfig interface {
	GetOpenAIAPIKey() string
	GetOpenAIModel() string
	GetOpenAIBaseURL() string
}

// EmailConfig provides settings for booking confirmation email.
type EmailConfig interface {
	IsEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// VoiceConfig provides settings for the voice module.
type VoiceConfig interface {
	GetDefaultPhoneRegion() string
}

// =============================================================================
// Config
// =============================================================================

// Config holds all application settings, loaded once at startup and injected
// into the modules that need them. Modules receive narrow interfaces, never
// the full struct.
type Config struct {
	Env      string
	HTTPAddr string

	VerifyToken string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	RateLimitWindow time.Duration
	RateLimitMax    int

	CORSOrigins []string

	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string

	DefaultPhoneRegion string
}

// Load reads configuration from the environment (and .env when present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	addr := getEnv("HTTP_ADDR", "")
	if addr == "" {
		addr = ":" + getEnv("PORT", "3000")
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           addr,
		VerifyToken:        getEnv("VERIFY_TOKEN", ""),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4-turbo"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		RateLimitWindow:    msDuration(getEnv("RATE_LIMIT_WINDOW_MS", "900000")),
		RateLimitMax:       mustInt(getEnv("RATE_LIMIT_MAX_REQUESTS", "100")),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "*")),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Automation Hub"),
		EmailFromAddress:   getEnv("EMAIL_FROM_ADDRESS", ""),
		DefaultPhoneRegion: getEnv("DEFAULT_PHONE_REGION", "US"),
	}

	if cfg.VerifyToken == "" {
		return nil, fmt.Errorf("VERIFY_TOKEN is required")
	}
	if cfg.SMTPHost != "" && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when SMTP_HOST is set")
	}

	return cfg, nil
}

// Interface implementations.

func (c *Config) GetHTTPAddr() string    { return c.HTTPAddr }
func (c *Config) GetEnv() string         { return c.Env }
func (c *Config) IsDevelopment() bool    { return strings.EqualFold(c.Env, "development") }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

func (c *Config) GetRateLimitWindow() time.Duration { return c.RateLimitWindow }
func (c *Config) GetRateLimitMax() int              { return c.RateLimitMax }

func (c *Config) GetVerifyToken() string { return c.VerifyToken }

func (c *Config) GetOpenAIAPIKey() string  { return c.OpenAIAPIKey }
func (c *Config) GetOpenAIModel() string   { return c.OpenAIModel }
func (c *Config) GetOpenAIBaseURL() string { return c.OpenAIBaseURL }

func (c *Config) IsEmailEnabled() bool       { return c.SMTPHost != "" }
func (c *Config) GetSMTPHost() string        { return c.SMTPHost }
func (c *Config) GetSMTPPort() int           { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string    { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string    { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string   { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

func (c *Config) GetDefaultPhoneRegion() string { return c.DefaultPhoneRegion }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func msDuration(value string) time.Duration {
	return time.Duration(mustInt(value)) * time.Millisecond
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
