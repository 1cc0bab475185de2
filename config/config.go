package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-sourced setting. It is loaded once in
// main and passed explicitly into components; nothing below the config
// layer reads the environment directly.
type Config struct {
	Port string
	Env  string

	// Razorpay key pair. May be absent at boot; checkout requests then
	// fail with a configuration error instead of a silent no-op.
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Smallest chargeable amount in paise (₹1).
	MinOrderAmountPaise int64

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	// SMTP credentials for the owner notification email. All optional:
	// notification is best-effort and skipped when unset.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	OwnerEmail string
	BrandName  string

	// Optional catalog cache. Disabled when RedisURL is empty.
	RedisURL        string
	CatalogCacheTTL time.Duration

	// Optional SNS fan-out of paid-order events.
	OrderSNSTopicARN string

	// Secret for verifying admin JWTs on the order-listing endpoint.
	AdminJWTSecret string

	// Origins allowed to call the public checkout endpoints.
	AllowedOrigins []string
}

// Load reads configuration from the environment (and .env, if present).
func Load() (*Config, error) {
	// .env is optional; system environment variables win when both are set.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8089"),
		Env:                 getEnv("APP_ENV", "development"),
		RazorpayKeyID:       os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:   os.Getenv("RAZORPAY_KEY_SECRET"),
		MinOrderAmountPaise: getEnvInt64("MIN_ORDER_AMOUNT_PAISE", 100),
		PostgresUser:        os.Getenv("POSTGRES_USER"),
		PostgresPassword:    os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:          os.Getenv("POSTGRES_DB"),
		PostgresHost:        getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:        getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:     getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone:    getEnv("POSTGRES_TIMEZONE", "Asia/Kolkata"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            getEnv("SMTP_PORT", "587"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		OwnerEmail:          os.Getenv("OWNER_EMAIL"),
		BrandName:           getEnv("BRAND_NAME", "Handmade Crochet"),
		RedisURL:            os.Getenv("REDIS_URL"),
		CatalogCacheTTL:     getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		OrderSNSTopicARN:    os.Getenv("ORDER_SNS_TOPIC_ARN"),
		AdminJWTSecret:      os.Getenv("ADMIN_JWT_SECRET"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
		return nil, fmt.Errorf("missing required POSTGRES_USER/POSTGRES_PASSWORD/POSTGRES_DB")
	}

	return cfg, nil
}

// RazorpayConfigured reports whether the gateway key pair is present.
func (c *Config) RazorpayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// SMTPConfigured reports whether outbound mail can be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
