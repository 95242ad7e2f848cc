package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	Environment       string
	BaseURL           string
	FrontendDir       string
	SeedAdminEmail    string
	SeedAdminPassword string
	EmailFrom         string
	EmailEnabled      bool
	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPassword      string
	SMTPUseTLS        bool
	RunMigrations     bool
	RunSeed           bool
	MaxBodyBytes      int64
}

func Load() Config {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		Environment:       getEnv("APP_ENV", "development"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
		FrontendDir:       getEnv("FRONTEND_DIR", "frontend/dist"),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		EmailFrom:         getEnv("EMAIL_FROM", "no-reply@example.com"),
		EmailEnabled:      getEnvBool("EMAIL_ENABLED", false),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPUser:          getEnv("SMTP_USER", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:        getEnvBool("SMTP_USE_TLS", true),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:           getEnvBool("RUN_SEED", true),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be set or RUN_SEED disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.EmailEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	return nil
}

func (c Config) Production() bool {
	return c.Environment == "production"
}
