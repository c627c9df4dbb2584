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
	FrontendDir       string
	Environment       string
	DataDir           string
	ExportDir         string
	ExportFontPath    string
	LogLevel          string
	SeedAdminUser     string
	SeedAdminPassword string
	MaxBodyBytes      int64
	RateLimitPerMin   int
	MetricsEnabled    bool
}

func Load() Config {
	// Missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", "kpi-ctb-dev-secret"),
		FrontendDir:       getEnv("FRONTEND_DIR", "frontend/dist"),
		Environment:       getEnv("APP_ENV", "development"),
		DataDir:           getEnv("DATA_DIR", "storage/data"),
		ExportDir:         getEnv("EXPORT_DIR", "storage/exports"),
		ExportFontPath:    getEnv("EXPORT_FONT_PATH", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SeedAdminUser:     getEnv("SEED_ADMIN_USER", "admin"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin"),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
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
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" || c.JWTSecret == "kpi-ctb-dev-secret" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.SeedAdminPassword == "admin" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be changed in production")
		}
	}
	if strings.TrimSpace(c.DataDir) == "" && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("either DATA_DIR or DATABASE_URL must be set")
	}
	return nil
}
