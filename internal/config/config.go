package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings read from the environment.
type Config struct {
	Env            string
	LogLevel       string
	ServerPort     string
	AllowedOrigins []string
	EnableSwagger  bool

	Polygon PolygonConfig
	Ingest  IngestConfig
}

// PolygonConfig configures the market-data provider client.
type PolygonConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// IngestConfig configures price ingestion.
type IngestConfig struct {
	LookbackDays int
	// Cron is a robfig/cron spec for the host-owned refresh of the default
	// tickers. Empty disables it.
	Cron string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(files ...string) *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load(files...)

	return &Config{
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", ""),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		EnableSwagger:  getEnvBool("ENABLE_SWAGGER", true),
		Polygon: PolygonConfig{
			APIKey:  getEnv("POLYGON_API_KEY", ""),
			BaseURL: getEnv("POLYGON_BASE_URL", "https://api.polygon.io"),
			Timeout: getEnvDuration("POLYGON_TIMEOUT", 30*time.Second),
		},
		Ingest: IngestConfig{
			LookbackDays: getEnvInt("INGEST_LOOKBACK_DAYS", 14),
			Cron:         getEnv("INGEST_CRON", ""),
		},
	}
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
