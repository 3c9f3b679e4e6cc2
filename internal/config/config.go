package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppEnv string
	Port   string

	// Postgres
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// Redis (optional; empty address keeps the in-memory cache)
	RedisAddr     string
	RedisPassword string

	// Reports
	DefaultReportYear int
	DataDir           string
	RefreshInterval   time.Duration
	SnapshotCacheTTL  time.Duration
	MaxUploadBytes    int64
}

// Load reads configuration from the environment, with a .env file applied
// first when present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     getEnv("PG_USER", "crewboard"),
		PGPassword: getEnv("PG_PASSWORD", ""),
		PGDatabase: getEnv("PG_DB", "crewboard"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		DefaultReportYear: getEnvAsInt("REPORT_DEFAULT_YEAR", time.Now().Year()),
		DataDir:           getEnv("REPORT_DATA_DIR", "./data"),
		RefreshInterval:   time.Duration(getEnvAsInt("REPORT_REFRESH_MINUTES", 60)) * time.Minute,
		SnapshotCacheTTL:  time.Duration(getEnvAsInt("SNAPSHOT_CACHE_SECONDS", 60)) * time.Second,
		MaxUploadBytes:    int64(getEnvAsInt("MAX_UPLOAD_MB", 16)) << 20,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
