package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	ServiceName string
	GinMode     string
	HTTPPort    int
	Storage     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool

	LogFile  string
	LogLevel string

	LoginRatePerMinute int
	LoginRateBurst     int

	AdminUsername string
	AdminPassword string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on env vars")
	}

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getEnv("SERVICE_NAME", "taxi_service"))
	cfg.GinMode = cast.ToString(getEnv("GIN_MODE", "debug"))
	cfg.HTTPPort = cast.ToInt(getEnv("HTTP_PORT", 8080))
	cfg.Storage = cast.ToString(getEnv("STORAGE", StoragePostgres))

	cfg.DBHost = cast.ToString(getEnv("DB_HOST", "localhost"))
	cfg.DBPort = cast.ToString(getEnv("DB_PORT", "5432"))
	cfg.DBUser = cast.ToString(getEnv("DB_USER", "postgres"))
	cfg.DBPassword = cast.ToString(getEnv("DB_PASSWORD", "password"))
	cfg.DBName = cast.ToString(getEnv("DB_NAME", "taxi_service"))
	cfg.DBSSLMode = cast.ToString(getEnv("DB_SSLMODE", "disable"))
	cfg.DBTimezone = cast.ToString(getEnv("DB_TIMEZONE", "UTC"))

	cfg.JWTSecret = cast.ToString(getEnv("JWT_SECRET", "supersecret"))
	cfg.SessionTTL = time.Duration(cast.ToInt(getEnv("SESSION_TTL_HOURS", 72))) * time.Hour
	cfg.CookieSecure = cast.ToBool(getEnv("COOKIE_SECURE", false))

	cfg.LogFile = cast.ToString(getEnv("LOG_FILE", "./logs/app.log"))
	cfg.LogLevel = cast.ToString(getEnv("LOG_LEVEL", "debug"))

	cfg.LoginRatePerMinute = cast.ToInt(getEnv("LOGIN_RATE_PER_MINUTE", 10))
	cfg.LoginRateBurst = cast.ToInt(getEnv("LOGIN_RATE_BURST", 5))

	cfg.AdminUsername = cast.ToString(getEnv("ADMIN_USERNAME", ""))
	cfg.AdminPassword = cast.ToString(getEnv("ADMIN_PASSWORD", ""))

	return cfg
}

// getEnv reads an environment variable or returns the provided default.
func getEnv(key string, defaultValue interface{}) interface{} {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return defaultValue
}
