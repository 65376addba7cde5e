package config

import (
	"os"
	"strconv"
	"time"

	"triptix/internal/messaging"
	"triptix/internal/store"
)

// Config holds the application configuration.
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	Store store.Config
	NATS  messaging.Config
	Auth  AuthConfig
}

// AuthConfig holds the login lockout policy and session token settings.
type AuthConfig struct {
	JWTSecret     string
	SessionTTL    time.Duration
	LockThreshold int
	LockDuration  time.Duration
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		Store: store.Config{
			Backend: getEnv("STORE_BACKEND", "file"),
			File: store.FileConfig{
				Dir: getEnv("STORE_DIR", "data"),
			},
			Postgres: store.PostgresConfig{
				Host:               getEnv("DB_HOST", "localhost"),
				Port:               getEnvInt("DB_PORT", 5432),
				User:               getEnv("DB_USER", "triptix"),
				Password:           getEnv("DB_PASSWORD", "triptix123"),
				DBName:             getEnv("DB_NAME", "triptix"),
				SSLMode:            getEnv("DB_SSLMODE", "disable"),
				MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
				MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
				ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
			},
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", ""),
			ClusterID: getEnv("NATS_CLUSTER_ID", "triptix"),
			ClientID:  getEnv("NATS_CLIENT_ID", "triptix-api"),
		},

		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "dev-only-secret-change-me"),
			SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
			LockThreshold: getEnvInt("LOGIN_LOCK_THRESHOLD", 3),
			LockDuration:  time.Duration(getEnvInt("LOGIN_LOCK_MINUTES", 2)) * time.Minute,
		},
	}
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable value or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
