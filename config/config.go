package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	DBPath          string
	PasswordRounds  int
	ConnectRetries  uint64
	ConnectDelay    time.Duration
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	Theme           string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Env:             GetEnv("ENV", "development"),
		DBPath:          GetEnv("DB_PATH", "./data/notedesk.db"),
		PasswordRounds:  GetEnvInt("PASSWORD_ROUNDS", 30000),
		ConnectRetries:  uint64(GetEnvInt("DB_CONNECT_RETRIES", 5)),
		ConnectDelay:    GetEnvDuration("DB_CONNECT_DELAY", 2*time.Second),
		SessionTTL:      GetEnvDuration("SESSION_TTL", 12*time.Hour),
		CleanupInterval: GetEnvDuration("SESSION_CLEANUP_INTERVAL", time.Hour),
		// Cosmetic only; the core never reads it
		Theme: GetEnv("THEME", "dark"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
