package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
	GinMode   string
	StaticDir string
}

func Load() *Config {
	// A missing .env is fine; environment variables win either way
	_ = godotenv.Load()

	ttlMinutes, err := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "60"))
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = 60
	}

	return &Config{
		Port:      getEnv("PORT", "3000"),
		DBPath:    getEnv("DB_PATH", "db/tasks.db"),
		JWTSecret: getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:  time.Duration(ttlMinutes) * time.Minute,
		GinMode:   getEnv("GIN_MODE", "debug"),
		StaticDir: getEnv("STATIC_DIR", "frontend/dist"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
