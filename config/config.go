// Package config loads runtime configuration from the environment, with
// optional .env support for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr         string
	RedisAddr          string // empty means the in-memory cache
	RateLimitPerMinute int
	PolicyFile         string // empty means the embedded policy table
}

// Load reads configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		PolicyFile:         getEnv("POLICY_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
