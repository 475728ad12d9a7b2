package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port     int
	LogLevel string
	APIToken string
}

func Load() Config {
	return Config{
		Port:     envInt("MAGELLAN_PORT", 8760),
		LogLevel: envStr("LOG_LEVEL", "info"),
		APIToken: envStr("MAGELLAN_API_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
