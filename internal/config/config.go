package config

import (
	"os"
	"time"
)

type Config struct {
	Port         string
	DBPath       string
	ProviderURL  string
	Timezone     string
	Workers      int
	SyncInterval time.Duration
	SyncWindow   int
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "gold.db"),
		ProviderURL:  getEnv("PROVIDER_URL", ""),
		Timezone:     getEnv("TIMEZONE", "Asia/Ho_Chi_Minh"),
		Workers:      getEnvInt("WORKERS", 3),
		SyncInterval: time.Duration(getEnvInt("SYNC_INTERVAL_MINUTES", 60)) * time.Minute,
		SyncWindow:   getEnvInt("SYNC_WINDOW_DAYS", 7),
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
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}
