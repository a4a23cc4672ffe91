package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	BackendBaseURL  string
	RedisAddr       string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	MenuCacheTTL    time.Duration
	Bank            BankDetails
}

// BankDetails are the static transfer instructions shown on the
// confirmation view for manual bank-transfer orders.
type BankDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		BackendBaseURL:  envOrDefault("BACKEND_BASE_URL", "https://b-chillout-backend.onrender.com"),
		RedisAddr:       envOrDefault("REDIS_ADDR", ""),
		AllowedOrigins:  envList("ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		SessionTTL:      envDuration("SESSION_TTL_SECONDS", 30*24*time.Hour),
		MenuCacheTTL:    envDuration("MENU_CACHE_TTL_SECONDS", 60*time.Second),
		Bank: BankDetails{
			BankName:      envOrDefault("BANK_NAME", "First Bank"),
			AccountName:   envOrDefault("BANK_ACCOUNT_NAME", "Bamboo Chillout Restaurant"),
			AccountNumber: envOrDefault("BANK_ACCOUNT_NUMBER", "1234567890"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
