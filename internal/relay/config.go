package relay

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	FrontendCallbackURL string        // Required: front-end page that renders the payment outcome
	BillingURL          string        // Required: billing page used as the failure fallback
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8081)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	CallbackRatePerSec  float64       // Callback route rate limit (default: 10)
	CallbackBurst       int           // Callback route burst (default: 20)
}

func LoadConfig() Config {
	return Config{
		FrontendCallbackURL: getEnvOrDefault(
			"RELAY_FRONTEND_CALLBACK_URL",
			"http://localhost:3000/teachers/billing/callback",
		),
		BillingURL: getEnvOrDefault(
			"RELAY_BILLING_URL",
			"http://localhost:3000/teachers/billing",
		),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8081),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		CallbackRatePerSec:  getEnvFloatOrDefault("RELAY_CALLBACK_RATE", 10),
		CallbackBurst:       getEnvIntOrDefault("RELAY_CALLBACK_BURST", 20),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
