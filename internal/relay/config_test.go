package relay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:3000/teachers/billing/callback", cfg.FrontendCallbackURL)
	assert.Equal(t, "http://localhost:3000/teachers/billing", cfg.BillingURL)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	assert.Equal(t, float64(10), cfg.CallbackRatePerSec)
	assert.Equal(t, 20, cfg.CallbackBurst)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RELAY_FRONTEND_CALLBACK_URL", "https://lms.example.com/billing/callback")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")
	t.Setenv("RELAY_CALLBACK_RATE", "2.5")

	cfg := LoadConfig()

	assert.Equal(t, "https://lms.example.com/billing/callback", cfg.FrontendCallbackURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	assert.Equal(t, 2.5, cfg.CallbackRatePerSec)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}
