package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	// No config/app.json or .env in the package directory, so Load
	// resolves everything to the built-in defaults.
	assert.Equal(t, defaultAppPort, AppPort())
	assert.Equal(t, defaultRateLimit, RateLimit())
	assert.False(t, SecureCookies())
}

func TestRateLimitFallsBackOnBadValue(t *testing.T) {
	_ = Load()

	set := func(v string) {
		mu.Lock()
		values["RATE_LIMIT"] = v
		mu.Unlock()
	}
	t.Cleanup(func() { set("") })

	set("not-a-number")
	assert.Equal(t, defaultRateLimit, RateLimit())

	set("-5")
	assert.Equal(t, defaultRateLimit, RateLimit())

	set("60")
	assert.Equal(t, 60, RateLimit())
}
