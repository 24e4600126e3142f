package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanweb/console/pkg/config"
	"github.com/scanweb/console/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.Equal(t, 15*time.Minute, cfg.Timeout)
	assert.False(t, cfg.GuestEnabled())
}

func TestConfig_GuestEnabled(t *testing.T) {
	t.Parallel()

	cfg := session.Config{GuestUsername: "guest"}
	assert.True(t, cfg.GuestEnabled())

	cfg.GuestUsername = ""
	assert.False(t, cfg.GuestEnabled())
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("SESSION_TIMEOUT", "30m")
	t.Setenv("SESSION_GUEST_USERNAME", "guest")
	t.Setenv("SESSION_GUEST_PASSWORD", "guest-pw")

	var cfg session.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 30*time.Minute, cfg.Timeout)
	assert.Equal(t, "guest", cfg.GuestUsername)
	assert.Equal(t, "guest-pw", cfg.GuestPassword)
	assert.True(t, cfg.GuestEnabled())

	store := session.NewFromConfig(cfg)
	assert.NotNil(t, store)
}
