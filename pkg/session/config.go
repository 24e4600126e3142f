package session

import "time"

// Config holds session store configuration
type Config struct {
	// Timeout is the idle time after which a session expires (default: 15m)
	Timeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"15m"`

	// GuestUsername enables guest logins when non-empty
	GuestUsername string `env:"SESSION_GUEST_USERNAME"`
	// GuestPassword is the password used for guest logins
	GuestPassword string `env:"SESSION_GUEST_PASSWORD"`
}

// DefaultConfig returns default session store configuration. Guest login is
// disabled by default.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Minute,
	}
}

// GuestEnabled reports whether guest logins are allowed.
func (c Config) GuestEnabled() bool {
	return c.GuestUsername != ""
}

// NewFromConfig creates a new Store from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Store {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
