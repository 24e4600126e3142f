package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Store
type Option func(*Store)

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(s *Store) {
		s.config = config
	}
}

// WithTimeout sets the idle timeout after which sessions expire
func WithTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		s.config.Timeout = timeout
	}
}

// WithGuest enables guest logins under the given identity
func WithGuest(username, password string) Option {
	return func(s *Store) {
		s.config.GuestUsername = username
		s.config.GuestPassword = password
	}
}

// WithAuthenticator sets the backend used to authenticate guest logins
func WithAuthenticator(auth Authenticator) Option {
	return func(s *Store) {
		s.auth = auth
	}
}

// WithLogger sets the logger used for forced-logout diagnostics
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTokenGenerator replaces the identifier generator used for cookies and
// tokens. The generator must return values unique for the process lifetime.
func WithTokenGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.genID = gen
		}
	}
}

// WithNowFunc replaces the clock, letting tests control expiry
func WithNowFunc(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}
