package session

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scanweb/console/pkg/langcode"
)

// Store holds every live session of the console process. A single Store
// instance is created at startup and shared by all request handlers; all
// operations are safe for unrestricted concurrent use.
//
// Records are kept in insertion order and scanned linearly; lookups return
// the first match. The store never hands out references to its canonical
// records, only copies, so no caller can observe or cause a torn read after
// the lock is released.
type Store struct {
	mu       sync.Mutex
	sessions []*Session

	config Config
	auth   Authenticator
	log    *slog.Logger
	genID  func() string
	now    func() time.Time
}

// New creates a new session store with the given options.
func New(opts ...Option) *Store {
	s := &Store{
		config: DefaultConfig(),
		log:    slog.Default(),
		genID:  uuid.NewString,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add creates a session for an authenticated user and registers it. If an
// expired session for the same username is still around it is removed first,
// so a stale login never blocks a fresh one. Multiple live sessions per
// username are allowed (one per browser).
//
// The language is normalized to its short code; pwWarning may be empty.
// The returned session is the caller's own copy.
func (s *Store) Add(username, password, timezone, severity, role, capabilities, language, pwWarning, address string) *Session {
	if prev, ok := s.FindByUsername(username); ok && s.expired(prev) {
		s.Remove(prev)
	}

	sess := &Session{
		Cookie:          s.genID(),
		Token:           s.genID(),
		Username:        username,
		Password:        password,
		Role:            role,
		Timezone:        timezone,
		Severity:        severity,
		Capabilities:    capabilities,
		Language:        langcode.Normalize(language),
		PasswordWarning: pwWarning,
		Address:         address,
		LastActivity:    s.now(),
		Guest:           s.config.GuestEnabled() && username == s.config.GuestUsername,
	}

	s.mu.Lock()
	s.sessions = append(s.sessions, sess.clone())
	s.mu.Unlock()

	return sess
}

// FindByToken returns a copy of the first session with the given token.
func (s *Store) FindByToken(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.Token == token {
			return sess.clone(), true
		}
	}
	return nil, false
}

// FindByUsername returns a copy of the first session with the given username.
func (s *Store) FindByUsername(username string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.Username == username {
			return sess.clone(), true
		}
	}
	return nil, false
}

// Validate resolves the token and cookie presented by a request into a live
// session. On every OK outcome the matched (or created) session's
// LastActivity is refreshed before a copy is returned; all other outcomes
// return a nil session.
//
// A token equal to GuestToken requests a guest login when guest logins are
// enabled: a non-expired guest session with a matching cookie is reused,
// otherwise the guest identity is authenticated against the backend and a
// new session is created. The backend call happens outside the store lock;
// two concurrent guest logins without a shared cookie may therefore both
// authenticate and end up with two independent sessions, which is accepted.
//
// An expired session is destroyed as a side effect of the validation attempt
// that discovers it. A token that matches no session at all also reports
// ExpiredToken; see the Outcome documentation.
func (s *Store) Validate(ctx context.Context, cookie, token, address string) (*Session, Outcome) {
	if token == "" {
		return nil, MissingToken
	}

	if s.config.GuestEnabled() && token == GuestToken {
		return s.guestLogin(ctx, cookie, address)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.sessions, func(sess *Session) bool {
		return sess.Token == token
	})
	if idx < 0 {
		return nil, ExpiredToken
	}

	sess := s.sessions[idx]
	switch {
	case s.expired(sess):
		s.sessions = slices.Delete(s.sessions, idx, idx+1)
		return nil, ExpiredToken
	case cookie == "" || sess.Cookie != cookie:
		return nil, MissingCookie
	case sess.Address != address:
		return nil, AddressMismatch
	default:
		sess.LastActivity = s.now()
		return sess.clone(), OK
	}
}

// guestLogin reuses an existing guest session for the presenting browser or
// authenticates the configured guest identity to create a brand new one.
func (s *Store) guestLogin(ctx context.Context, cookie, address string) (*Session, Outcome) {
	if cookie != "" {
		// A returning guest is recognized by the browser cookie alone.
		s.mu.Lock()
		for _, sess := range s.sessions {
			if sess.Guest && sess.Cookie == cookie && !s.expired(sess) {
				sess.LastActivity = s.now()
				cp := sess.clone()
				s.mu.Unlock()
				return cp, OK
			}
		}
		s.mu.Unlock()
	}

	if s.auth == nil {
		s.log.Warn("guest login attempted without an authenticator")
		return nil, GuestLoginError
	}

	identity, err := s.auth.Authenticate(ctx, s.config.GuestUsername, s.config.GuestPassword)
	switch {
	case errors.Is(err, ErrAuthFailed):
		return nil, GuestLoginFailed
	case errors.Is(err, ErrBackendDown):
		return nil, BackendDown
	case err != nil:
		return nil, GuestLoginError
	}

	sess := s.Add(s.config.GuestUsername, s.config.GuestPassword,
		identity.Timezone, identity.Severity, identity.Role,
		identity.Capabilities, identity.Language, identity.PasswordWarning,
		address)
	return sess, OK
}

// SetTimezone updates the timezone of the session with the given token.
// Returns ErrSessionNotFound if no session matches.
func (s *Store) SetTimezone(token, timezone string) error {
	return s.update(token, func(sess *Session) {
		sess.Timezone = timezone
	})
}

// SetPassword updates the password of the session with the given token and
// clears any pending password policy warning.
// Returns ErrSessionNotFound if no session matches.
func (s *Store) SetPassword(token, password string) error {
	return s.update(token, func(sess *Session) {
		sess.Password = password
		sess.PasswordWarning = ""
	})
}

// SetSeverity updates the severity class of the session with the given
// token. Returns ErrSessionNotFound if no session matches.
func (s *Store) SetSeverity(token, severity string) error {
	return s.update(token, func(sess *Session) {
		sess.Severity = severity
	})
}

// SetLanguage updates the interface language of the session with the given
// token, normalizing it to its short code.
// Returns ErrSessionNotFound if no session matches.
func (s *Store) SetLanguage(token, language string) error {
	code := langcode.Normalize(language)
	return s.update(token, func(sess *Session) {
		sess.Language = code
	})
}

// update applies fn to the canonical record with the given token.
func (s *Store) update(token string, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.Token == token {
			fn(sess)
			return nil
		}
	}
	return ErrSessionNotFound
}

// LogoutOtherSessions removes every session of username except the one with
// excludingToken, force-terminating the user's other browser logins while
// keeping the current one alive. Having nothing to remove is not an error.
func (s *Store) LogoutOtherSessions(username, excludingToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = slices.DeleteFunc(s.sessions, func(sess *Session) bool {
		if sess.Username != username || sess.Token == excludingToken {
			return false
		}
		s.log.Debug("logging out session",
			slog.String("username", sess.Username),
			slog.String("token", sess.Token))
		return true
	})
}

// Remove deletes the session matching sess's token. Removing an unknown or
// already-removed session is a no-op.
func (s *Store) Remove(sess *Session) {
	if sess == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = slices.DeleteFunc(s.sessions, func(item *Session) bool {
		return item.Token == sess.Token
	})
}

// Logout removes the session with the given token. An empty token succeeds
// trivially; an unknown token reports ErrSessionNotFound.
func (s *Store) Logout(token string) error {
	if token == "" {
		return nil
	}

	sess, ok := s.FindByToken(token)
	if !ok {
		return ErrSessionNotFound
	}

	s.Remove(sess)
	return nil
}

// Len returns the number of live records, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// expired reports whether sess has been idle longer than the configured
// timeout. Expiry is computed lazily at read time; there is no background
// sweep.
func (s *Store) expired(sess *Session) bool {
	return s.now().Sub(sess.LastActivity) > s.config.Timeout
}
