package session

import "time"

// GuestToken is the reserved token value a browser presents to request a
// guest login instead of a regular token lookup.
const GuestToken = "guest"

// Session is a live login record. The canonical record is owned by the
// Store; every read operation hands out an independent copy, so callers may
// inspect or mutate the returned value freely without holding any lock.
type Session struct {
	// Cookie is the per-browser identifier, generated at creation and
	// immutable afterwards.
	Cookie string
	// Token is the per-login identifier carried by the client on each
	// request, generated at creation and immutable afterwards.
	Token string

	Username     string
	Password     string
	Role         string
	Timezone     string
	Severity     string
	Capabilities string
	// Language is the user interface language in short form, like "en".
	Language string
	// PasswordWarning holds a pending password policy warning, empty if none.
	PasswordWarning string
	// Address is the client network address recorded at creation.
	Address string

	// LastActivity is refreshed on every successful validation.
	LastActivity time.Time
	// Guest reports whether this session was created under the configured
	// guest identity.
	Guest bool
}

func (s *Session) clone() *Session {
	cp := *s
	return &cp
}
