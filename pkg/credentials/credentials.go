package credentials

import (
	"fmt"
	"net/url"
	"time"

	"github.com/scanweb/console/pkg/session"
)

// Credentials is the request-scoped projection of a session. It is built
// once per request from a validated session, threaded through the request
// pipeline and discarded when the request ends; it is never written back
// into the session store.
//
// The identity fields are deep copies of the session's. The request-only
// fields (CommandStart, Caller, CurrentPage, Params and the filter-ID
// cache) start zeroed and are populated by the request pipeline.
type Credentials struct {
	Username        string
	Password        string
	Role            string
	Timezone        string
	Severity        string
	Capabilities    string
	Token           string
	PasswordWarning string

	// Language is the effective language for this request, which may
	// override the session's stored setting.
	Language string
	// ClientAddress is the address the current request arrived from.
	ClientAddress string
	// SessionID is the session's browser cookie value.
	SessionID string
	// Guest reports whether the session belongs to the guest identity.
	Guest bool

	// CommandStart is when handling of the current command page began.
	CommandStart time.Time
	// Caller is the requesting URL, kept for POST relogin.
	Caller string
	// CurrentPage is the current page URL, kept for refresh.
	CurrentPage string
	// Params holds the request parameters.
	Params url.Values

	lastFilterIDs map[string]string
}

// New projects a validated session into request-scoped credentials. The
// session must satisfy the store's invariants: username, password, role,
// timezone, capabilities and token are all non-empty for every live
// session. A violation is a programming error and panics.
func New(sess *session.Session, language, clientAddress string) *Credentials {
	mustField(sess.Username, "username")
	mustField(sess.Password, "password")
	mustField(sess.Role, "role")
	mustField(sess.Timezone, "timezone")
	mustField(sess.Capabilities, "capabilities")
	mustField(sess.Token, "token")

	return &Credentials{
		Username:        sess.Username,
		Password:        sess.Password,
		Role:            sess.Role,
		Timezone:        sess.Timezone,
		Severity:        sess.Severity,
		Capabilities:    sess.Capabilities,
		Token:           sess.Token,
		PasswordWarning: sess.PasswordWarning,
		Language:        language,
		ClientAddress:   clientAddress,
		SessionID:       sess.Cookie,
		Guest:           sess.Guest,
	}
}

func mustField(value, name string) {
	if value == "" {
		panic(fmt.Sprintf("credentials: session %s is empty", name))
	}
}

// LastFilterID returns the cached filter ID recorded for a page type.
func (c *Credentials) LastFilterID(pageType string) (string, bool) {
	id, ok := c.lastFilterIDs[pageType]
	return id, ok
}

// SetLastFilterID records the filter ID last used for a page type.
func (c *Credentials) SetLastFilterID(pageType, filterID string) {
	if c.lastFilterIDs == nil {
		c.lastFilterIDs = make(map[string]string)
	}
	c.lastFilterIDs[pageType] = filterID
}
