package session

// Outcome classifies the result of a Validate call. Exactly one outcome is
// produced per call; OK is the only outcome accompanied by a session.
type Outcome int

const (
	// OK means a valid session was found or created.
	OK Outcome = iota
	// BadToken means the token parameter was syntactically unusable. Validate
	// never produces it; callers that pre-check the raw request parameter use
	// it to report the same class of failure through one type.
	BadToken
	// ExpiredToken means the session timed out, or no session matched the
	// token at all. The conflation of "never issued" with "timed out" is
	// intentional and preserved for compatibility with existing callers.
	ExpiredToken
	// MissingCookie means the session exists but the browser cookie was
	// absent or did not match.
	MissingCookie
	// MissingToken means no token was supplied.
	MissingToken
	// GuestLoginFailed means the backend rejected the configured guest
	// credentials.
	GuestLoginFailed
	// BackendDown means the backend was unreachable during a guest login.
	BackendDown
	// AddressMismatch means the request came from a different client address
	// than the one the session was created from.
	AddressMismatch
	// GuestLoginError means the guest login failed for a reason other than
	// rejection or an unreachable backend.
	GuestLoginError
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case BadToken:
		return "bad token"
	case ExpiredToken:
		return "expired token"
	case MissingCookie:
		return "bad or missing cookie"
	case MissingToken:
		return "bad or missing token"
	case GuestLoginFailed:
		return "guest login failed"
	case BackendDown:
		return "backend down"
	case AddressMismatch:
		return "client address mismatch"
	case GuestLoginError:
		return "guest login error"
	default:
		return "unknown outcome"
	}
}
