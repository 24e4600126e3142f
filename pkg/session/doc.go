// Package session implements the in-memory session store of the scan
// management web console. It tracks logged-in users, issues and validates
// session tokens and browser cookies, supports a shared guest identity,
// enforces idle expiry and lets one login force-terminate a user's other
// browser sessions.
//
// # Architecture
//
// A single Store instance owns every live session record for the process
// lifetime. One store-wide mutex serializes all scans and mutations; read
// operations hand out independent copies of records rather than references,
// so callers never need the lock themselves. Sessions expire lazily: an
// idle record is destroyed by whichever validation attempt discovers it,
// there is no background sweep and nothing survives a process restart.
//
// Backend credential verification is delegated to an Authenticator and only
// happens during guest logins; the call is made outside the store lock so a
// slow backend never stalls unrelated requests.
//
// # Usage
//
//	store := session.New(
//	    session.WithTimeout(15*time.Minute),
//	    session.WithGuest("guest", "guest"),
//	    session.WithAuthenticator(backend),
//	)
//
//	sess, outcome := store.Validate(ctx, cookie, token, clientAddr)
//	if outcome != session.OK {
//	    // prompt for a (re)login, message chosen by outcome
//	}
//	creds := credentials.New(sess, lang, clientAddr)
//
// # Error Handling
//
// Validate reports caller-input defects (missing token, expired token, bad
// cookie, address mismatch) and guest-login failures through the Outcome
// enum; none of them are errors in the Go sense. The setter and Logout
// operations return ErrSessionNotFound when no session matches the token.
package session
