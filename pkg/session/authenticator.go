package session

import "context"

// Identity describes the attributes the scan-management backend reports for
// a successfully authenticated user.
type Identity struct {
	Role            string
	Timezone        string
	Severity        string
	Capabilities    string
	Language        string
	PasswordWarning string
}

// Authenticator verifies credentials against the scan-management backend.
// Implementations report an explicit rejection with ErrAuthFailed and an
// unreachable backend with ErrBackendDown; any other error is treated as an
// unspecified login failure. The Store calls Authenticate outside its lock,
// so implementations may block on network I/O.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (Identity, error)
}

// AuthenticatorFunc adapts a plain function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, username, password string) (Identity, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	return f(ctx, username, password)
}
