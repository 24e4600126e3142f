package credentials

import "context"

type credentialsContextKey struct{}

// WithContext adds credentials to the context
func WithContext(ctx context.Context, creds *Credentials) context.Context {
	return context.WithValue(ctx, credentialsContextKey{}, creds)
}

// FromContext retrieves credentials from the context
func FromContext(ctx context.Context) (*Credentials, bool) {
	creds, ok := ctx.Value(credentialsContextKey{}).(*Credentials)
	return creds, ok
}

// MustFromContext retrieves credentials from the context or panics
func MustFromContext(ctx context.Context) *Credentials {
	creds, ok := FromContext(ctx)
	if !ok {
		panic("credentials: not found in context")
	}
	return creds
}
