package session

import "errors"

var (
	// ErrSessionNotFound indicates no live session matches the given token
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrAuthFailed indicates the backend rejected the supplied credentials
	ErrAuthFailed = errors.New("session.authentication_failed")

	// ErrBackendDown indicates the backend could not be reached
	ErrBackendDown = errors.New("session.backend_down")

	// ErrNoAuthenticator indicates guest login was attempted without a
	// configured Authenticator
	ErrNoAuthenticator = errors.New("session.no_authenticator")
)
