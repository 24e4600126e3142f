package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Username records a login name under the key "username".
func Username(name string) slog.Attr {
	return slog.String("username", name)
}

// ClientAddress records the client network address under the key "client_address".
func ClientAddress(addr string) slog.Attr {
	return slog.String("client_address", addr)
}

// Outcome records a session validation outcome under the key "outcome".
func Outcome(outcome any) slog.Attr {
	return slog.Any("outcome", outcome)
}
