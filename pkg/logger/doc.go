// Package logger provides the console's slog factory: a single New function
// configured through functional options (format, level, output, static
// attributes) plus transparent injection of context values into every
// record. Attribute helpers keep key naming consistent across packages.
package logger
