// Package config loads typed configuration structs from environment
// variables, with optional .env file support for development. Components
// declare their settings as structs with `env` tags (see session.Config)
// and call Load once at startup; repeated loads of the same type are served
// from a process-wide cache.
package config
