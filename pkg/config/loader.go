package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// Load populates cfg from environment variables based on `env` struct tags.
// A .env file in the working directory is read into the environment the
// first time any configuration is loaded. Each configuration type is parsed
// once per process; later calls for the same type return the cached value,
// so every component sees identical settings.
//
// Example:
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env is fine, the environment may be set directly.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded[key] = *cfg
	return nil
}

// MustLoad works like Load but panics on failure. Intended for settings the
// process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeName[T](), err))
	}
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
