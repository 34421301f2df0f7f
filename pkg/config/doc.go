// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Load parses the environment into any struct using `env` field tags,
//     after reading a `.env` file from the working directory once.
//   - Each configuration type is parsed once and cached by value.
//   - LoadEnv reads additional `.env` files; MustLoad and MustLoadEnv panic
//     on failure for configuration the process cannot start without.
//   - ResetCache clears the cache, which tests use after changing the
//     environment.
//
// # Usage
//
//	var cfg guard.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//	g := guard.New(v, guard.WithConfig(cfg))
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`     – env vars could not be parsed into the struct.
//   - `ErrInvalidConfigType` – a cached value has an unexpected type.
//   - `ErrLoadingEnvFile`    – a .env file could not be read.
//   - `ErrNilPointer`        – nil pointer passed to `Load`/`MustLoad`.
package config
