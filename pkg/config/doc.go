// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps github.com/joho/godotenv, which reads .env files into the process
// environment, and github.com/caarlos0/env/v11, which maps the environment
// onto struct fields using `env` and `envDefault` tags. Nested structs can be
// scoped with `envPrefix`, and WithPrefix scopes the whole struct.
//
// # Usage
//
//	var cfg tracker.Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Load returns errors joined with ErrParsingConfig or ErrLoadingEnvFile so
// callers can match them with errors.Is while keeping the underlying cause.
// MustLoad panics instead.
package config
