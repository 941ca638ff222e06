// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// values come from the process environment (optionally seeded from a `.env`
// file in the working directory) and are parsed into annotated structs. Each
// configuration type is parsed once per process and cached, so independent
// packages can call Load for the same struct without repeated work.
//
// Sentinel errors (ErrParsingConfig, ErrConfigNotLoaded, ErrNilPointer) can
// be classified with errors.Is. Tests that mutate the environment should call
// ResetCache between cases.
package config
