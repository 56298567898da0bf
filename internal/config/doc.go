// Package config loads and validates the TOML configuration file.
//
// The file is read once per invocation and the resulting Config is
// immutable for the life of the process. Decoding is strict: unknown keys
// are rejected so typos surface immediately instead of being silently
// ignored.
package config
