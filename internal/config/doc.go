// Package config resolves the query, filename and case sensitivity for a run
// from positional arguments and the CASE_INSENSITIVE environment variable.
// Supplemental settings (color, log level) are layered from YAML files,
// environment variables and CLI flags with precedence: CLI flags >
// Environment variables > YAML config > Defaults.
package config
