package config

import "errors"

// ErrConfiguration is the single error kind surfaced by [Load]. Every
// load failure — an unreadable settings file, malformed JSON, or a
// merged document that does not decode into a valid settings schema —
// wraps it, so callers check errors.Is(err, ErrConfiguration) and log
// the full cause chain.
var ErrConfiguration = errors.New("invalid configuration")

// Validation errors returned by [Settings.validate] when the merged
// document decoded, but required values are missing or zeroed out by an
// explicit null override.
var (
	errMissingHostname    = errors.New("hostname must not be empty")
	errInvalidRuntimeSpec = errors.New("runtime module spec must have a name and a type")
	errMissingEndpoints   = errors.New("workload, management and docker URIs must all be set")
)
