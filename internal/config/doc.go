// Package config loads the daemon's startup settings.
//
// Settings are assembled in two layers: an embedded, platform-specific
// default document supplies every field, and an optional settings file
// overrides individual fields on top of it. The merge is deep — a file
// that sets a single nested leaf keeps every sibling default intact.
//
// The main entry point is [Load], which is generic over the
// engine-specific configuration payload carried inside the runtime
// module spec.
package config
