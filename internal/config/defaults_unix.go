//go:build !windows

package config

import _ "embed"

// defaultSettings is the default settings document for unix-like
// targets: the local container engine is reached over a unix domain
// socket. Exactly one platform document is linked into the binary;
// the selection is fixed at build time.
//
//go:embed defaults/settings_unix.json
var defaultSettings []byte
