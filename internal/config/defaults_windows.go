//go:build windows

package config

import _ "embed"

// defaultSettings is the default settings document for windows
// targets: the local container engine is reached over TCP loopback.
// Exactly one platform document is linked into the binary; the
// selection is fixed at build time.
//
//go:embed defaults/settings_windows.json
var defaultSettings []byte
