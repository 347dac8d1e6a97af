package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// processEnv holds the daemon's process-level environment settings.
// Everything configuring the device itself lives in the settings file;
// the environment only tells the daemon where that file is.
type processEnv struct {
	// SettingsPath is the optional path to the settings file.
	// Env: EDGED_CONFIG
	SettingsPath string `env:"EDGED_CONFIG"`
}

// resolveSettingsPath returns the settings file path from the -c/-config
// flag, falling back to the EDGED_CONFIG environment variable. An empty
// result means "use the embedded defaults".
func resolveSettingsPath() (string, error) {
	var path string
	flag.StringVar(&path, "c", "", "Settings file path")
	flag.StringVar(&path, "config", "", "Settings file path (alias)")
	flag.Parse()

	if path != "" {
		return path, nil
	}

	var e processEnv
	if err := env.Parse(&e); err != nil {
		return "", fmt.Errorf("error reading process environment: %w", err)
	}

	return e.SettingsPath, nil
}
