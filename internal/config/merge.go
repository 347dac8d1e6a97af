package config

import (
	"encoding/json"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// mergeSettingsFile reads the settings file at settingsPath and deep-
// merges it over defaults: every leaf present in the file wins, every
// leaf absent from the file keeps its default, nested objects such as
// runtime.config are merged key by key. Arrays are treated as atomic
// leaves — an override array replaces the default array wholesale.
//
// All failures (missing or unreadable file, malformed JSON) wrap
// [ErrConfiguration] and name the offending path.
func mergeSettingsFile(defaults map[string]any, settingsPath string) (map[string]any, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading settings file %q: %w", ErrConfiguration, settingsPath, err)
	}

	var override map[string]any
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("%w: error parsing settings file %q: %w", ErrConfiguration, settingsPath, err)
	}

	merged := defaults
	if err := mergo.Merge(&merged, override, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("%w: error merging settings file %q: %w", ErrConfiguration, settingsPath, err)
	}

	return merged, nil
}
