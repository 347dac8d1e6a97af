package config

import (
	"encoding/json"
	"fmt"
)

// defaultDocument parses the embedded default settings into a fresh
// document map. A parse failure is not user input — the document is
// compiled into the binary — so it aborts startup with a panic instead
// of returning a [ErrConfiguration] the caller could be tempted to
// handle.
func defaultDocument() map[string]any {
	var doc map[string]any
	if err := json.Unmarshal(defaultSettings, &doc); err != nil {
		panic(fmt.Sprintf("invalid embedded default settings: %v", err))
	}

	return doc
}
