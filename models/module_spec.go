// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModuleSpec describes a workload module the daemon must run. The type
// parameter T is the engine-specific configuration payload (for the
// docker engine: image, create options, registry auth); ModuleSpec
// carries it opaquely and only requires it to be JSON-(de)codable.
type ModuleSpec[T any] struct {
	// Name is the module's unique name within the daemon
	// (e.g. "edgeAgent").
	Name string `json:"name"`

	// Type tags the workload engine the module runs under
	// (e.g. "docker").
	Type string `json:"type"`

	// Env is the set of environment variables injected into the module
	// at launch. Insertion order is irrelevant.
	Env map[string]string `json:"env"`

	// Config is the engine-specific configuration payload.
	Config T `json:"config"`
}

// SetEnv records an environment variable on the spec, initializing the
// map if the spec was decoded without one.
func (m *ModuleSpec[T]) SetEnv(name, value string) {
	if m.Env == nil {
		m.Env = make(map[string]string)
	}

	m.Env[name] = value
}
