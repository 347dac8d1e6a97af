// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-edge-daemon/models"
)

// Settings is the daemon's startup configuration, decoded from the
// merged settings document. The type parameter T is the engine-specific
// configuration payload carried inside the runtime module spec; the
// loader only requires it to be JSON-decodable and never looks inside.
//
// A Settings value is produced once per process start by [Load] and is
// immutable afterwards, with one exception: [Settings.Runtime] returns
// a mutable view so the daemon can patch resolved workload identity
// into the spec before launching it. The caller owns the value
// exclusively; no internal locking is performed.
type Settings[T any] struct {
	provisioning  Provisioning
	runtime       models.ModuleSpec[T]
	hostname      string
	workloadURI   URI
	managementURI URI
	dockerURI     URI
}

// settingsDoc mirrors the settings document layout for JSON
// (de)serialization of the unexported [Settings] fields.
type settingsDoc[T any] struct {
	Provisioning  Provisioning         `json:"provisioning"`
	Runtime       models.ModuleSpec[T] `json:"runtime"`
	Hostname      string               `json:"hostname"`
	WorkloadURI   URI                  `json:"workload_uri"`
	ManagementURI URI                  `json:"management_uri"`
	DockerURI     URI                  `json:"docker_uri"`
}

// Load assembles the daemon settings.
//
// The embedded platform default document is the baseline. When
// settingsPath is non-empty, the file it names is deep-merged over the
// baseline before decoding — fields present in the file override the
// defaults, fields absent from the file keep them. An empty
// settingsPath yields the defaults unchanged.
//
// Any failure — unreadable file, malformed document, schema mismatch,
// non-absolute URI, unknown provisioning source — aborts the whole
// load with an error wrapping [ErrConfiguration]; a partially
// populated Settings is never returned.
func Load[T any](settingsPath string) (*Settings[T], error) {
	doc := defaultDocument()

	if settingsPath != "" {
		merged, err := mergeSettingsFile(doc, settingsPath)
		if err != nil {
			return nil, err
		}
		doc = merged
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: error encoding merged settings: %w", ErrConfiguration, err)
	}

	settings := new(Settings[T])
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: error decoding settings: %w", ErrConfiguration, err)
	}

	if err := settings.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return settings, nil
}

// Provisioning returns the device provisioning method.
func (s *Settings[T]) Provisioning() *Provisioning {
	return &s.provisioning
}

// Runtime returns a mutable view of the runtime module spec. Downstream
// logic patches resolved workload identity into it after load; any
// concurrent access to the same Settings is the caller's to serialize.
func (s *Settings[T]) Runtime() *models.ModuleSpec[T] {
	return &s.runtime
}

// Hostname returns the device hostname.
func (s *Settings[T]) Hostname() string {
	return s.hostname
}

// WorkloadURI returns the endpoint on which the daemon serves the
// workload API.
func (s *Settings[T]) WorkloadURI() *URI {
	return &s.workloadURI
}

// ManagementURI returns the endpoint on which the daemon serves the
// management API.
func (s *Settings[T]) ManagementURI() *URI {
	return &s.managementURI
}

// DockerURI returns the address of the local container engine.
func (s *Settings[T]) DockerURI() *URI {
	return &s.dockerURI
}

// UnmarshalJSON decodes the settings document.
func (s *Settings[T]) UnmarshalJSON(data []byte) error {
	var doc settingsDoc[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*s = Settings[T]{
		provisioning:  doc.Provisioning,
		runtime:       doc.Runtime,
		hostname:      doc.Hostname,
		workloadURI:   doc.WorkloadURI,
		managementURI: doc.ManagementURI,
		dockerURI:     doc.DockerURI,
	}

	return nil
}

// MarshalJSON re-encodes the settings into the document layout they
// were decoded from. The schema is lossless for values it accepted, so
// decode-encode-decode round-trips to an equal value.
func (s Settings[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(settingsDoc[T]{
		Provisioning:  s.provisioning,
		Runtime:       s.runtime,
		Hostname:      s.hostname,
		WorkloadURI:   s.workloadURI,
		ManagementURI: s.managementURI,
		DockerURI:     s.dockerURI,
	})
}
