// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the decoded [Settings] satisfies the daemon's
// startup invariants. The embedded defaults supply every field, so a
// violation here means an override explicitly nulled a value out; the
// load fails loudly rather than starting on a silently guessed value.
//
// Returns nil if the settings are valid, or a descriptive error
// otherwise.
func (s *Settings[T]) validate() error {
	if err := s.provisioning.validate(); err != nil {
		return err
	}

	if s.runtime.Name == "" || s.runtime.Type == "" {
		return errInvalidRuntimeSpec
	}

	if s.hostname == "" {
		return errMissingHostname
	}

	if s.workloadURI.Scheme == "" || s.managementURI.Scheme == "" || s.dockerURI.Scheme == "" {
		return errMissingEndpoints
	}

	return nil
}
