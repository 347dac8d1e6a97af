// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Recognized values of the "source" discriminant of the provisioning
// object in the settings document.
const (
	SourceManual = "manual"
	SourceDps    = "dps"
)

// Provisioning describes how the device obtains its identity. It is a
// tagged union discriminated by the "source" field of the settings
// document: exactly one of the variant payloads is populated after a
// successful decode, and an unrecognized discriminant is a decode
// error, never silently mapped to a default variant.
type Provisioning struct {
	source string
	manual *ManualProvisioning
	dps    *DpsProvisioning
}

// ManualProvisioning carries a pre-shared device connection string.
type ManualProvisioning struct {
	// DeviceConnectionString is the opaque credential string issued for
	// this device. The daemon never parses it; it is handed verbatim to
	// the identity layer.
	DeviceConnectionString string `json:"device_connection_string"`
}

// DpsProvisioning carries the endpoints for dynamic registration
// through a device provisioning service. The device-specific
// registration id is resolved elsewhere, after settings load.
type DpsProvisioning struct {
	// GlobalEndpoint is the provisioning service endpoint shared by all
	// devices of the deployment.
	GlobalEndpoint string `json:"global_endpoint"`

	// ScopeID identifies the enrollment group within the provisioning
	// service.
	ScopeID string `json:"scope_id"`
}

// Source returns the discriminant of the populated variant, one of
// [SourceManual] or [SourceDps].
func (p *Provisioning) Source() string {
	return p.source
}

// Manual returns the manual variant payload, or nil if the
// provisioning source is not "manual".
func (p *Provisioning) Manual() *ManualProvisioning {
	return p.manual
}

// Dps returns the dps variant payload, or nil if the provisioning
// source is not "dps".
func (p *Provisioning) Dps() *DpsProvisioning {
	return p.dps
}

// UnmarshalJSON reads the "source" discriminant and then decodes the
// fields belonging to that variant. The match is exact and lower-case;
// a missing or unknown discriminant fails the decode.
func (p *Provisioning) UnmarshalJSON(data []byte) error {
	var tag struct {
		Source string `json:"source"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	switch tag.Source {
	case SourceManual:
		manual := new(ManualProvisioning)
		if err := json.Unmarshal(data, manual); err != nil {
			return err
		}
		*p = Provisioning{source: SourceManual, manual: manual}

	case SourceDps:
		dps := new(DpsProvisioning)
		if err := json.Unmarshal(data, dps); err != nil {
			return err
		}
		*p = Provisioning{source: SourceDps, dps: dps}

	case "":
		return errors.New("provisioning source is missing")

	default:
		return fmt.Errorf("unknown provisioning source %q", tag.Source)
	}

	return nil
}

// MarshalJSON flattens the populated variant back into a single object
// carrying the "source" discriminant alongside the variant's fields.
func (p Provisioning) MarshalJSON() ([]byte, error) {
	switch p.source {
	case SourceManual:
		return json.Marshal(struct {
			Source string `json:"source"`
			ManualProvisioning
		}{SourceManual, *p.manual})

	case SourceDps:
		return json.Marshal(struct {
			Source string `json:"source"`
			DpsProvisioning
		}{SourceDps, *p.dps})

	default:
		return nil, errors.New("provisioning source is not set")
	}
}

// validate checks that the populated variant carries all of its
// required fields. JSON decoding alone does not enforce presence, so
// an override that drops a variant field is caught here.
func (p *Provisioning) validate() error {
	switch p.source {
	case SourceManual:
		if p.manual.DeviceConnectionString == "" {
			return errors.New("manual provisioning requires a device connection string")
		}
	case SourceDps:
		if p.dps.GlobalEndpoint == "" || p.dps.ScopeID == "" {
			return errors.New("dps provisioning requires a global endpoint and a scope id")
		}
	default:
		return errors.New("provisioning source is not set")
	}

	return nil
}
