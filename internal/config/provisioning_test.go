package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── UnmarshalJSON ─────────────────────────────────────────────────────────────

// TestProvisioning_Unmarshal_Manual verifies that a "manual" document
// populates exactly the manual variant.
func TestProvisioning_Unmarshal_Manual(t *testing.T) {
	var p Provisioning
	require.NoError(t, json.Unmarshal([]byte(
		`{"source": "manual", "device_connection_string": "HostName=h;DeviceId=d;SharedAccessKey=k"}`,
	), &p))

	assert.Equal(t, SourceManual, p.Source())
	require.NotNil(t, p.Manual())
	assert.Equal(t, "HostName=h;DeviceId=d;SharedAccessKey=k", p.Manual().DeviceConnectionString)
	assert.Nil(t, p.Dps())
}

// TestProvisioning_Unmarshal_Dps verifies that a "dps" document populates
// exactly the dps variant.
func TestProvisioning_Unmarshal_Dps(t *testing.T) {
	var p Provisioning
	require.NoError(t, json.Unmarshal([]byte(
		`{"source": "dps", "global_endpoint": "https://endpoint", "scope_id": "scope"}`,
	), &p))

	assert.Equal(t, SourceDps, p.Source())
	require.NotNil(t, p.Dps())
	assert.Equal(t, "https://endpoint", p.Dps().GlobalEndpoint)
	assert.Equal(t, "scope", p.Dps().ScopeID)
	assert.Nil(t, p.Manual())
}

// TestProvisioning_Unmarshal_UnknownSource verifies that an unrecognized
// discriminant is a decode error.
func TestProvisioning_Unmarshal_UnknownSource(t *testing.T) {
	var p Provisioning
	err := json.Unmarshal([]byte(`{"source": "tpm"}`), &p)
	require.Error(t, err)
	assert.ErrorContains(t, err, "tpm")
}

// TestProvisioning_Unmarshal_MissingSource verifies that a document without
// the discriminant is a decode error.
func TestProvisioning_Unmarshal_MissingSource(t *testing.T) {
	var p Provisioning
	err := json.Unmarshal([]byte(`{"device_connection_string": "HostName=h"}`), &p)
	require.Error(t, err)
	assert.ErrorContains(t, err, "source is missing")
}

// TestProvisioning_Unmarshal_CaseSensitive verifies that the discriminant
// match is exact: upper-cased variants are rejected.
func TestProvisioning_Unmarshal_CaseSensitive(t *testing.T) {
	var p Provisioning
	err := json.Unmarshal([]byte(`{"source": "Manual", "device_connection_string": "x"}`), &p)
	require.Error(t, err)
}

// ── MarshalJSON ───────────────────────────────────────────────────────────────

// TestProvisioning_Marshal_RoundTrip verifies that marshaling flattens the
// active variant with its discriminant and decodes back to an equal value.
func TestProvisioning_Marshal_RoundTrip(t *testing.T) {
	original := Provisioning{
		source: SourceDps,
		dps:    &DpsProvisioning{GlobalEndpoint: "https://endpoint", ScopeID: "scope"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"source": "dps", "global_endpoint": "https://endpoint", "scope_id": "scope"}`, string(data))

	var decoded Provisioning
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

// TestProvisioning_Marshal_Unset verifies that marshaling a zero-value
// union fails instead of inventing a variant.
func TestProvisioning_Marshal_Unset(t *testing.T) {
	_, err := json.Marshal(Provisioning{})
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

// TestProvisioning_Validate verifies the per-variant required-field sets.
func TestProvisioning_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       Provisioning
		wantErr bool
	}{
		{
			name: "manual with connection string",
			p:    Provisioning{source: SourceManual, manual: &ManualProvisioning{DeviceConnectionString: "HostName=h"}},
		},
		{
			name:    "manual without connection string",
			p:       Provisioning{source: SourceManual, manual: &ManualProvisioning{}},
			wantErr: true,
		},
		{
			name: "dps with both fields",
			p:    Provisioning{source: SourceDps, dps: &DpsProvisioning{GlobalEndpoint: "https://e", ScopeID: "s"}},
		},
		{
			name:    "dps without scope id",
			p:       Provisioning{source: SourceDps, dps: &DpsProvisioning{GlobalEndpoint: "https://e"}},
			wantErr: true,
		},
		{
			name:    "unset union",
			p:       Provisioning{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
