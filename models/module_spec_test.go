package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleSpec_SetEnv verifies that SetEnv records variables and
// initializes the map when the spec was decoded without one.
func TestModuleSpec_SetEnv(t *testing.T) {
	var spec ModuleSpec[struct{}]
	require.Nil(t, spec.Env)

	spec.SetEnv("RuntimeLogLevel", "debug")
	spec.SetEnv("RuntimeLogLevel", "info")

	assert.Equal(t, map[string]string{"RuntimeLogLevel": "info"}, spec.Env)
}

// TestModuleSpec_JSONLayout verifies the document field names and that the
// engine-specific payload decodes through the type parameter.
func TestModuleSpec_JSONLayout(t *testing.T) {
	type engineConfig struct {
		Image string `json:"image"`
	}

	var spec ModuleSpec[engineConfig]
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "edgeAgent",
		"type": "docker",
		"env": {"A": "1"},
		"config": {"image": "example.com/agent:1.0"}
	}`), &spec))

	assert.Equal(t, "edgeAgent", spec.Name)
	assert.Equal(t, "docker", spec.Type)
	assert.Equal(t, map[string]string{"A": "1"}, spec.Env)
	assert.Equal(t, "example.com/agent:1.0", spec.Config.Image)
}
