// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package docker defines the docker-engine configuration payload
// embedded in the runtime module spec of the settings document.
package docker

// Config is the docker-specific module configuration. It is the
// concrete type the daemon plugs into the generic settings loader.
type Config struct {
	// Image is the container image reference to run
	// (e.g. "microsoft/azureiotedge-agent:1.0-preview").
	Image string `json:"image"`

	// CreateOptions is an opaque JSON string of extra container create
	// options, passed verbatim to the engine.
	CreateOptions string `json:"create_options"`

	// Auth carries the registry credentials used to pull Image.
	Auth AuthConfig `json:"auth"`
}

// AuthConfig holds container registry credentials. An empty value means
// the image is pulled anonymously.
type AuthConfig struct {
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	ServerAddress string `json:"serveraddress,omitempty"`
}
