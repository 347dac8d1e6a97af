// Package http implements the daemon's local management API.
//
// The API is read-only: it serves the settings the daemon was started
// with (system info, the runtime module spec, build version) to local
// tooling. It performs no validation of endpoints or credentials and
// never writes settings back.
package http
