package server

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-edge-daemon/internal/config"
	"github.com/MKhiriev/go-edge-daemon/internal/logger"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

// TestNewServer_HTTPURI verifies that an http management URI is accepted.
func TestNewServer_HTTPURI(t *testing.T) {
	uri, err := config.ParseURI("http://127.0.0.1:8080")
	require.NoError(t, err)

	srv, err := NewServer(noopHandler(), &uri, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

// TestNewServer_NilURI verifies that a missing management URI is rejected.
func TestNewServer_NilURI(t *testing.T) {
	srv, err := NewServer(noopHandler(), nil, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoManagementEndpoint)
}

// TestNewServer_UnsupportedScheme verifies that schemes other than http and
// unix are rejected.
func TestNewServer_UnsupportedScheme(t *testing.T) {
	uri, err := config.ParseURI("ftp://127.0.0.1:21")
	require.NoError(t, err)

	srv, err := NewServer(noopHandler(), &uri, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errUnsupportedScheme)
}

// TestListen_TCP verifies that an http URI produces a TCP listener.
func TestListen_TCP(t *testing.T) {
	uri, err := config.ParseURI("http://127.0.0.1:0")
	require.NoError(t, err)

	srv, err := NewServer(noopHandler(), &uri, logger.Nop())
	require.NoError(t, err)

	listener, err := srv.listen()
	require.NoError(t, err)
	defer listener.Close()

	assert.Equal(t, "tcp", listener.Addr().Network())
}

// TestListen_UnixSocket verifies that a unix URI produces a domain socket
// listener at the URI's path.
func TestListen_UnixSocket(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "mgmt.sock")
	uri, err := config.ParseURI("unix://" + socketPath)
	require.NoError(t, err)

	srv, err := NewServer(noopHandler(), &uri, logger.Nop())
	require.NoError(t, err)

	listener, err := srv.listen()
	require.NoError(t, err)
	defer listener.Close()

	assert.Equal(t, "unix", listener.Addr().Network())
	assert.Equal(t, socketPath, listener.Addr().String())
}
