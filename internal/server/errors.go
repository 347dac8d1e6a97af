package server

import "errors"

var (
	errNoManagementEndpoint = errors.New("management URI is not set")
	errUnsupportedScheme    = errors.New("management URI scheme must be http or unix")
)
