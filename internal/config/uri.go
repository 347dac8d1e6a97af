package config

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// URI is an absolute URI field of the settings document. It embeds
// url.URL, so the full URL API (Scheme, Host, Path, String, ...) is
// available directly on the value.
//
// Relative references are rejected at decode time: every endpoint the
// daemon exposes or connects to must carry an explicit scheme, e.g.
// "http://0.0.0.0:8080" or "unix:///var/run/docker.sock".
type URI struct {
	url.URL
}

// ParseURI parses raw into a URI, rejecting values that are not
// well-formed absolute URIs.
func ParseURI(raw string) (URI, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return URI{}, fmt.Errorf("error parsing uri %q: %w", raw, err)
	}

	if !parsed.IsAbs() {
		return URI{}, fmt.Errorf("uri %q is not absolute", raw)
	}

	return URI{*parsed}, nil
}

// UnmarshalJSON decodes a JSON string into an absolute URI.
func (u *URI) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseURI(raw)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

// MarshalJSON encodes the URI back to its JSON string form.
func (u URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}
