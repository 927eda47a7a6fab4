// Package auth provides MusicBrainz web service authentication.
package auth

import "net/http"

// Credentials holds the MusicBrainz account used for authenticated
// operations.
type Credentials struct {
	Username string
	Password string
}

// Apply adds authentication to an HTTP request.
func (c *Credentials) Apply(req *http.Request) {
	if c == nil {
		return
	}
	req.SetBasicAuth(c.Username, c.Password)
}

// Valid reports whether credentials are configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.Username != "" && c.Password != ""
}
