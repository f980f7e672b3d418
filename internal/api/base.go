package api

import "time"

// DefaultBaseURL is the server used when no server_url is configured.
const DefaultBaseURL = "http://localhost:8000"

// NewDefaultClient builds a client pointed at the default server.
func NewDefaultClient(token string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, token, timeout...)
}
