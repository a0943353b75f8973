// Package common contains constants shared by the VideoGenius client layers.
package common

// APIBasePath is appended to the configured server URL.
const APIBasePath = "/api"

// HTTP headers and values used on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeJSON         = "application/json"
)
