// Package api defines the typed records the Landscape API exchanges and the
// closed set of remote actions the client can invoke.
package api

// ErrorEnvelope is the structured error payload the service returns. It can
// arrive with a non-success status or, for some failures, with HTTP 200.
type ErrorEnvelope struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}
