package constants

import "time"

// The Landscape API signs every request with a shared-secret HMAC. The
// constants below are fixed by the remote service's signing contract; see
// https://ubuntu.com/landscape/docs/make-rest-api-requests for the protocol.
const (
	// SignatureMethod identifies the keyed digest algorithm in the request.
	SignatureMethod = "HmacSHA256"

	// SignatureVersion is the signing protocol version expected by the API.
	SignatureVersion = "2"

	// APIVersion is the Landscape API protocol version sent with every call.
	APIVersion = "2011-08-01"

	// TimestampLayout is the UTC timestamp format for the signed timestamp
	// parameter. No sub-second precision.
	TimestampLayout = "2006-01-02T15:04:05Z"

	// HTTPMethod is the single HTTP verb used for all API calls.
	HTTPMethod = "POST"
)

// AttachmentSeparator joins a file name and its base64 content in the
// CreateScriptAttachment "file" parameter.
const AttachmentSeparator = "$$"

// ContentTypeHeader is the HTTP Content-Type header name.
const ContentTypeHeader = "Content-Type"

// FormContentType is the media type for the signed request body.
const FormContentType = "application/x-www-form-urlencoded"

// DefaultRequestTimeout bounds a single API call when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second
