package request

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/landscapectl/landscapectl/internal/constants"
	"github.com/landscapectl/landscapectl/internal/errors"
)

// Credentials is the shared-secret key pair used to sign API calls.
// Immutable for the process lifetime and never logged.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Request is a fully signed API call ready for transport: the endpoint it
// targets and the final parameter set including the signature.
type Request struct {
	URL    string
	Host   string
	Path   string
	Params *Values
}

// Body renders the form-encoded request body.
func (r *Request) Body() string {
	return r.Params.Encode()
}

// Signer turns an API call into a signed Request. The interface exists so an
// alternate authentication scheme could replace the shared-secret one without
// touching canonicalization or transport.
type Signer interface {
	Sign(action string, params *Values, creds Credentials, now time.Time) (*Request, error)
}

// HMACSigner signs calls with the Landscape shared-secret scheme: an
// HMAC-SHA256 digest over the HTTP verb, host, path and canonical query,
// base64-encoded and appended as the "signature" parameter.
type HMACSigner struct {
	endpoint string
	host     string
	path     string
}

// NewHMACSigner creates a signer for the given API endpoint URI.
func NewHMACSigner(apiURI string) (*HMACSigner, error) {
	u, err := url.Parse(apiURI)
	if err != nil {
		return nil, errors.ErrConfiguration(fmt.Sprintf("invalid API endpoint %q", apiURI), err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.ErrConfiguration(fmt.Sprintf("invalid API endpoint %q", apiURI), nil)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	return &HMACSigner{
		endpoint: apiURI,
		host:     u.Host,
		path:     path,
	}, nil
}

// Sign injects the signing metadata, computes the signature and returns the
// final request. The caller's parameter set is not mutated, so signing the
// same call at the same timestamp is deterministic and repeatable.
func (s *HMACSigner) Sign(action string, params *Values, creds Credentials, now time.Time) (*Request, error) {
	if creds.AccessKey == "" {
		return nil, errors.ErrConfiguration("access key is empty", nil)
	}
	if creds.SecretKey == "" {
		return nil, errors.ErrConfiguration("secret key is empty", nil)
	}

	p := NewValues()
	if params != nil {
		p = params.Clone()
	}
	p.Set("action", action)
	p.Set("access_key_id", creds.AccessKey)
	p.Set("signature_method", constants.SignatureMethod)
	p.Set("signature_version", constants.SignatureVersion)
	p.Set("version", constants.APIVersion)
	p.Set("timestamp", now.UTC().Format(constants.TimestampLayout))

	stringToSign := constants.HTTPMethod + "\n" +
		strings.ToLower(s.host) + "\n" +
		s.path + "\n" +
		p.Encode()

	mac := hmac.New(sha256.New, []byte(creds.SecretKey))
	mac.Write([]byte(stringToSign))
	p.Set("signature", base64.StdEncoding.EncodeToString(mac.Sum(nil)))

	return &Request{
		URL:    s.endpoint,
		Host:   s.host,
		Path:   s.path,
		Params: p,
	}, nil
}
