package client

import (
	"encoding/json"

	"github.com/landscapectl/landscapectl/internal/api"
)

// Decoder parses raw response bodies. The Landscape response format is JSON
// today; the interface keeps the rest of the pipeline independent of the
// serialization so an XML deployment could be supported with one new type.
type Decoder interface {
	Decode(data []byte, v any) error
}

// JSONDecoder decodes JSON response bodies.
type JSONDecoder struct{}

// Decode implements Decoder.
func (JSONDecoder) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// decodeErrorEnvelope probes a body for the service's error envelope. The
// envelope is only recognized when its required code field is present, so a
// success payload that happens to be a JSON object is not misread as an error.
func decodeErrorEnvelope(d Decoder, body []byte) (*api.ErrorEnvelope, bool) {
	var envelope api.ErrorEnvelope
	if err := d.Decode(body, &envelope); err != nil {
		return nil, false
	}
	if envelope.Code == "" {
		return nil, false
	}
	return &envelope, true
}
