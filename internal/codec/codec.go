// Package codec implements the storage representation for configuration
// payloads: base64 transport encoding and JSON well-formedness checks.
//
// The codec is a pure transform — it never touches the Keychain or the
// filesystem. The Keychain medium stores Encode(json bytes); the file
// medium stores the JSON bytes directly.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is returned when stored text is not valid base64.
var ErrDecode = errors.New("invalid base64 payload")

// ErrMalformedPayload is returned when payload bytes are not valid JSON.
var ErrMalformedPayload = errors.New("payload is not valid JSON")

// Encode returns the base64 transport form of raw payload bytes.
func Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode reverses Encode. Non-alphabet characters and bad padding both
// surface as ErrDecode.
func Decode(text string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return raw, nil
}

// ParseJSON parses payload bytes into a generic JSON value. Any
// syntactically valid document is accepted, including non-object top-level
// values. Trailing garbage after the document is rejected.
func ParseJSON(raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return v, nil
}

// SerializeJSON renders a payload value back to JSON bytes. Total for any
// value produced by ParseJSON.
func SerializeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
