package content

import "encoding/json"

// JSONString is an opaque, already serialized JSON value. It is written exactly as given and
// read back verbatim, for callers that have no schema for their documents.
type JSONString string

// FromStr wraps s without validating it.
func FromStr(s string) JSONString {
	return JSONString(s)
}

// FromBytes wraps a copy of data without validating it.
func FromBytes(data []byte) JSONString {
	return JSONString(data)
}

// String returns the raw JSON text.
func (s JSONString) String() string {
	return string(s)
}

// Bytes returns the raw JSON text as bytes.
func (s JSONString) Bytes() []byte {
	return []byte(s)
}

// Valid reports whether the fragment is well formed JSON.
func (s JSONString) Valid() bool {
	return json.Valid([]byte(s))
}

// Decode unmarshals the fragment into v.
func (s JSONString) Decode(v any) error {
	return json.Unmarshal([]byte(s), v)
}

func (s JSONString) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(s), nil
}

func (s *JSONString) UnmarshalJSON(data []byte) error {
	*s = JSONString(data)
	return nil
}
