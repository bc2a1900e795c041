// Package content implements the two payload modes of the client: typed Go values encoded
// with encoding/json, and opaque JSON fragments passed through untouched.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotAnObject is returned when document content does not encode to a JSON object.
	ErrNotAnObject = errors.New("content is not a JSON object")

	// ErrConflictingField is returned when content already carries a system attribute with a
	// value different from the one the request needs to set.
	ErrConflictingField = errors.New("conflicting system attribute")
)

// Attribute is a string valued system attribute such as _key or _rev.
type Attribute struct {
	Name  string
	Value string
}

// Encode encodes v. Values implementing json.Marshaler are asked directly so that opaque
// fragments keep their exact bytes.
func Encode(v any) ([]byte, error) {
	if m, ok := v.(json.Marshaler); ok {
		data, err := m.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("invalid JSON from %T", v)
		}
		return data, nil
	}
	return json.Marshal(v)
}

// InjectFields splices attrs at the start of the encoded object raw. The remaining bytes of raw
// are kept as they are. An attribute already present with the same value is not repeated.
func InjectFields(raw []byte, attrs ...Attribute) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) < 2 || trimmed[0] != '{' {
		return nil, ErrNotAnObject
	}
	if len(attrs) == 0 {
		return raw, nil
	}

	var existing map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &existing); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(trimmed) + 32*len(attrs))
	buf.WriteByte('{')
	written := 0
	for _, attr := range attrs {
		if current, ok := existing[attr.Name]; ok {
			var value string
			if err := json.Unmarshal(current, &value); err != nil || value != attr.Value {
				return nil, fmt.Errorf("%w: %s", ErrConflictingField, attr.Name)
			}
			continue
		}

		name, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
		written++
	}

	rest := bytes.TrimSpace(trimmed[1:])
	if written > 0 && rest[0] != '}' {
		buf.WriteByte(',')
	}
	buf.Write(rest)
	return buf.Bytes(), nil
}

// EncodeObject encodes v, which must encode to a JSON object, and injects attrs into it.
func EncodeObject(v any, attrs ...Attribute) ([]byte, error) {
	raw, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return InjectFields(raw, attrs...)
}

// Object is a value encoded as a JSON object with system attributes injected. The injection is
// deferred to encoding time, so a conflict surfaces when the request body is built.
type Object struct {
	Value      any
	Attributes []Attribute
}

// WithAttributes returns an Object for v carrying attrs.
func WithAttributes(v any, attrs ...Attribute) Object {
	return Object{Value: v, Attributes: attrs}
}

func (o Object) MarshalJSON() ([]byte, error) {
	return EncodeObject(o.Value, o.Attributes...)
}
