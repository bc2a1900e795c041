package content

import (
	"bytes"
	"encoding/json"
)

type fieldState uint8

const (
	absent fieldState = iota
	null
	present
)

// Field is an attribute of a partial update. It distinguishes three states: not provided,
// explicitly cleared and explicitly set. Tag struct fields of this type with `json:",omitzero"`
// so that fields which were not provided are left out of the request body, which leaves the
// stored attribute untouched.
//
//	type CustomerUpdate struct {
//		Name content.Field[string] `json:"name,omitzero"`
//		Age  content.Field[int]    `json:"age,omitzero"`
//	}
type Field[T any] struct {
	value T
	state fieldState
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, state: present}
}

// Null returns a Field that is sent as JSON null.
func Null[T any]() Field[T] {
	return Field[T]{state: null}
}

// IsZero reports whether the field was not provided. It drives the omitzero tag option.
func (f Field[T]) IsZero() bool {
	return f.state == absent
}

// IsNull reports whether the field is explicitly cleared.
func (f Field[T]) IsNull() bool {
	return f.state == null
}

// IsSet reports whether the field holds a value.
func (f Field[T]) IsSet() bool {
	return f.state == present
}

// Get returns the value and whether it is set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == present
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value = zero
		f.state = null
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.state = present
	return nil
}
