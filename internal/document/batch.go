package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"arangodoc/internal/protocol"
)

// Outcome is the result of one item of a batch call: either a value or the error the server
// reported for that item.
type Outcome[T any] struct {
	Value T                      `json:"value,omitzero"`
	Err   *protocol.ElementError `json:"error,omitempty"`
}

// Ok reports whether the item succeeded.
func (o Outcome[T]) Ok() bool {
	return o.Err == nil
}

// Get returns the value of a successful item or its error.
func (o Outcome[T]) Get() (T, error) {
	if o.Err != nil {
		var zero T
		return zero, o.Err
	}
	return o.Value, nil
}

// Succeeded counts the successful outcomes.
func Succeeded[T any](outcomes []Outcome[T]) int {
	n := 0
	for _, o := range outcomes {
		if o.Ok() {
			n++
		}
	}
	return n
}

// decodeBatch associates the elements of a batch response with the n input items. The response
// must be an array of exactly n elements, anything else is a protocol violation that fails the
// whole call. Element failures do not affect their siblings.
func decodeBatch[T any](raw []byte, n int, decode func(elem []byte) (T, error)) ([]Outcome[T], error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: batch response is not an array: %v", protocol.ErrProtocolViolation, err)
	}
	if len(elems) != n {
		return nil, fmt.Errorf("%w: batch of %d items answered with %d elements", protocol.ErrProtocolViolation, n, len(elems))
	}

	outcomes := make([]Outcome[T], n)
	for i, elem := range elems {
		// Elements carry no discriminant. The error probe must run first: an element is an
		// error if and only if it has "error": true, otherwise it has the success shape.
		if elemErr, ok := protocol.ProbeElementError(elem); ok {
			outcomes[i].Err = elemErr
			continue
		}
		if !isObject(elem) {
			return nil, fmt.Errorf("%w: batch element %d is not an object", protocol.ErrProtocolViolation, i)
		}
		value, err := decode(elem)
		if err != nil {
			if !errors.Is(err, protocol.ErrProtocolViolation) {
				err = fmt.Errorf("%w: %v", protocol.ErrProtocolViolation, err)
			}
			return nil, fmt.Errorf("batch element %d: %w", i, err)
		}
		outcomes[i].Value = value
	}
	return outcomes, nil
}

// decodeNewDocument decodes the document echoed in the new field of a write result.
func decodeNewDocument[T any](elem []byte) (Document[T], error) {
	var wire struct {
		New json.RawMessage `json:"new"`
	}
	if err := json.Unmarshal(elem, &wire); err != nil {
		return Document[T]{}, err
	}
	if len(wire.New) == 0 {
		return Document[T]{}, fmt.Errorf("missing field %q", protocol.FieldNew)
	}
	var doc Document[T]
	err := json.Unmarshal(wire.New, &doc)
	return doc, err
}

func isObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
