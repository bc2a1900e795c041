// Package method defines the request descriptor every operation of this client implements.
//
// A method is a plain value describing one call: which kind of operation it is, the resource
// path, the query parameters, the headers and an optional body. Rendering a method never
// consults anything but the method's own fields, so methods are safe to share between
// goroutines once built.
package method

import (
	"encoding/json"
	"fmt"

	"arangodoc/internal/protocol"
)

// Operation is the logical category of a call. The transport maps it to an HTTP verb.
type Operation int

const (
	Read Operation = iota
	ReadHeader
	Create
	Replace
	Modify
	Delete
)

func (o Operation) String() string {
	switch o {
	case Read:
		return "read"
	case ReadHeader:
		return "read_header"
	case Create:
		return "create"
	case Replace:
		return "replace"
	case Modify:
		return "modify"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Prepare describes how a method is rendered into a request.
//
// The set of implementations is closed: the unexported prepare method is only satisfied by
// embedding Sealed, which is reserved for the operations of this module.
type Prepare interface {
	// Operation returns the logical category of the call.
	Operation() Operation
	// Path returns the resource path relative to the database.
	Path() string
	// Parameters returns the query parameters. Parameters left at the server default are absent.
	Parameters() Parameters
	// Header returns the request headers specific to this call.
	Header() Parameters
	// Content returns the request body or nil.
	Content() any

	prepare()
}

// Method is a Prepare whose successful response decodes into R.
type Method[R any] interface {
	Prepare
	// ReturnType tells where the result is found in a successful response.
	ReturnType() protocol.ReturnType
	// DecodeResult turns the raw result extracted by protocol.Interpret into R.
	DecodeResult(res *protocol.Response, raw json.RawMessage) (R, error)
}

// Sealed is embedded by every method of this module.
type Sealed struct{}

func (Sealed) prepare() {}

// JSONResult is embedded by methods whose raw result unmarshals into R as is.
type JSONResult[R any] struct{}

func (JSONResult[R]) DecodeResult(_ *protocol.Response, raw json.RawMessage) (R, error) {
	return DecodeJSON[R](raw)
}

// DecodeJSON unmarshals raw into a new R. A result that does not fit R is a protocol violation.
func DecodeJSON[R any](raw []byte) (R, error) {
	var result R
	if len(raw) == 0 {
		return result, fmt.Errorf("%w: empty result", protocol.ErrProtocolViolation)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("%w: decode %T: %v", protocol.ErrProtocolViolation, result, err)
	}
	return result, nil
}
