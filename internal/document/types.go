package document

import (
	"encoding/json"
	"fmt"

	"arangodoc/internal/content"
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// NewDocument is the content of a document to be inserted, with an optional key chosen by the
// caller. Without a key the server generates one.
type NewDocument[T any] struct {
	key     Key
	content T
}

// NewDocumentFrom returns a NewDocument for c without a key.
func NewDocumentFrom[T any](c T) NewDocument[T] {
	return NewDocument[T]{content: c}
}

// WithKey returns a copy of d with the key set.
func (d NewDocument[T]) WithKey(key Key) NewDocument[T] {
	d.key = key
	return d
}

// Key returns the pre-assigned key, if any.
func (d NewDocument[T]) Key() (Key, bool) {
	return d.key, d.key != ""
}

// Content returns the document content.
func (d NewDocument[T]) Content() T {
	return d.content
}

// MarshalJSON encodes the content with the _key attribute added when a key is set.
func (d NewDocument[T]) MarshalJSON() ([]byte, error) {
	if d.key == "" {
		return content.EncodeObject(d.content)
	}
	return content.EncodeObject(d.content, content.Attribute{Name: protocol.FieldDocumentKey, Value: string(d.key)})
}

// Update is the payload of a replace or partial update of the document with the given key.
// The optional revision is the body level concurrency check; it is only sent when the method
// disables ignoring revisions.
type Update[T any] struct {
	key      Key
	revision Revision
	content  T
}

// NewUpdate returns an Update of the document key with payload c.
func NewUpdate[T any](key Key, c T) Update[T] {
	return Update[T]{key: key, content: c}
}

// WithRevision returns a copy of u expecting the document to be at revision rev.
func (u Update[T]) WithRevision(rev Revision) Update[T] {
	u.revision = rev
	return u
}

// Key returns the key of the document to update.
func (u Update[T]) Key() Key {
	return u.key
}

// Revision returns the expected revision, if any.
func (u Update[T]) Revision() (Revision, bool) {
	return u.revision, u.revision != ""
}

// Content returns the update payload.
func (u Update[T]) Content() T {
	return u.content
}

// body returns the payload with the system attributes the request needs. _rev is only
// embedded when the server is asked to check it.
func (u Update[T]) body(checkRevision bool) content.Object {
	attrs := []content.Attribute{{Name: protocol.FieldDocumentKey, Value: string(u.key)}}
	if checkRevision && u.revision != "" {
		attrs = append(attrs, content.Attribute{Name: protocol.FieldDocumentRevision, Value: string(u.revision)})
	}
	return content.WithAttributes(u.content, attrs...)
}

// Header identifies a stored document at one revision.
type Header struct {
	ID       ID       `json:"_id"`
	Key      Key      `json:"_key"`
	Revision Revision `json:"_rev"`
}

// validate fails when one of the system attributes of a decoded header is missing.
func (h Header) validate() error {
	var missing string
	switch {
	case h.ID.IsZero():
		missing = protocol.FieldDocumentID
	case h.Key == "":
		missing = protocol.FieldDocumentKey
	case h.Revision == "":
		missing = protocol.FieldDocumentRevision
	default:
		return nil
	}
	return fmt.Errorf("%w: result without %s", protocol.ErrProtocolViolation, missing)
}

// decodeHeader decodes a write result into its header.
func decodeHeader(raw []byte) (Header, error) {
	h, err := method.DecodeJSON[Header](raw)
	if err != nil {
		return h, err
	}
	return h, h.validate()
}

// Document is a stored document with its content. When T is content.JSONString the content
// is the whole document as sent by the server, system attributes included.
type Document[T any] struct {
	Header
	Content T
}

// UnmarshalJSON decodes the system attributes into the header and the whole object into the
// content.
func (d *Document[T]) UnmarshalJSON(data []byte) error {
	var header Header
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	if err := header.validate(); err != nil {
		return err
	}
	var c T
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	d.Header = header
	d.Content = c
	return nil
}

// UpdatedHeader is the result of a replace or update. OldContent and NewContent are only set
// when the request asked for them.
type UpdatedHeader[O, N any] struct {
	Header
	OldRevision Revision `json:"_oldRev"`
	OldContent  *O       `json:"old,omitempty"`
	NewContent  *N       `json:"new,omitempty"`
}

// RemovedHeader is the result of a delete. OldContent is only set when the request asked for it.
type RemovedHeader[O any] struct {
	Header
	OldContent *O `json:"old,omitempty"`
}

type echoes struct {
	Header
	OldRevision Revision        `json:"_oldRev"`
	Old         json.RawMessage `json:"old"`
	New         json.RawMessage `json:"new"`
}

func decodeUpdated[O, N any](raw []byte, returnOld, returnNew bool) (UpdatedHeader[O, N], error) {
	var result UpdatedHeader[O, N]
	var wire echoes
	if err := json.Unmarshal(raw, &wire); err != nil {
		return result, fmt.Errorf("%w: decode update result: %v", protocol.ErrProtocolViolation, err)
	}
	if wire.OldRevision == "" {
		return result, fmt.Errorf("%w: update result without %s", protocol.ErrProtocolViolation, protocol.FieldDocumentOldRevision)
	}
	if err := wire.Header.validate(); err != nil {
		return result, err
	}
	result.Header = wire.Header
	result.OldRevision = wire.OldRevision

	var err error
	if returnOld {
		if result.OldContent, err = decodeEcho[O](wire.Old, protocol.FieldOld); err != nil {
			return result, err
		}
	}
	if returnNew {
		if result.NewContent, err = decodeEcho[N](wire.New, protocol.FieldNew); err != nil {
			return result, err
		}
	}
	return result, nil
}

func decodeRemoved[O any](raw []byte, returnOld bool) (RemovedHeader[O], error) {
	var result RemovedHeader[O]
	var wire echoes
	if err := json.Unmarshal(raw, &wire); err != nil {
		return result, fmt.Errorf("%w: decode remove result: %v", protocol.ErrProtocolViolation, err)
	}
	if err := wire.Header.validate(); err != nil {
		return result, err
	}
	result.Header = wire.Header
	if returnOld {
		old, err := decodeEcho[O](wire.Old, protocol.FieldOld)
		if err != nil {
			return result, err
		}
		result.OldContent = old
	}
	return result, nil
}

// decodeEcho decodes the old or new content echoed by the server. A requested echo that is
// missing is a protocol violation.
func decodeEcho[T any](raw json.RawMessage, field string) (*T, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: requested field %q missing", protocol.ErrProtocolViolation, field)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", protocol.ErrProtocolViolation, field, err)
	}
	return &v, nil
}
