package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// GetDocument reads a document with its content.
type GetDocument[T any] struct {
	method.Sealed
	method.JSONResult[Document[T]]
	id            ID
	preconditions Preconditions
}

// NewGetDocument returns a method reading the document id.
func NewGetDocument[T any](id ID) GetDocument[T] {
	return GetDocument[T]{id: id}
}

// WithIfMatch returns a copy that only succeeds if the document is at revision rev.
func (m GetDocument[T]) WithIfMatch(rev Revision) GetDocument[T] {
	m.preconditions.IfMatch = rev
	return m
}

// WithIfNoneMatch returns a copy that only succeeds if the document is not at revision rev.
// The server answers 304 otherwise.
func (m GetDocument[T]) WithIfNoneMatch(rev Revision) GetDocument[T] {
	m.preconditions.IfNoneMatch = rev
	return m
}

func (m GetDocument[T]) ID() ID { return m.id }
func (GetDocument[T]) Operation() method.Operation { return method.Read }
func (GetDocument[T]) Parameters() method.Parameters { return nil }
func (m GetDocument[T]) Header() method.Parameters { return m.preconditions.header() }
func (GetDocument[T]) Content() any { return nil }
func (GetDocument[T]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m GetDocument[T]) Path() string {
	return documentPath(m.id.CollectionName(), m.id.DocumentKey())
}

// GetDocumentHeader checks whether a document exists and learns its current revision without
// transferring its content. The revision is read from the Etag response header.
//
// A missing document answers with status 404 and no error number, since the response has no
// body. Use GetDocument to tell a missing document from a missing collection.
type GetDocumentHeader struct {
	method.Sealed
	id            ID
	preconditions Preconditions
}

// NewGetDocumentHeader returns a method probing the document id.
func NewGetDocumentHeader(id ID) GetDocumentHeader {
	return GetDocumentHeader{id: id}
}

func (m GetDocumentHeader) WithIfMatch(rev Revision) GetDocumentHeader {
	m.preconditions.IfMatch = rev
	return m
}

func (m GetDocumentHeader) WithIfNoneMatch(rev Revision) GetDocumentHeader {
	m.preconditions.IfNoneMatch = rev
	return m
}

func (m GetDocumentHeader) ID() ID { return m.id }
func (GetDocumentHeader) Operation() method.Operation { return method.ReadHeader }
func (GetDocumentHeader) Parameters() method.Parameters { return nil }
func (m GetDocumentHeader) Header() method.Parameters { return m.preconditions.header() }
func (GetDocumentHeader) Content() any { return nil }
func (GetDocumentHeader) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m GetDocumentHeader) Path() string {
	return documentPath(m.id.CollectionName(), m.id.DocumentKey())
}

func (m GetDocumentHeader) DecodeResult(res *protocol.Response, _ json.RawMessage) (Header, error) {
	etag := strings.Trim(res.Header.Get(protocol.HeaderETag), `"`)
	if etag == "" {
		return Header{}, fmt.Errorf("%w: response without %s header", protocol.ErrProtocolViolation, protocol.HeaderETag)
	}
	return Header{ID: m.id, Key: m.id.DocumentKey(), Revision: Revision(etag)}, nil
}
