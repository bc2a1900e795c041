package document

import (
	"encoding/json"

	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

func collectionPath(collection string) string {
	return protocol.PathAPIDocument + "/" + collection
}

func documentPath(collection string, key Key) string {
	return protocol.PathAPIDocument + "/" + collection + "/" + string(key)
}

// InsertDocument inserts one document and returns its header.
type InsertDocument[T any] struct {
	method.Sealed
	collection string
	document   NewDocument[T]
	flags      writeFlags
}

// NewInsertDocument returns a method inserting document into collection.
func NewInsertDocument[T any](collection string, document NewDocument[T]) InsertDocument[T] {
	return InsertDocument[T]{collection: collection, document: document}
}

// WithForceWaitForSync returns a copy that waits for the write to be synced to disk even if
// the collection does not.
func (m InsertDocument[T]) WithForceWaitForSync(force bool) InsertDocument[T] {
	m.flags.forceWaitForSync = force
	return m
}

// WithWaitForSyncReplication returns a copy that sets whether a cluster waits for replication.
func (m InsertDocument[T]) WithWaitForSyncReplication(wait bool) InsertDocument[T] {
	m.flags.skipSyncReplication = !wait
	return m
}

// ReturnNew returns a method that also returns the stored document.
func (m InsertDocument[T]) ReturnNew() InsertDocumentReturnNew[T] {
	return InsertDocumentReturnNew[T]{collection: m.collection, document: m.document, flags: m.flags}
}

func (m InsertDocument[T]) Collection() string { return m.collection }
func (m InsertDocument[T]) Document() NewDocument[T] { return m.document }
func (InsertDocument[T]) Operation() method.Operation { return method.Create }
func (m InsertDocument[T]) Path() string { return collectionPath(m.collection) }
func (m InsertDocument[T]) Parameters() method.Parameters { return m.flags.parameters() }
func (InsertDocument[T]) Header() method.Parameters { return nil }
func (m InsertDocument[T]) Content() any { return m.document }
func (InsertDocument[T]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (InsertDocument[T]) DecodeResult(_ *protocol.Response, raw json.RawMessage) (Header, error) {
	return decodeHeader(raw)
}

// InsertDocumentReturnNew inserts one document and returns it as stored, system attributes
// included.
type InsertDocumentReturnNew[T any] struct {
	method.Sealed
	method.JSONResult[Document[T]]
	collection string
	document   NewDocument[T]
	flags      writeFlags
}

// NewInsertDocumentReturnNew returns a method inserting document into collection.
func NewInsertDocumentReturnNew[T any](collection string, document NewDocument[T]) InsertDocumentReturnNew[T] {
	return InsertDocumentReturnNew[T]{collection: collection, document: document}
}

func (m InsertDocumentReturnNew[T]) WithForceWaitForSync(force bool) InsertDocumentReturnNew[T] {
	m.flags.forceWaitForSync = force
	return m
}

func (m InsertDocumentReturnNew[T]) WithWaitForSyncReplication(wait bool) InsertDocumentReturnNew[T] {
	m.flags.skipSyncReplication = !wait
	return m
}

func (InsertDocumentReturnNew[T]) Operation() method.Operation { return method.Create }
func (m InsertDocumentReturnNew[T]) Path() string { return collectionPath(m.collection) }
func (InsertDocumentReturnNew[T]) Header() method.Parameters { return nil }
func (m InsertDocumentReturnNew[T]) Content() any { return m.document }

func (m InsertDocumentReturnNew[T]) Parameters() method.Parameters {
	flags := m.flags
	flags.returnNew = true
	return flags.parameters()
}

func (InsertDocumentReturnNew[T]) ReturnType() protocol.ReturnType {
	return protocol.Field(protocol.FieldNew)
}

// InsertDocuments inserts several documents in one call. The result holds one outcome per
// document, in input order.
type InsertDocuments[T any] struct {
	method.Sealed
	collection string
	documents  []NewDocument[T]
	flags      writeFlags
}

// NewInsertDocuments returns a method inserting documents into collection.
func NewInsertDocuments[T any](collection string, documents ...NewDocument[T]) InsertDocuments[T] {
	return InsertDocuments[T]{collection: collection, documents: documents}
}

func (m InsertDocuments[T]) WithForceWaitForSync(force bool) InsertDocuments[T] {
	m.flags.forceWaitForSync = force
	return m
}

func (m InsertDocuments[T]) WithWaitForSyncReplication(wait bool) InsertDocuments[T] {
	m.flags.skipSyncReplication = !wait
	return m
}

// ReturnNew returns a method that also returns the stored documents.
func (m InsertDocuments[T]) ReturnNew() InsertDocumentsReturnNew[T] {
	return InsertDocumentsReturnNew[T]{collection: m.collection, documents: m.documents, flags: m.flags}
}

func (m InsertDocuments[T]) Len() int { return len(m.documents) }
func (InsertDocuments[T]) Operation() method.Operation { return method.Create }
func (m InsertDocuments[T]) Path() string { return collectionPath(m.collection) }
func (m InsertDocuments[T]) Parameters() method.Parameters { return m.flags.parameters() }
func (InsertDocuments[T]) Header() method.Parameters { return nil }
func (m InsertDocuments[T]) Content() any { return batchBody(m.documents) }
func (InsertDocuments[T]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m InsertDocuments[T]) DecodeResult(_ *protocol.Response, raw json.RawMessage) ([]Outcome[Header], error) {
	return decodeBatch(raw, len(m.documents), decodeHeader)
}

// InsertDocumentsReturnNew inserts several documents in one call and returns the stored
// documents.
type InsertDocumentsReturnNew[T any] struct {
	method.Sealed
	collection string
	documents  []NewDocument[T]
	flags      writeFlags
}

// NewInsertDocumentsReturnNew returns a method inserting documents into collection.
func NewInsertDocumentsReturnNew[T any](collection string, documents ...NewDocument[T]) InsertDocumentsReturnNew[T] {
	return InsertDocumentsReturnNew[T]{collection: collection, documents: documents}
}

func (m InsertDocumentsReturnNew[T]) WithForceWaitForSync(force bool) InsertDocumentsReturnNew[T] {
	m.flags.forceWaitForSync = force
	return m
}

func (m InsertDocumentsReturnNew[T]) WithWaitForSyncReplication(wait bool) InsertDocumentsReturnNew[T] {
	m.flags.skipSyncReplication = !wait
	return m
}

func (InsertDocumentsReturnNew[T]) Operation() method.Operation { return method.Create }
func (m InsertDocumentsReturnNew[T]) Path() string { return collectionPath(m.collection) }
func (InsertDocumentsReturnNew[T]) Header() method.Parameters { return nil }
func (m InsertDocumentsReturnNew[T]) Content() any { return batchBody(m.documents) }
func (InsertDocumentsReturnNew[T]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m InsertDocumentsReturnNew[T]) Parameters() method.Parameters {
	flags := m.flags
	flags.returnNew = true
	return flags.parameters()
}

func (m InsertDocumentsReturnNew[T]) DecodeResult(_ *protocol.Response, raw json.RawMessage) ([]Outcome[Document[T]], error) {
	return decodeBatch(raw, len(m.documents), decodeNewDocument[T])
}

// batchBody makes sure an empty batch is sent as [] rather than null.
func batchBody[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
