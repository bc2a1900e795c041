package document

import (
	"encoding/json"

	"arangodoc/internal/content"
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// ReplaceDocument replaces the whole content of a document. O is the type of the old content
// and N the type of the new content; they may differ.
type ReplaceDocument[O, N any] struct {
	method.Sealed
	collection    string
	update        Update[N]
	preconditions Preconditions
	revisions     revisionPolicy
	flags         writeFlags
}

// NewReplaceDocument returns a method replacing the document update.Key() in collection.
func NewReplaceDocument[O, N any](collection string, update Update[N]) ReplaceDocument[O, N] {
	return ReplaceDocument[O, N]{collection: collection, update: update}
}

// WithIfMatch returns a copy that only succeeds if the document is at revision rev.
func (m ReplaceDocument[O, N]) WithIfMatch(rev Revision) ReplaceDocument[O, N] {
	m.preconditions.IfMatch = rev
	return m
}

// WithIgnoreRevisions returns a copy that sets whether the revision of the update is ignored.
// When not ignored, the revision is embedded in the body and checked by the server.
func (m ReplaceDocument[O, N]) WithIgnoreRevisions(ignore bool) ReplaceDocument[O, N] {
	m.revisions.checkRevisions = !ignore
	return m
}

// WithReturnOld returns a copy that sets whether the old content is returned.
func (m ReplaceDocument[O, N]) WithReturnOld(returnOld bool) ReplaceDocument[O, N] {
	m.flags.returnOld = returnOld
	return m
}

// WithReturnNew returns a copy that sets whether the new content is returned.
func (m ReplaceDocument[O, N]) WithReturnNew(returnNew bool) ReplaceDocument[O, N] {
	m.flags.returnNew = returnNew
	return m
}

func (m ReplaceDocument[O, N]) WithForceWaitForSync(force bool) ReplaceDocument[O, N] {
	m.flags.forceWaitForSync = force
	return m
}

func (m ReplaceDocument[O, N]) WithWaitForSyncReplication(wait bool) ReplaceDocument[O, N] {
	m.flags.skipSyncReplication = !wait
	return m
}

func (ReplaceDocument[O, N]) Operation() method.Operation { return method.Replace }
func (m ReplaceDocument[O, N]) Header() method.Parameters { return m.preconditions.header() }
func (ReplaceDocument[O, N]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m ReplaceDocument[O, N]) Path() string {
	return documentPath(m.collection, m.update.Key())
}

func (m ReplaceDocument[O, N]) Parameters() method.Parameters {
	params := m.flags.parameters()
	m.revisions.apply(params)
	return params
}

func (m ReplaceDocument[O, N]) Content() any {
	return m.update.body(m.revisions.checkRevisions)
}

func (m ReplaceDocument[O, N]) DecodeResult(_ *protocol.Response, raw json.RawMessage) (UpdatedHeader[O, N], error) {
	return decodeUpdated[O, N](raw, m.flags.returnOld, m.flags.returnNew)
}

// ReplaceDocuments replaces several documents of a collection in one call. Each update must
// carry the key of its document.
type ReplaceDocuments[O, N any] struct {
	method.Sealed
	collection string
	updates    []Update[N]
	revisions  revisionPolicy
	flags      writeFlags
}

// NewReplaceDocuments returns a method replacing the documents named by updates.
func NewReplaceDocuments[O, N any](collection string, updates ...Update[N]) ReplaceDocuments[O, N] {
	return ReplaceDocuments[O, N]{collection: collection, updates: updates}
}

func (m ReplaceDocuments[O, N]) WithIgnoreRevisions(ignore bool) ReplaceDocuments[O, N] {
	m.revisions.checkRevisions = !ignore
	return m
}

func (m ReplaceDocuments[O, N]) WithReturnOld(returnOld bool) ReplaceDocuments[O, N] {
	m.flags.returnOld = returnOld
	return m
}

func (m ReplaceDocuments[O, N]) WithReturnNew(returnNew bool) ReplaceDocuments[O, N] {
	m.flags.returnNew = returnNew
	return m
}

func (m ReplaceDocuments[O, N]) WithForceWaitForSync(force bool) ReplaceDocuments[O, N] {
	m.flags.forceWaitForSync = force
	return m
}

func (m ReplaceDocuments[O, N]) WithWaitForSyncReplication(wait bool) ReplaceDocuments[O, N] {
	m.flags.skipSyncReplication = !wait
	return m
}

func (ReplaceDocuments[O, N]) Operation() method.Operation { return method.Replace }
func (m ReplaceDocuments[O, N]) Path() string { return collectionPath(m.collection) }
func (ReplaceDocuments[O, N]) Header() method.Parameters { return nil }
func (ReplaceDocuments[O, N]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m ReplaceDocuments[O, N]) Parameters() method.Parameters {
	params := m.flags.parameters()
	m.revisions.apply(params)
	return params
}

func (m ReplaceDocuments[O, N]) Content() any {
	return updateBodies(m.updates, m.revisions.checkRevisions)
}

func (m ReplaceDocuments[O, N]) DecodeResult(_ *protocol.Response, raw json.RawMessage) ([]Outcome[UpdatedHeader[O, N]], error) {
	return decodeBatch(raw, len(m.updates), func(elem []byte) (UpdatedHeader[O, N], error) {
		return decodeUpdated[O, N](elem, m.flags.returnOld, m.flags.returnNew)
	})
}

func updateBodies[T any](updates []Update[T], checkRevisions bool) []content.Object {
	bodies := make([]content.Object, len(updates))
	for i, u := range updates {
		bodies[i] = u.body(checkRevisions)
	}
	return bodies
}
