package document

import (
	"encoding/json"

	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// UpdateDocument partially updates a document: attributes of the payload are merged into the
// stored content. U is the payload type, O and N the types of the old and new content.
//
// Payload attributes set to null remove the stored attribute unless KeepNull is left enabled,
// in which case they are stored as null. Use content.Field to tell absent attributes from
// null ones.
type UpdateDocument[U, O, N any] struct {
	method.Sealed
	collection    string
	update        Update[U]
	preconditions Preconditions
	revisions     revisionPolicy
	merge         mergePolicy
	flags         writeFlags
}

// NewUpdateDocument returns a method updating the document update.Key() in collection.
func NewUpdateDocument[U, O, N any](collection string, update Update[U]) UpdateDocument[U, O, N] {
	return UpdateDocument[U, O, N]{collection: collection, update: update}
}

func (m UpdateDocument[U, O, N]) WithIfMatch(rev Revision) UpdateDocument[U, O, N] {
	m.preconditions.IfMatch = rev
	return m
}

func (m UpdateDocument[U, O, N]) WithIgnoreRevisions(ignore bool) UpdateDocument[U, O, N] {
	m.revisions.checkRevisions = !ignore
	return m
}

// WithKeepNull returns a copy that sets whether null attributes are stored or remove the
// stored attribute.
func (m UpdateDocument[U, O, N]) WithKeepNull(keep bool) UpdateDocument[U, O, N] {
	m.merge.dropNull = !keep
	return m
}

// WithMergeObjects returns a copy that sets whether nested objects are merged or replaced.
func (m UpdateDocument[U, O, N]) WithMergeObjects(merge bool) UpdateDocument[U, O, N] {
	m.merge.replaceObject = !merge
	return m
}

func (m UpdateDocument[U, O, N]) WithReturnOld(returnOld bool) UpdateDocument[U, O, N] {
	m.flags.returnOld = returnOld
	return m
}

func (m UpdateDocument[U, O, N]) WithReturnNew(returnNew bool) UpdateDocument[U, O, N] {
	m.flags.returnNew = returnNew
	return m
}

func (m UpdateDocument[U, O, N]) WithForceWaitForSync(force bool) UpdateDocument[U, O, N] {
	m.flags.forceWaitForSync = force
	return m
}

func (m UpdateDocument[U, O, N]) WithWaitForSyncReplication(wait bool) UpdateDocument[U, O, N] {
	m.flags.skipSyncReplication = !wait
	return m
}

func (UpdateDocument[U, O, N]) Operation() method.Operation { return method.Modify }
func (m UpdateDocument[U, O, N]) Header() method.Parameters { return m.preconditions.header() }
func (UpdateDocument[U, O, N]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m UpdateDocument[U, O, N]) Path() string {
	return documentPath(m.collection, m.update.Key())
}

func (m UpdateDocument[U, O, N]) Parameters() method.Parameters {
	params := m.flags.parameters()
	m.revisions.apply(params)
	m.merge.apply(params)
	return params
}

func (m UpdateDocument[U, O, N]) Content() any {
	return m.update.body(m.revisions.checkRevisions)
}

func (m UpdateDocument[U, O, N]) DecodeResult(_ *protocol.Response, raw json.RawMessage) (UpdatedHeader[O, N], error) {
	return decodeUpdated[O, N](raw, m.flags.returnOld, m.flags.returnNew)
}

// UpdateDocuments partially updates several documents of a collection in one call.
type UpdateDocuments[U, O, N any] struct {
	method.Sealed
	collection string
	updates    []Update[U]
	revisions  revisionPolicy
	merge      mergePolicy
	flags      writeFlags
}

// NewUpdateDocuments returns a method updating the documents named by updates.
func NewUpdateDocuments[U, O, N any](collection string, updates ...Update[U]) UpdateDocuments[U, O, N] {
	return UpdateDocuments[U, O, N]{collection: collection, updates: updates}
}

func (m UpdateDocuments[U, O, N]) WithIgnoreRevisions(ignore bool) UpdateDocuments[U, O, N] {
	m.revisions.checkRevisions = !ignore
	return m
}

func (m UpdateDocuments[U, O, N]) WithKeepNull(keep bool) UpdateDocuments[U, O, N] {
	m.merge.dropNull = !keep
	return m
}

func (m UpdateDocuments[U, O, N]) WithMergeObjects(merge bool) UpdateDocuments[U, O, N] {
	m.merge.replaceObject = !merge
	return m
}

func (m UpdateDocuments[U, O, N]) WithReturnOld(returnOld bool) UpdateDocuments[U, O, N] {
	m.flags.returnOld = returnOld
	return m
}

func (m UpdateDocuments[U, O, N]) WithReturnNew(returnNew bool) UpdateDocuments[U, O, N] {
	m.flags.returnNew = returnNew
	return m
}

func (m UpdateDocuments[U, O, N]) WithForceWaitForSync(force bool) UpdateDocuments[U, O, N] {
	m.flags.forceWaitForSync = force
	return m
}

func (m UpdateDocuments[U, O, N]) WithWaitForSyncReplication(wait bool) UpdateDocuments[U, O, N] {
	m.flags.skipSyncReplication = !wait
	return m
}

func (UpdateDocuments[U, O, N]) Operation() method.Operation { return method.Modify }
func (m UpdateDocuments[U, O, N]) Path() string { return collectionPath(m.collection) }
func (UpdateDocuments[U, O, N]) Header() method.Parameters { return nil }
func (UpdateDocuments[U, O, N]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m UpdateDocuments[U, O, N]) Parameters() method.Parameters {
	params := m.flags.parameters()
	m.revisions.apply(params)
	m.merge.apply(params)
	return params
}

func (m UpdateDocuments[U, O, N]) Content() any {
	return updateBodies(m.updates, m.revisions.checkRevisions)
}

func (m UpdateDocuments[U, O, N]) DecodeResult(_ *protocol.Response, raw json.RawMessage) ([]Outcome[UpdatedHeader[O, N]], error) {
	return decodeBatch(raw, len(m.updates), func(elem []byte) (UpdatedHeader[O, N], error) {
		return decodeUpdated[O, N](elem, m.flags.returnOld, m.flags.returnNew)
	})
}
