package document

import (
	"encoding/json"

	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// DeleteDocument removes a document. O is the type of the old content returned on request.
type DeleteDocument[O any] struct {
	method.Sealed
	id            ID
	preconditions Preconditions
	flags         writeFlags
}

// NewDeleteDocument returns a method removing the document id.
func NewDeleteDocument[O any](id ID) DeleteDocument[O] {
	return DeleteDocument[O]{id: id}
}

func (m DeleteDocument[O]) WithIfMatch(rev Revision) DeleteDocument[O] {
	m.preconditions.IfMatch = rev
	return m
}

func (m DeleteDocument[O]) WithReturnOld(returnOld bool) DeleteDocument[O] {
	m.flags.returnOld = returnOld
	return m
}

func (m DeleteDocument[O]) WithForceWaitForSync(force bool) DeleteDocument[O] {
	m.flags.forceWaitForSync = force
	return m
}

func (m DeleteDocument[O]) WithWaitForSyncReplication(wait bool) DeleteDocument[O] {
	m.flags.skipSyncReplication = !wait
	return m
}

func (m DeleteDocument[O]) ID() ID { return m.id }
func (DeleteDocument[O]) Operation() method.Operation { return method.Delete }
func (m DeleteDocument[O]) Parameters() method.Parameters { return m.flags.parameters() }
func (m DeleteDocument[O]) Header() method.Parameters { return m.preconditions.header() }
func (DeleteDocument[O]) Content() any { return nil }
func (DeleteDocument[O]) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m DeleteDocument[O]) Path() string {
	return documentPath(m.id.CollectionName(), m.id.DocumentKey())
}

func (m DeleteDocument[O]) DecodeResult(_ *protocol.Response, raw json.RawMessage) (RemovedHeader[O], error) {
	return decodeRemoved[O](raw, m.flags.returnOld)
}
