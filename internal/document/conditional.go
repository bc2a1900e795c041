package document

import (
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// Preconditions are the header level revision checks of a call. Each is optional and rendered
// independently. A failed check yields an APIError with status 412, or 304 for a read whose
// If-None-Match revision is current.
type Preconditions struct {
	// IfMatch makes the call succeed only if the document is at this revision.
	IfMatch Revision
	// IfNoneMatch makes the call succeed only if the document is not at this revision.
	IfNoneMatch Revision
}

func (p Preconditions) header() method.Parameters {
	header := method.NewParameters(2)
	if p.IfMatch != "" {
		header.SetString(protocol.HeaderIfMatch, p.IfMatch.quoted())
	}
	if p.IfNoneMatch != "" {
		header.SetString(protocol.HeaderIfNoneMatch, p.IfNoneMatch.quoted())
	}
	return header
}

// writeFlags are the request flags shared by write operations. The zero value keeps every
// server default, so nothing is emitted for it.
type writeFlags struct {
	returnOld        bool
	returnNew        bool
	forceWaitForSync bool
	// skipSyncReplication disables waiting for replication in a cluster. The server waits by
	// default.
	skipSyncReplication bool
}

func (f writeFlags) parameters() method.Parameters {
	params := method.NewParameters(6)
	if f.forceWaitForSync {
		params.SetBool(protocol.ParamWaitForSync, true)
	}
	if f.skipSyncReplication {
		params.SetBool(protocol.ParamWaitForSyncReplication, false)
	}
	if f.returnOld {
		params.SetBool(protocol.ParamReturnOld, true)
	}
	if f.returnNew {
		params.SetBool(protocol.ParamReturnNew, true)
	}
	return params
}

// revisionPolicy is the body level revision check of replace and update. The zero value
// ignores revisions, which is the server default.
type revisionPolicy struct {
	checkRevisions bool
}

func (r revisionPolicy) apply(params method.Parameters) {
	if r.checkRevisions {
		params.SetBool(protocol.ParamIgnoreRevisions, false)
	}
}

// mergePolicy holds the partial update flags. Both default to true on the server.
type mergePolicy struct {
	dropNull      bool
	replaceObject bool
}

func (m mergePolicy) apply(params method.Parameters) {
	if m.dropNull {
		params.SetBool(protocol.ParamKeepNull, false)
	}
	if m.replaceObject {
		params.SetBool(protocol.ParamMergeObjects, false)
	}
}
