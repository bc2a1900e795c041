// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., arango) inside this directory.
package repository

// ReadConditions are the revision checks of a read.
type ReadConditions struct {
	IfMatch     string
	IfNoneMatch string
}

// WriteOptions are the revision checks and flags of a write. The zero value keeps every
// server default.
type WriteOptions struct {
	// IfMatch is checked against the stored revision through the If-Match header.
	IfMatch string
	// Revision is embedded in the body and checked when CheckRevision is set.
	Revision      string
	CheckRevision bool

	ReturnOld   bool
	ReturnNew   bool
	WaitForSync bool
	// SkipSyncReplication stops a cluster from waiting for replicas.
	SkipSyncReplication bool

	// Partial updates only.
	DropNull       bool
	ReplaceObjects bool
}
