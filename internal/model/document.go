package model

import "encoding/json"

// Document is a stored document. Body is the whole document as returned by the database,
// system attributes included.
type Document struct {
	ID       string
	Key      string
	Revision string
	Body     json.RawMessage
}

// WriteResult is the outcome of a successful write.
type WriteResult struct {
	ID          string          `json:"_id"`
	Key         string          `json:"_key"`
	Revision    string          `json:"_rev"`
	OldRevision string          `json:"_oldRev,omitempty"`
	Old         json.RawMessage `json:"old,omitempty"`
	New         json.RawMessage `json:"new,omitempty"`
}

// ItemError is the failure of one item of a batch.
type ItemError struct {
	Code    string `json:"code"`
	Number  int    `json:"number"`
	Message string `json:"message"`
}

// ItemResult is the outcome of one item of a batch, in input order.
type ItemResult struct {
	Status   int          `json:"status"`
	Document *WriteResult `json:"document,omitempty"`
	Error    *ItemError   `json:"error,omitempty"`
}
