// Package document implements the document operations of the database: the identity and
// revision model, the typed document shapes, the conditional execution policy, the single
// and batch request descriptors and the aggregation of batch responses.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedIdentifier is returned when a document identifier is not of the form
// collection/key.
var ErrMalformedIdentifier = errors.New("malformed document identifier")

// Key identifies a document within its collection.
type Key string

func (k Key) String() string {
	return string(k)
}

// Revision is an opaque tag assigned by the server on every write. Revisions are compared for
// equality only: they carry no order.
type Revision string

func (r Revision) String() string {
	return string(r)
}

// quoted renders the revision for the If-Match and If-None-Match headers.
func (r Revision) quoted() string {
	return `"` + string(r) + `"`
}

// ID is the globally unique identifier of a document: the collection name and the document key.
type ID struct {
	collection string
	key        string
}

// NewID returns the identifier of the document key in collection.
func NewID(collection string, key Key) ID {
	return ID{collection: collection, key: string(key)}
}

// ParseID parses an identifier of the form collection/key.
func ParseID(s string) (ID, error) {
	collection, key, ok := strings.Cut(s, "/")
	if !ok || collection == "" || key == "" || strings.Contains(key, "/") {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	return ID{collection: collection, key: key}, nil
}

// CollectionName returns the name of the collection the document belongs to.
func (id ID) CollectionName() string {
	return id.collection
}

// DocumentKey returns the key of the document.
func (id ID) DocumentKey() Key {
	return Key(id.key)
}

// IsZero reports whether id is the zero identifier.
func (id ID) IsZero() bool {
	return id.collection == "" && id.key == ""
}

func (id ID) String() string {
	return id.collection + "/" + id.key
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
