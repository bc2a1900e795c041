// Package collection implements the administration methods for collections: listing,
// creating, dropping, renaming and inspecting them.
package collection

import (
	"fmt"

	"arangodoc/internal/content"
)

// Type is the kind of a collection.
type Type int

const (
	Documents Type = 2
	Edges     Type = 3
)

func (t Type) String() string {
	switch t {
	case Documents:
		return "documents"
	case Edges:
		return "edges"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses the name of a collection type.
func ParseType(s string) (Type, error) {
	switch s {
	case "documents", "document", "":
		return Documents, nil
	case "edges", "edge":
		return Edges, nil
	default:
		return 0, fmt.Errorf("unknown collection type %q", s)
	}
}

// Status is the load state of a collection.
type Status int

const (
	NewBorn   Status = 1
	Unloaded  Status = 2
	Loaded    Status = 3
	Unloading Status = 4
	Deleted   Status = 5
	Loading   Status = 6
)

func (s Status) String() string {
	switch s {
	case NewBorn:
		return "new born"
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Unloading:
		return "unloading"
	case Deleted:
		return "deleted"
	case Loading:
		return "loading"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Collection describes a collection.
type Collection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     Type   `json:"type"`
	Status   Status `json:"status"`
	IsSystem bool   `json:"isSystem"`
}

// KeyOptions controls how document keys are generated.
type KeyOptions struct {
	Type          string `json:"type,omitempty"`
	AllowUserKeys bool   `json:"allowUserKeys"`
	Increment     int64  `json:"increment,omitempty"`
	Offset        int64  `json:"offset,omitempty"`
	LastValue     int64  `json:"lastValue,omitempty"`
}

// Properties are the settings of a collection.
type Properties struct {
	Collection
	WaitForSync bool        `json:"waitForSync"`
	KeyOptions  *KeyOptions `json:"keyOptions,omitempty"`
	JournalSize int64       `json:"journalSize,omitempty"`
	IsVolatile  bool        `json:"isVolatile,omitempty"`
	DoCompact   *bool       `json:"doCompact,omitempty"`
}

// NewCollection is the definition of a collection to create.
type NewCollection struct {
	Name        string      `json:"name"`
	Type        Type        `json:"type,omitempty"`
	WaitForSync bool        `json:"waitForSync,omitempty"`
	IsSystem    bool        `json:"isSystem,omitempty"`
	KeyOptions  *KeyOptions `json:"keyOptions,omitempty"`
}

// PropertiesUpdate holds the properties to change. Only fields that are set are sent.
type PropertiesUpdate struct {
	WaitForSync content.Field[bool]  `json:"waitForSync,omitzero"`
	JournalSize content.Field[int64] `json:"journalSize,omitzero"`
}

// Checksum is the checksum of the content of a collection at a revision.
type Checksum struct {
	Collection
	Checksum string `json:"checksum"`
	Revision string `json:"revision"`
}

// DocumentCount is the number of documents stored in a collection.
type DocumentCount struct {
	Properties
	Count uint64 `json:"count"`
}

// Revision is the revision of a collection, changed by every write to it.
type Revision struct {
	Collection
	Revision string `json:"revision"`
}

// renameTo is the body of a rename.
type renameTo struct {
	Name string `json:"name"`
}

// isSystemName reports whether name follows the naming of system collections.
func isSystemName(name string) bool {
	return len(name) > 0 && name[0] == '_'
}
