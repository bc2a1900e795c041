package collection

import (
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

func collectionPath(name string) string {
	return protocol.PathAPICollection + "/" + name
}

// ListCollections lists the collections of the database. System collections are excluded
// unless asked for.
type ListCollections struct {
	method.Sealed
	method.JSONResult[[]Collection]
	includeSystem bool
}

// NewListCollections returns a method listing the user collections.
func NewListCollections() ListCollections {
	return ListCollections{}
}

// IncludingSystem returns a copy that also lists system collections.
func (m ListCollections) IncludingSystem() ListCollections {
	m.includeSystem = true
	return m
}

func (ListCollections) Operation() method.Operation { return method.Read }
func (ListCollections) Path() string { return protocol.PathAPICollection }
func (ListCollections) Header() method.Parameters { return nil }
func (ListCollections) Content() any { return nil }

func (m ListCollections) Parameters() method.Parameters {
	params := method.NewParameters(1)
	if !m.includeSystem {
		params.SetBool(protocol.ParamExcludeSystem, true)
	}
	return params
}

func (ListCollections) ReturnType() protocol.ReturnType {
	return protocol.Field(protocol.FieldResult)
}

// CreateCollection creates a collection.
type CreateCollection struct {
	method.Sealed
	method.JSONResult[Properties]
	collection          NewCollection
	skipSyncReplication bool
}

// NewCreateCollection returns a method creating collection.
func NewCreateCollection(collection NewCollection) CreateCollection {
	return CreateCollection{collection: collection}
}

// CreateDocumentCollection returns a method creating a document collection with default
// settings.
func CreateDocumentCollection(name string) CreateCollection {
	return NewCreateCollection(NewCollection{Name: name, Type: Documents})
}

// CreateEdgeCollection returns a method creating an edge collection with default settings.
func CreateEdgeCollection(name string) CreateCollection {
	return NewCreateCollection(NewCollection{Name: name, Type: Edges})
}

// WithWaitForSyncReplication returns a copy that sets whether a cluster waits for the
// collection to be created on all replicas.
func (m CreateCollection) WithWaitForSyncReplication(wait bool) CreateCollection {
	m.skipSyncReplication = !wait
	return m
}

func (m CreateCollection) Collection() NewCollection { return m.collection }
func (CreateCollection) Operation() method.Operation { return method.Create }
func (CreateCollection) Path() string { return protocol.PathAPICollection }
func (CreateCollection) Header() method.Parameters { return nil }
func (m CreateCollection) Content() any { return m.collection }
func (CreateCollection) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m CreateCollection) Parameters() method.Parameters {
	params := method.NewParameters(1)
	if m.skipSyncReplication {
		params.SetBool(protocol.ParamWaitForSyncReplication, false)
	}
	return params
}

// DropCollection drops a collection and returns its identifier. System collections are only
// dropped when the method is marked as dropping a system collection.
type DropCollection struct {
	method.Sealed
	method.JSONResult[string]
	name   string
	system bool
}

// NewDropCollection returns a method dropping the collection name. Names starting with an
// underscore are dropped as system collections.
func NewDropCollection(name string) DropCollection {
	return DropCollection{name: name, system: isSystemName(name)}
}

// WithSystem returns a copy that sets whether the collection is a system collection.
func (m DropCollection) WithSystem(system bool) DropCollection {
	m.system = system
	return m
}

func (m DropCollection) Name() string { return m.name }
func (DropCollection) Operation() method.Operation { return method.Delete }
func (m DropCollection) Path() string { return collectionPath(m.name) }
func (DropCollection) Header() method.Parameters { return nil }
func (DropCollection) Content() any { return nil }

func (m DropCollection) Parameters() method.Parameters {
	params := method.NewParameters(1)
	if m.system {
		params.SetBool(protocol.ParamIsSystem, true)
	}
	return params
}

func (DropCollection) ReturnType() protocol.ReturnType {
	return protocol.Field(protocol.FieldID)
}

// GetCollection fetches the description of a collection.
type GetCollection struct {
	method.Sealed
	method.JSONResult[Collection]
	name string
}

func NewGetCollection(name string) GetCollection {
	return GetCollection{name: name}
}

func (GetCollection) Operation() method.Operation { return method.Read }
func (m GetCollection) Path() string { return collectionPath(m.name) }
func (GetCollection) Parameters() method.Parameters { return nil }
func (GetCollection) Header() method.Parameters { return nil }
func (GetCollection) Content() any { return nil }
func (GetCollection) ReturnType() protocol.ReturnType { return protocol.WholeBody }

// GetCollectionProperties fetches the settings of a collection.
type GetCollectionProperties struct {
	method.Sealed
	method.JSONResult[Properties]
	name string
}

func NewGetCollectionProperties(name string) GetCollectionProperties {
	return GetCollectionProperties{name: name}
}

func (GetCollectionProperties) Operation() method.Operation { return method.Read }
func (m GetCollectionProperties) Path() string { return collectionPath(m.name) + protocol.PathProperties }
func (GetCollectionProperties) Parameters() method.Parameters { return nil }
func (GetCollectionProperties) Header() method.Parameters { return nil }
func (GetCollectionProperties) Content() any { return nil }
func (GetCollectionProperties) ReturnType() protocol.ReturnType { return protocol.WholeBody }

// ChangeCollectionProperties changes the mutable settings of a collection. The name is changed
// with RenameCollection; other settings are fixed at creation.
type ChangeCollectionProperties struct {
	method.Sealed
	method.JSONResult[Properties]
	name    string
	updates PropertiesUpdate
}

func NewChangeCollectionProperties(name string, updates PropertiesUpdate) ChangeCollectionProperties {
	return ChangeCollectionProperties{name: name, updates: updates}
}

func (ChangeCollectionProperties) Operation() method.Operation { return method.Replace }
func (m ChangeCollectionProperties) Path() string { return collectionPath(m.name) + protocol.PathProperties }
func (ChangeCollectionProperties) Parameters() method.Parameters { return nil }
func (ChangeCollectionProperties) Header() method.Parameters { return nil }
func (m ChangeCollectionProperties) Content() any { return m.updates }
func (ChangeCollectionProperties) ReturnType() protocol.ReturnType { return protocol.WholeBody }

// RenameCollection renames a collection. It is not available in a cluster.
type RenameCollection struct {
	method.Sealed
	method.JSONResult[Collection]
	name    string
	newName string
}

// RenameBuilder names the collection to rename.
type RenameBuilder struct {
	name string
}

// Rename starts building a RenameCollection for the collection name.
//
//	collection.Rename("customers").To("clients")
func Rename(name string) RenameBuilder {
	return RenameBuilder{name: name}
}

// To returns the method renaming the collection to newName.
func (b RenameBuilder) To(newName string) RenameCollection {
	return RenameCollection{name: b.name, newName: newName}
}

func (RenameCollection) Operation() method.Operation { return method.Replace }
func (m RenameCollection) Path() string { return collectionPath(m.name) + protocol.PathRename }
func (RenameCollection) Parameters() method.Parameters { return nil }
func (RenameCollection) Header() method.Parameters { return nil }
func (m RenameCollection) Content() any { return renameTo{Name: m.newName} }
func (RenameCollection) ReturnType() protocol.ReturnType { return protocol.WholeBody }

// GetCollectionChecksum calculates a checksum of the documents of a collection. By default the
// checksum covers the document keys only.
type GetCollectionChecksum struct {
	method.Sealed
	method.JSONResult[Checksum]
	name          string
	withRevisions bool
	withData      bool
}

func NewGetCollectionChecksum(name string) GetCollectionChecksum {
	return GetCollectionChecksum{name: name}
}

// WithRevisions returns a copy that sets whether revisions are included in the checksum.
func (m GetCollectionChecksum) WithRevisions(with bool) GetCollectionChecksum {
	m.withRevisions = with
	return m
}

// WithData returns a copy that sets whether document contents are included in the checksum.
func (m GetCollectionChecksum) WithData(with bool) GetCollectionChecksum {
	m.withData = with
	return m
}

func (GetCollectionChecksum) Operation() method.Operation { return method.Read }
func (m GetCollectionChecksum) Path() string { return collectionPath(m.name) + protocol.PathChecksum }
func (GetCollectionChecksum) Header() method.Parameters { return nil }
func (GetCollectionChecksum) Content() any { return nil }
func (GetCollectionChecksum) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m GetCollectionChecksum) Parameters() method.Parameters {
	params := method.NewParameters(2)
	if m.withRevisions {
		params.SetBool(protocol.ParamWithRevisions, true)
	}
	if m.withData {
		params.SetBool(protocol.ParamWithData, true)
	}
	return params
}

// GetCollectionDocumentCount counts the documents of a collection.
type GetCollectionDocumentCount struct {
	method.Sealed
	method.JSONResult[DocumentCount]
	name string
}

func NewGetCollectionDocumentCount(name string) GetCollectionDocumentCount {
	return GetCollectionDocumentCount{name: name}
}

func (GetCollectionDocumentCount) Operation() method.Operation { return method.Read }
func (m GetCollectionDocumentCount) Path() string { return collectionPath(m.name) + protocol.PathDocumentCount }
func (GetCollectionDocumentCount) Parameters() method.Parameters { return nil }
func (GetCollectionDocumentCount) Header() method.Parameters { return nil }
func (GetCollectionDocumentCount) Content() any { return nil }
func (GetCollectionDocumentCount) ReturnType() protocol.ReturnType { return protocol.WholeBody }

// GetCollectionRevision fetches the revision of a collection.
type GetCollectionRevision struct {
	method.Sealed
	method.JSONResult[Revision]
	name string
}

func NewGetCollectionRevision(name string) GetCollectionRevision {
	return GetCollectionRevision{name: name}
}

func (GetCollectionRevision) Operation() method.Operation { return method.Read }
func (m GetCollectionRevision) Path() string { return collectionPath(m.name) + protocol.PathRevision }
func (GetCollectionRevision) Parameters() method.Parameters { return nil }
func (GetCollectionRevision) Header() method.Parameters { return nil }
func (GetCollectionRevision) Content() any { return nil }
func (GetCollectionRevision) ReturnType() protocol.ReturnType { return protocol.WholeBody }
