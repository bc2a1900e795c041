package repository

import (
	"context"

	"arangodoc/internal/content"
	"arangodoc/internal/model"
)

// DocumentRepository defines data access for documents and collections.
// No business logic here, strictly database operations, one call each.
type DocumentRepository interface {
	// Version returns the version of the database server.
	Version(ctx context.Context) (*model.ServerVersion, error)

	// ListCollections lists the collections of the database.
	ListCollections(ctx context.Context, includeSystem bool) ([]model.Collection, error)

	// Insert stores a new document. A _key attribute in body is used as the document key.
	Insert(ctx context.Context, collection string, body content.JSONString, opts WriteOptions) (*model.WriteResult, error)

	// InsertMany stores several documents in one call and returns one result per document.
	InsertMany(ctx context.Context, collection string, bodies []content.JSONString, opts WriteOptions) ([]model.ItemResult, error)

	// Get returns a document by its key.
	Get(ctx context.Context, collection, key string, cond ReadConditions) (*model.Document, error)

	// Replace replaces the whole content of a document.
	Replace(ctx context.Context, collection, key string, body content.JSONString, opts WriteOptions) (*model.WriteResult, error)

	// Update merges body into a document.
	Update(ctx context.Context, collection, key string, body content.JSONString, opts WriteOptions) (*model.WriteResult, error)

	// Delete removes a document.
	Delete(ctx context.Context, collection, key string, opts WriteOptions) (*model.WriteResult, error)
}
