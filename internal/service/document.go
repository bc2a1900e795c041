package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"arangodoc/internal/content"
	"arangodoc/internal/model"
	"arangodoc/internal/protocol"
	"arangodoc/internal/repository"
)

var (
	ErrCollectionRequired = errors.New("collection is required")
	ErrKeyRequired        = errors.New("key is required")
	ErrInvalidJSON        = errors.New("body is not valid JSON")
	ErrNotObject          = errors.New("document must be a JSON object")
	ErrEmptyBatch         = errors.New("batch is empty")
	ErrInvalidPatch       = errors.New("invalid JSON patch")
	ErrPatchFailed        = errors.New("JSON patch could not be applied")
)

// DocumentService defines the use cases of the document gateway.
type DocumentService interface {
	// Health pings the database and returns its version.
	Health(ctx context.Context) (*model.ServerVersion, error)

	// ListCollections lists the collections of the database.
	ListCollections(ctx context.Context, includeSystem bool) ([]model.Collection, error)

	// Create stores one document. body must be a JSON object.
	Create(ctx context.Context, collection string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error)

	// CreateMany stores a JSON array of documents and returns one result per element, in order.
	// Element failures do not fail the call.
	CreateMany(ctx context.Context, collection string, body []byte, opts repository.WriteOptions) ([]model.ItemResult, error)

	// Get returns a document by its key.
	Get(ctx context.Context, collection, key string, cond repository.ReadConditions) (*model.Document, error)

	// Replace replaces the content of a document.
	Replace(ctx context.Context, collection, key string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error)

	// Update merges body into a document.
	Update(ctx context.Context, collection, key string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error)

	// Patch applies an RFC 6902 patch to the current document and replaces it, guarded by the
	// revision that was read. A concurrent change fails with a precondition error.
	Patch(ctx context.Context, collection, key string, patch []byte, opts repository.WriteOptions) (*model.WriteResult, error)

	// Delete removes a document.
	Delete(ctx context.Context, collection, key string, opts repository.WriteOptions) (*model.WriteResult, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	repo repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo}
}

func (s *documentService) Health(ctx context.Context) (*model.ServerVersion, error) {
	return s.repo.Version(ctx)
}

func (s *documentService) ListCollections(ctx context.Context, includeSystem bool) ([]model.Collection, error) {
	return s.repo.ListCollections(ctx, includeSystem)
}

func (s *documentService) Create(ctx context.Context, collection string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	if collection == "" {
		return nil, ErrCollectionRequired
	}
	doc, err := objectBody(body)
	if err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, collection, doc, opts)
}

func (s *documentService) CreateMany(ctx context.Context, collection string, body []byte, opts repository.WriteOptions) ([]model.ItemResult, error) {
	if collection == "" {
		return nil, ErrCollectionRequired
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(elems) == 0 {
		return nil, ErrEmptyBatch
	}

	docs := make([]content.JSONString, len(elems))
	for i, elem := range elems {
		if !isObject(elem) {
			return nil, fmt.Errorf("element %d: %w", i, ErrNotObject)
		}
		docs[i] = content.FromBytes(elem)
	}
	return s.repo.InsertMany(ctx, collection, docs, opts)
}

func (s *documentService) Get(ctx context.Context, collection, key string, cond repository.ReadConditions) (*model.Document, error) {
	if err := requireID(collection, key); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, collection, key, cond)
}

func (s *documentService) Replace(ctx context.Context, collection, key string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	if err := requireID(collection, key); err != nil {
		return nil, err
	}
	doc, err := objectBody(body)
	if err != nil {
		return nil, err
	}
	return s.repo.Replace(ctx, collection, key, doc, opts)
}

func (s *documentService) Update(ctx context.Context, collection, key string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	if err := requireID(collection, key); err != nil {
		return nil, err
	}
	doc, err := objectBody(body)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, collection, key, doc, opts)
}

func (s *documentService) Patch(ctx context.Context, collection, key string, patch []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	if err := requireID(collection, key); err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	// The caller's If-Match applies to the read, so a stale revision fails before patching.
	current, err := s.repo.Get(ctx, collection, key, repository.ReadConditions{IfMatch: opts.IfMatch})
	if err != nil {
		return nil, err
	}
	patched, err := ops.Apply(current.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatchFailed, err)
	}
	doc, err := withoutSystemAttributes(patched)
	if err != nil {
		return nil, err
	}

	opts.IfMatch = current.Revision
	opts.Revision = ""
	opts.CheckRevision = false
	return s.repo.Replace(ctx, collection, key, doc, opts)
}

func (s *documentService) Delete(ctx context.Context, collection, key string, opts repository.WriteOptions) (*model.WriteResult, error) {
	if err := requireID(collection, key); err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, collection, key, opts)
}

// IsBatch reports whether body is a JSON array.
func IsBatch(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func requireID(collection, key string) error {
	if collection == "" {
		return ErrCollectionRequired
	}
	if key == "" {
		return ErrKeyRequired
	}
	return nil
}

func objectBody(body []byte) (content.JSONString, error) {
	if !json.Valid(body) {
		return "", ErrInvalidJSON
	}
	if !isObject(body) {
		return "", ErrNotObject
	}
	return content.FromBytes(body), nil
}

func isObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// withoutSystemAttributes drops _id and _rev, which the server rejects or ignores on write.
// _key stays so a patch that changes it is reported as a conflict.
func withoutSystemAttributes(doc []byte) (content.JSONString, error) {
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(doc, &attrs); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	delete(attrs, protocol.FieldDocumentID)
	delete(attrs, protocol.FieldDocumentRevision)
	out, err := json.Marshal(attrs)
	if err != nil {
		return "", err
	}
	return content.FromBytes(out), nil
}
