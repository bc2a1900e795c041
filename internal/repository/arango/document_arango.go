package arango

import (
	"context"
	"encoding/json"

	"arangodoc/internal/collection"
	"arangodoc/internal/connection"
	"arangodoc/internal/content"
	"arangodoc/internal/database"
	"arangodoc/internal/document"
	"arangodoc/internal/model"
	"arangodoc/internal/repository"
)

// DocumentArango implements repository.DocumentRepository on top of the document client.
// Document bodies stay opaque JSON end to end.
type DocumentArango struct {
	t       connection.Transport
	cluster bool
}

// NewDocumentArango creates a new DocumentArango repository. cluster tells whether the
// database is a cluster deployment, where replication waits can be skipped.
func NewDocumentArango(t connection.Transport, cluster bool) *DocumentArango {
	return &DocumentArango{t: t, cluster: cluster}
}

var _ repository.DocumentRepository = (*DocumentArango)(nil)

type opaque = content.JSONString

// Version returns the version of the database server.
func (r *DocumentArango) Version(ctx context.Context) (*model.ServerVersion, error) {
	v, err := connection.Execute(ctx, r.t, database.NewGetVersion())
	if err != nil {
		return nil, err
	}
	return &model.ServerVersion{Server: v.Server, Version: v.Version, License: v.License}, nil
}

// ListCollections lists the collections of the database.
func (r *DocumentArango) ListCollections(ctx context.Context, includeSystem bool) ([]model.Collection, error) {
	m := collection.NewListCollections()
	if includeSystem {
		m = m.IncludingSystem()
	}
	list, err := connection.Execute(ctx, r.t, m)
	if err != nil {
		return nil, err
	}

	out := make([]model.Collection, 0, len(list))
	for _, c := range list {
		out = append(out, model.Collection{
			ID:       c.ID,
			Name:     c.Name,
			Type:     c.Type.String(),
			Status:   c.Status.String(),
			IsSystem: c.IsSystem,
		})
	}
	return out, nil
}

// Insert stores a new document.
func (r *DocumentArango) Insert(ctx context.Context, coll string, body opaque, opts repository.WriteOptions) (*model.WriteResult, error) {
	m := document.NewInsertDocument(coll, document.NewDocumentFrom(body)).
		WithForceWaitForSync(opts.WaitForSync).
		WithWaitForSyncReplication(r.waitForReplication(opts))

	if opts.ReturnNew {
		doc, err := connection.Execute(ctx, r.t, m.ReturnNew())
		if err != nil {
			return nil, err
		}
		res := headerResult(doc.Header)
		res.New = json.RawMessage(doc.Content)
		return res, nil
	}

	header, err := connection.Execute(ctx, r.t, m)
	if err != nil {
		return nil, err
	}
	return headerResult(header), nil
}

// InsertMany stores several documents in one call.
func (r *DocumentArango) InsertMany(ctx context.Context, coll string, bodies []opaque, opts repository.WriteOptions) ([]model.ItemResult, error) {
	docs := make([]document.NewDocument[opaque], len(bodies))
	for i, body := range bodies {
		docs[i] = document.NewDocumentFrom(body)
	}
	m := document.NewInsertDocuments(coll, docs...).
		WithForceWaitForSync(opts.WaitForSync).
		WithWaitForSyncReplication(r.waitForReplication(opts))

	if opts.ReturnNew {
		outcomes, err := connection.Execute(ctx, r.t, m.ReturnNew())
		if err != nil {
			return nil, err
		}
		return itemResults(outcomes, func(doc document.Document[opaque]) *model.WriteResult {
			res := headerResult(doc.Header)
			res.New = json.RawMessage(doc.Content)
			return res
		}), nil
	}

	outcomes, err := connection.Execute(ctx, r.t, m)
	if err != nil {
		return nil, err
	}
	return itemResults(outcomes, headerResult), nil
}

// Get returns a document by its key.
func (r *DocumentArango) Get(ctx context.Context, coll, key string, cond repository.ReadConditions) (*model.Document, error) {
	m := document.NewGetDocument[opaque](document.NewID(coll, document.Key(key)))
	if cond.IfMatch != "" {
		m = m.WithIfMatch(document.Revision(cond.IfMatch))
	}
	if cond.IfNoneMatch != "" {
		m = m.WithIfNoneMatch(document.Revision(cond.IfNoneMatch))
	}

	doc, err := connection.Execute(ctx, r.t, m)
	if err != nil {
		return nil, err
	}
	return &model.Document{
		ID:       doc.ID.String(),
		Key:      string(doc.Key),
		Revision: string(doc.Revision),
		Body:     json.RawMessage(doc.Content),
	}, nil
}

// Replace replaces the whole content of a document.
func (r *DocumentArango) Replace(ctx context.Context, coll, key string, body opaque, opts repository.WriteOptions) (*model.WriteResult, error) {
	m := document.NewReplaceDocument[opaque, opaque](coll, newUpdate(key, body, opts)).
		WithIgnoreRevisions(!opts.CheckRevision).
		WithReturnOld(opts.ReturnOld).
		WithReturnNew(opts.ReturnNew).
		WithForceWaitForSync(opts.WaitForSync).
		WithWaitForSyncReplication(r.waitForReplication(opts))
	if opts.IfMatch != "" {
		m = m.WithIfMatch(document.Revision(opts.IfMatch))
	}

	updated, err := connection.Execute(ctx, r.t, m)
	if err != nil {
		return nil, err
	}
	return updatedResult(updated), nil
}

// Update merges body into a document.
func (r *DocumentArango) Update(ctx context.Context, coll, key string, body opaque, opts repository.WriteOptions) (*model.WriteResult, error) {
	m := document.NewUpdateDocument[opaque, opaque, opaque](coll, newUpdate(key, body, opts)).
		WithIgnoreRevisions(!opts.CheckRevision).
		WithKeepNull(!opts.DropNull).
		WithMergeObjects(!opts.ReplaceObjects).
		WithReturnOld(opts.ReturnOld).
		WithReturnNew(opts.ReturnNew).
		WithForceWaitForSync(opts.WaitForSync).
		WithWaitForSyncReplication(r.waitForReplication(opts))
	if opts.IfMatch != "" {
		m = m.WithIfMatch(document.Revision(opts.IfMatch))
	}

	updated, err := connection.Execute(ctx, r.t, m)
	if err != nil {
		return nil, err
	}
	return updatedResult(updated), nil
}

// Delete removes a document.
func (r *DocumentArango) Delete(ctx context.Context, coll, key string, opts repository.WriteOptions) (*model.WriteResult, error) {
	m := document.NewDeleteDocument[opaque](document.NewID(coll, document.Key(key))).
		WithReturnOld(opts.ReturnOld).
		WithForceWaitForSync(opts.WaitForSync).
		WithWaitForSyncReplication(r.waitForReplication(opts))
	if opts.IfMatch != "" {
		m = m.WithIfMatch(document.Revision(opts.IfMatch))
	}

	removed, err := connection.Execute(ctx, r.t, m)
	if err != nil {
		return nil, err
	}
	res := headerResult(removed.Header)
	if removed.OldContent != nil {
		res.Old = json.RawMessage(*removed.OldContent)
	}
	return res, nil
}

func (r *DocumentArango) waitForReplication(opts repository.WriteOptions) bool {
	return !(r.cluster && opts.SkipSyncReplication)
}

func newUpdate(key string, body opaque, opts repository.WriteOptions) document.Update[opaque] {
	update := document.NewUpdate(document.Key(key), body)
	if opts.Revision != "" {
		update = update.WithRevision(document.Revision(opts.Revision))
	}
	return update
}

func headerResult(h document.Header) *model.WriteResult {
	return &model.WriteResult{
		ID:       h.ID.String(),
		Key:      string(h.Key),
		Revision: string(h.Revision),
	}
}

func updatedResult(u document.UpdatedHeader[opaque, opaque]) *model.WriteResult {
	res := headerResult(u.Header)
	res.OldRevision = string(u.OldRevision)
	if u.OldContent != nil {
		res.Old = json.RawMessage(*u.OldContent)
	}
	if u.NewContent != nil {
		res.New = json.RawMessage(*u.NewContent)
	}
	return res
}

func itemResults[T any](outcomes []document.Outcome[T], convert func(T) *model.WriteResult) []model.ItemResult {
	items := make([]model.ItemResult, len(outcomes))
	for i, o := range outcomes {
		if o.Err != nil {
			items[i] = model.ItemResult{
				Status: o.Err.Code.HTTPStatus(),
				Error: &model.ItemError{
					Code:    o.Err.Code.String(),
					Number:  int(o.Err.Code),
					Message: o.Err.Message,
				},
			}
			continue
		}
		items[i] = model.ItemResult{Status: 201, Document: convert(o.Value)}
	}
	return items
}
