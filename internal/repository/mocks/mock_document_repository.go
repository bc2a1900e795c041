package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"arangodoc/internal/content"
	"arangodoc/internal/model"
	"arangodoc/internal/repository"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Version(ctx context.Context) (*model.ServerVersion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServerVersion), args.Error(1)
}

func (m *MockDocumentRepository) ListCollections(ctx context.Context, includeSystem bool) ([]model.Collection, error) {
	args := m.Called(ctx, includeSystem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collection), args.Error(1)
}

func (m *MockDocumentRepository) Insert(ctx context.Context, collection string, body content.JSONString, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockDocumentRepository) InsertMany(ctx context.Context, collection string, bodies []content.JSONString, opts repository.WriteOptions) ([]model.ItemResult, error) {
	args := m.Called(ctx, collection, bodies, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemResult), args.Error(1)
}

func (m *MockDocumentRepository) Get(ctx context.Context, collection, key string, cond repository.ReadConditions) (*model.Document, error) {
	args := m.Called(ctx, collection, key, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) Replace(ctx context.Context, collection, key string, body content.JSONString, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, key, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, collection, key string, body content.JSONString, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, key, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, collection, key string, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, key, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}
