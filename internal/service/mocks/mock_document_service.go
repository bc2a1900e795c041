package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"arangodoc/internal/model"
	"arangodoc/internal/repository"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Health(ctx context.Context) (*model.ServerVersion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServerVersion), args.Error(1)
}

func (m *MockDocumentService) ListCollections(ctx context.Context, includeSystem bool) ([]model.Collection, error) {
	args := m.Called(ctx, includeSystem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collection), args.Error(1)
}

func (m *MockDocumentService) Create(ctx context.Context, collection string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockDocumentService) CreateMany(ctx context.Context, collection string, body []byte, opts repository.WriteOptions) ([]model.ItemResult, error) {
	args := m.Called(ctx, collection, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemResult), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, collection, key string, cond repository.ReadConditions) (*model.Document, error) {
	args := m.Called(ctx, collection, key, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Replace(ctx context.Context, collection, key string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, key, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, collection, key string, body []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, key, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockDocumentService) Patch(ctx context.Context, collection, key string, patch []byte, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, key, patch, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, collection, key string, opts repository.WriteOptions) (*model.WriteResult, error) {
	args := m.Called(ctx, collection, key, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}
