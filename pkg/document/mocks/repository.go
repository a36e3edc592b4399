package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"groupstudy/pkg/document"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) List(ctx context.Context, page, size int64) ([]document.Document, error) {
	args := m.Called(ctx, page, size)
	if docs := args.Get(0); docs != nil {
		return docs.([]document.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) GetByID(ctx context.Context, id string) ([]document.Document, error) {
	args := m.Called(ctx, id)
	if docs := args.Get(0); docs != nil {
		return docs.([]document.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) Create(ctx context.Context, doc document.Document) (*document.CreateResult, error) {
	args := m.Called(ctx, doc)
	if result := args.Get(0); result != nil {
		return result.(*document.CreateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) Upsert(ctx context.Context, id string, doc document.Document) (*document.UpsertResult, error) {
	args := m.Called(ctx, id, doc)
	if result := args.Get(0); result != nil {
		return result.(*document.UpsertResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id string) (*document.DeleteResult, error) {
	args := m.Called(ctx, id)
	if result := args.Get(0); result != nil {
		return result.(*document.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
