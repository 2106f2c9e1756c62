package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"constructdocs/internal/catalog"
	"constructdocs/internal/model"
	"constructdocs/internal/rbac"
	"constructdocs/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, role rbac.Role, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, role, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Replace(ctx context.Context, role rbac.Role, documentID string, file service.FileInput) (*model.Document, error) {
	args := m.Called(ctx, role, documentID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, role rbac.Role, documentID string) error {
	args := m.Called(ctx, role, documentID)
	return args.Error(0)
}

func (m *MockDocumentService) Get(ctx context.Context, role rbac.Role, documentID string) (*model.Document, error) {
	args := m.Called(ctx, role, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) DownloadURL(ctx context.Context, role rbac.Role, documentID string) (string, error) {
	args := m.Called(ctx, role, documentID)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) ListByConstruction(ctx context.Context, role rbac.Role, constructionID string) ([]model.Document, error) {
	args := m.Called(ctx, role, constructionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) ListByProject(ctx context.Context, role rbac.Role, projectID string) ([]model.Document, error) {
	args := m.Called(ctx, role, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Versions(ctx context.Context, role rbac.Role, constructionID string) ([]catalog.VersionGroup, error) {
	args := m.Called(ctx, role, constructionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.VersionGroup), args.Error(1)
}
