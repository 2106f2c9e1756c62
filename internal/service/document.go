package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"constructdocs/internal/catalog"
	"constructdocs/internal/model"
	"constructdocs/internal/rbac"
	"constructdocs/internal/repository"
	"constructdocs/internal/storage"
)

var (
	ErrPermissionDenied    = errors.New("permission denied")
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidCategory     = errors.New("invalid document category")
	ErrMissingReference    = errors.New("construction and project references are required")
	ErrInvalidVersion      = errors.New("version must be a positive integer")
	ErrNotFound            = errors.New("document not found")
	ErrIDRequired          = errors.New("id is required")
)

// MaxFileSize is the exclusive upper bound on upload size: 100 MiB.
const MaxFileSize int64 = 104857600

// DownloadURLExpiry bounds how long a presigned download link stays valid.
const DownloadURLExpiry = 15 * time.Minute

// allowedContentTypes is the authoritative MIME allow-list for construction
// documents: office formats, AutoCAD drawings, and common image types.
var allowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"image/dwg":            {},
	"application/dwg":      {},
	"application/autocad":  {},
	"image/jpeg":           {},
	"image/png":            {},
	"image/gif":            {},
	"image/bmp":            {},
	"image/webp":           {},
	"image/svg+xml":        {},
}

// FileInput carries one uploaded file: streaming content plus the declared
// size and content type from the multipart part.
type FileInput struct {
	Reader       io.Reader
	OriginalName string
	ContentType  string
	Size         int64
}

// UploadInput is the full input for a document upload. Version 0 means
// "assign the next version for the construction"; an explicit value fills an
// earlier, sparsely populated version bucket.
type UploadInput struct {
	File           FileInput
	Category       model.Category
	ConstructionID string
	ProjectID      string
	Version        int
}

// DocumentService defines the document lifecycle and query use cases. Every
// method takes the caller's role explicitly; there is no ambient session
// state. The role check here is a fast local gate, not the security boundary
// — the backend store enforces its own policy independently.
type DocumentService interface {
	// Upload validates the file, assigns a version, stores the bytes, and
	// records metadata. Without an explicit version the upload always starts
	// a new version rather than joining the latest one.
	Upload(ctx context.Context, role rbac.Role, in UploadInput) (*model.Document, error)

	// Replace supersedes an existing document with a new one at exactly the
	// next version, copying category and references. The original record is
	// retained unchanged and stays downloadable.
	Replace(ctx context.Context, role rbac.Role, documentID string, file FileInput) (*model.Document, error)

	// Delete permanently removes a single document. Sibling documents keep
	// their version numbers; gaps in the sequence are a normal state.
	Delete(ctx context.Context, role rbac.Role, documentID string) error

	// Get returns a single document's metadata.
	Get(ctx context.Context, role rbac.Role, documentID string) (*model.Document, error)

	// DownloadURL returns a time-limited presigned URL for the document's
	// content.
	DownloadURL(ctx context.Context, role rbac.Role, documentID string) (string, error)

	// ListByConstruction returns the flat document set for one construction.
	ListByConstruction(ctx context.Context, role rbac.Role, constructionID string) ([]model.Document, error)

	// ListByProject returns every document referencing one project.
	ListByProject(ctx context.Context, role rbac.Role, projectID string) ([]model.Document, error)

	// Versions returns the construction's documents grouped by version and
	// category, newest version first.
	Versions(ctx context.Context, role rbac.Role, constructionID string) ([]catalog.VersionGroup, error)
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository

	// versionLocks serializes version allocation per construction so two
	// concurrent uploads cannot both read the same "latest version". This
	// only covers a single process; multi-instance deployments need the
	// same serialization at the database.
	mu           sync.Mutex
	versionLocks map[string]*sync.Mutex
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{
		store:        store,
		repo:         repo,
		versionLocks: make(map[string]*sync.Mutex),
	}
}

func (s *documentService) lockConstruction(id string) func() {
	s.mu.Lock()
	l, ok := s.versionLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.versionLocks[id] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// validateFile applies the local, synchronous checks that run before any
// storage call: declared size first, then the MIME allow-list.
func validateFile(f FileInput) error {
	if f.Reader == nil || f.Size <= 0 {
		return ErrEmptyFile
	}
	if f.Size >= MaxFileSize {
		return ErrFileTooLarge
	}
	if _, ok := allowedContentTypes[f.ContentType]; !ok {
		return ErrUnsupportedFileType
	}
	return nil
}

func (s *documentService) Upload(ctx context.Context, role rbac.Role, in UploadInput) (*model.Document, error) {
	if !rbac.Can(role, rbac.CapUploadDocument) {
		return nil, ErrPermissionDenied
	}
	if err := validateFile(in.File); err != nil {
		return nil, err
	}
	if !in.Category.IsConstructionCategory() {
		return nil, ErrInvalidCategory
	}
	if in.ConstructionID == "" || in.ProjectID == "" {
		return nil, ErrMissingReference
	}
	if in.Version < 0 {
		return nil, ErrInvalidVersion
	}

	unlock := s.lockConstruction(in.ConstructionID)
	defer unlock()

	version := in.Version
	if version == 0 {
		docs, err := s.repo.ListByConstruction(ctx, in.ConstructionID)
		if err != nil {
			return nil, fmt.Errorf("resolve next version: %w", err)
		}
		version = catalog.NextVersion(docs)
	}

	return s.storeDocument(ctx, in.File, in.Category, in.ConstructionID, in.ProjectID, version)
}

func (s *documentService) Replace(ctx context.Context, role rbac.Role, documentID string, file FileInput) (*model.Document, error) {
	if !rbac.Can(role, rbac.CapReplaceDocument) {
		return nil, ErrPermissionDenied
	}
	if documentID == "" {
		return nil, ErrIDRequired
	}
	old, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := validateFile(file); err != nil {
		return nil, err
	}

	// The replaced document keeps its row and its bytes; only a new record
	// at version+1 is added.
	return s.storeDocument(ctx, file, old.Category, old.ConstructionID, old.ProjectID, old.EffectiveVersion()+1)
}

// storeDocument writes the bytes to object storage, then the metadata row.
// If the row insert fails the uploaded object is removed again so no
// partially linked document is left behind.
func (s *documentService) storeDocument(ctx context.Context, file FileInput, category model.Category, constructionID, projectID string, version int) (*model.Document, error) {
	ext := filepath.Ext(file.OriginalName)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("documents", constructionID, genName))

	objInfo, err := s.store.Put(ctx, key, file.Reader, storage.PutObjectOptions{
		Size:        file.Size,
		ContentType: file.ContentType,
		Metadata: map[string]string{
			"original-filename": file.OriginalName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	now := time.Now().UTC()
	doc := &model.Document{
		ID:             uuid.New().String(),
		OriginalName:   file.OriginalName,
		FileName:       genName,
		StoragePath:    objInfo.Key,
		Size:           objInfo.Size,
		ContentType:    objInfo.ContentType,
		Category:       category,
		Version:        version,
		ConstructionID: constructionID,
		ProjectID:      projectID,
		UploadedAt:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) Delete(ctx context.Context, role rbac.Role, documentID string) error {
	if !rbac.Can(role, rbac.CapDeleteDocument) {
		return ErrPermissionDenied
	}
	if documentID == "" {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Bytes first; a failed storage delete keeps the row so the object is
	// not orphaned without a reference.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, documentID)
}

func (s *documentService) Get(ctx context.Context, role rbac.Role, documentID string) (*model.Document, error) {
	if !rbac.Can(role, rbac.CapViewDocumentMetadata) {
		return nil, ErrPermissionDenied
	}
	if documentID == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) DownloadURL(ctx context.Context, role rbac.Role, documentID string) (string, error) {
	if !rbac.Can(role, rbac.CapDownloadDocument) {
		return "", ErrPermissionDenied
	}
	if documentID == "" {
		return "", ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	url, err := s.store.PresignGet(ctx, doc.StoragePath, DownloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

func (s *documentService) ListByConstruction(ctx context.Context, role rbac.Role, constructionID string) ([]model.Document, error) {
	if !rbac.Can(role, rbac.CapViewDocumentMetadata) {
		return nil, ErrPermissionDenied
	}
	if constructionID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByConstruction(ctx, constructionID)
}

func (s *documentService) ListByProject(ctx context.Context, role rbac.Role, projectID string) ([]model.Document, error) {
	if !rbac.Can(role, rbac.CapViewDocumentMetadata) {
		return nil, ErrPermissionDenied
	}
	if projectID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByProject(ctx, projectID)
}

func (s *documentService) Versions(ctx context.Context, role rbac.Role, constructionID string) ([]catalog.VersionGroup, error) {
	docs, err := s.ListByConstruction(ctx, role, constructionID)
	if err != nil {
		return nil, err
	}
	return catalog.GroupByVersion(docs), nil
}
