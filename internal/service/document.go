package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"docstore/internal/model"
	"docstore/internal/repository"
	"docstore/internal/storage"
)

// FileUpload is one inbound file: the caller-declared original name and MIME
// type, plus the raw bytes. Unbounded streaming is out of scope, so bytes
// are held in memory for classification.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Ingest stores every file and persists one document per file,
	// sequentially and fail-fast: the first failure aborts the batch with an
	// *IngestError naming the offending file. Files already written in the
	// same batch are not rolled back.
	Ingest(ctx context.Context, files []FileUpload, ownerID int64) ([]model.Document, error)

	// IngestOne is the single-file form of Ingest.
	IngestOne(ctx context.Context, f FileUpload, ownerID int64) (*model.Document, error)

	// Create persists a metadata-only document with no file attached.
	Create(ctx context.Context, title, content string, ownerID int64) (*model.Document, error)

	// List returns all documents.
	List(ctx context.Context) ([]model.Document, error)

	// Search returns documents whose title or content contains the query.
	Search(ctx context.Context, query string) ([]model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// Delete removes a document record and, when its location resolves
	// inside the storage root, the underlying file. Unknown ids are a no-op.
	Delete(ctx context.Context, id int64) error

	// Download resolves a document to a readable byte stream. The returned
	// document carries the filename to suggest to the requester.
	Download(ctx context.Context, id int64) (io.ReadCloser, *model.Document, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Ingest(ctx context.Context, files []FileUpload, ownerID int64) ([]model.Document, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files provided", ErrInvalidInput)
	}
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	docs := make([]model.Document, 0, len(files))
	for _, f := range files {
		doc, err := s.ingestFile(ctx, f, ownerID)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (s *documentService) IngestOne(ctx context.Context, f FileUpload, ownerID int64) (*model.Document, error) {
	docs, err := s.Ingest(ctx, []FileUpload{f}, ownerID)
	if err != nil {
		return nil, err
	}
	return &docs[0], nil
}

func (s *documentService) ingestFile(ctx context.Context, f FileUpload, ownerID int64) (*model.Document, error) {
	name, err := storage.AssignFileName(f.Name)
	if err != nil {
		return nil, &IngestError{Filename: f.Name, Err: fmt.Errorf("%w: %v", ErrInvalidInput, err)}
	}

	info, err := s.store.Save(ctx, name, bytes.NewReader(f.Data))
	if err != nil {
		return nil, &IngestError{Filename: f.Name, Err: fmt.Errorf("%w: %v", ErrStorageWrite, err)}
	}

	title, content := classify(name, f.ContentType, f.Data, time.Now())

	doc := &model.Document{
		Title:     title,
		Content:   content,
		Filename:  name,
		Filetype:  f.ContentType,
		FileURL:   info.Path,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Roll back this file's own write; earlier files in the batch stay.
		if delErr := s.store.Delete(ctx, name); delErr != nil {
			return nil, &IngestError{Filename: f.Name, Err: fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)}
		}
		return nil, &IngestError{Filename: f.Name, Err: fmt.Errorf("db save failed: %w", err)}
	}
	return stored, nil
}

// Create persists a metadata-only document. All file-related fields stay absent.
func (s *documentService) Create(ctx context.Context, title, content string, ownerID int64) (*model.Document, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	return s.repo.Create(ctx, &model.Document{
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	return s.repo.FindAll(ctx)
}

func (s *documentService) Search(ctx context.Context, query string) ([]model.Document, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	return s.repo.Search(ctx, query)
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes the file (when it lives inside the root), then the record.
// A location outside the root is left untouched; only the record goes.
func (s *documentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil // idempotent: unknown id is a no-op
		}
		return err
	}

	if doc.FileURL != "" {
		if err := s.store.Delete(ctx, doc.FileURL); err != nil && !errors.Is(err, storage.ErrOutsideRoot) {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}

// Download maps a document id to a readable byte stream, validating the
// stored location against the storage root first.
func (s *documentService) Download(ctx context.Context, id int64) (io.ReadCloser, *model.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if doc.FileURL == "" {
		return nil, nil, ErrNotFound
	}

	rc, _, err := s.store.Open(ctx, doc.FileURL)
	if err != nil {
		if errors.Is(err, storage.ErrOutsideRoot) {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	return rc, doc, nil
}
