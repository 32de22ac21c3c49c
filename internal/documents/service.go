package documents

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage and records the document.
func (s *Service) Upload(ctx context.Context, clientID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, clientID, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("store document: %w", err)
	}

	doc := Document{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("record document: %w", err)
	}

	return doc, nil
}

// Get fetches one document owned by the caller.
func (s *Service) Get(ctx context.Context, clientID, documentID string) (Document, error) {
	if documentID == "" {
		return Document{}, fmt.Errorf("%w: document id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, clientID, documentID)
}

// Current returns the caller's most recent document.
func (s *Service) Current(ctx context.Context, clientID string) (Document, error) {
	if clientID == "" {
		return Document{}, fmt.Errorf("%w: client id required", ErrInvalidInput)
	}
	return s.Repo.GetCurrent(ctx, clientID)
}

// List returns the caller's documents, newest first.
func (s *Service) List(ctx context.Context, clientID string, limit, offset int) ([]Document, error) {
	return s.Repo.List(ctx, clientID, limit, offset)
}
