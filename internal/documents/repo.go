package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, clientID, documentID string) (Document, error)
	GetCurrent(ctx context.Context, clientID string) (Document, error)
	List(ctx context.Context, clientID string, limit, offset int) ([]Document, error)
}
