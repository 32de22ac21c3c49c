package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, client_id, file_name, storage_key, size_bytes, mime_type, created_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, client_id, file_name, storage_key, size_bytes, mime_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.ClientID,
		doc.FileName,
		doc.StorageKey,
		doc.SizeBytes,
		doc.MimeType,
		doc.CreatedAt,
	)
	return err
}

// GetByID returns a document by ID for a caller.
func (r *PGRepo) GetByID(ctx context.Context, clientID, documentID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1 AND client_id = $2`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, documentID, clientID))
}

// GetCurrent returns the latest document for a caller.
func (r *PGRepo) GetCurrent(ctx context.Context, clientID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE client_id = $1
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, clientID))
}

// List returns documents for a caller, newest first.
func (r *PGRepo) List(ctx context.Context, clientID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE client_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.ClientID,
			&doc.FileName,
			&doc.StorageKey,
			&doc.SizeBytes,
			&doc.MimeType,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (Document, error) {
	var doc Document
	err := row.Scan(
		&doc.ID,
		&doc.ClientID,
		&doc.FileName,
		&doc.StorageKey,
		&doc.SizeBytes,
		&doc.MimeType,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}
