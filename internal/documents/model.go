package documents

import "time"

// Document is an uploaded resume file owned by a caller identity.
type Document struct {
	ID         string
	ClientID   string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	CreatedAt  time.Time
}
