package ports

import (
	"context"
	"io"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

// UploadResult is the outcome of a successful upload request.
type UploadResult struct {
	DocumentID string
	Duplicate  bool
}

// Gateway defines the port to the document-analysis backend. One request per
// operation; concurrent calls are independent and unordered.
type Gateway interface {
	// Login authenticates and returns a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new account.
	Register(ctx context.Context, email, password string) error

	// Upload streams one file as multipart/form-data.
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (*UploadResult, error)

	// ListDocuments returns the full corpus in canonical shape.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// Summarize requests an AI summary for a document.
	Summarize(ctx context.Context, documentID string) (string, error)

	// Chat sends one message with prior history and returns the reply.
	Chat(ctx context.Context, message string, history []domain.Message) (string, error)

	// DeleteDocument removes a document from the corpus.
	DeleteDocument(ctx context.Context, documentID string) error
}

// TokenStore persists the session credential between invocations.
type TokenStore interface {
	// Token returns the cached credential, or empty if not signed in.
	Token() string

	// SetToken stores a fresh credential.
	SetToken(token string) error

	// Clear wipes the credential.
	Clear() error
}

// ListCache is a lightweight TTL cache for document listings.
type ListCache interface {
	// Get returns the cached listing and whether it is still fresh.
	Get() ([]domain.Document, bool)

	// Put stores a listing with the configured TTL.
	Put(docs []domain.Document) error

	// Invalidate discards any cached listing.
	Invalidate() error
}
