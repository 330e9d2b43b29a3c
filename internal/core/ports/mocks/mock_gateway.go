package mocks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports"
)

// MockGateway is a mock implementation of the Gateway interface for testing.
// Results and errors can be stubbed per operation; calls are recorded.
type MockGateway struct {
	mu sync.Mutex

	LoginToken  string
	LoginErr    error
	RegisterErr error

	UploadResult *ports.UploadResult
	UploadErr    error
	UploadCalls  []string // filenames, in call order

	Documents []domain.Document
	ListErr   error

	SummaryText  string
	SummarizeErr error

	ChatReply string
	ChatErr   error

	DeleteErr error
	Deleted   []string
}

// NewMockGateway creates a mock gateway with empty stubs.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginErr != nil {
		return "", m.LoginErr
	}
	return m.LoginToken, nil
}

func (m *MockGateway) Register(ctx context.Context, email, password string) error {
	return m.RegisterErr
}

func (m *MockGateway) Upload(ctx context.Context, filename, contentType string, body io.Reader) (*ports.UploadResult, error) {
	m.mu.Lock()
	m.UploadCalls = append(m.UploadCalls, filename)
	m.mu.Unlock()

	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	if m.UploadResult != nil {
		return m.UploadResult, nil
	}
	return &ports.UploadResult{DocumentID: "doc-" + filename}, nil
}

func (m *MockGateway) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Documents, nil
}

func (m *MockGateway) Summarize(ctx context.Context, documentID string) (string, error) {
	if m.SummarizeErr != nil {
		return "", m.SummarizeErr
	}
	if m.SummaryText == "" {
		return fmt.Sprintf("summary of %s", documentID), nil
	}
	return m.SummaryText, nil
}

func (m *MockGateway) Chat(ctx context.Context, message string, history []domain.Message) (string, error) {
	if m.ChatErr != nil {
		return "", m.ChatErr
	}
	return m.ChatReply, nil
}

func (m *MockGateway) DeleteDocument(ctx context.Context, documentID string) error {
	m.mu.Lock()
	m.Deleted = append(m.Deleted, documentID)
	m.mu.Unlock()
	return m.DeleteErr
}
