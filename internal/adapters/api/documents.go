package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

// ListDocuments fetches the corpus listing and normalizes whichever envelope
// shape the backend used into the canonical document slice.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/v1/documents", &raw, "list documents"); err != nil {
		return nil, err
	}
	return normalizeDocuments(raw), nil
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Summarize requests an AI summary for the given document. The call blocks
// until the backend has produced the summary.
func (c *Client) Summarize(ctx context.Context, documentID string) (string, error) {
	var resp summarizeResponse
	path := fmt.Sprintf("/api/v1/documents/%s/summarize", documentID)
	if err := c.postJSON(ctx, path, struct{}{}, &resp, "summarize"); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

// DeleteDocument removes a document from the corpus.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/v1/documents/"+documentID, nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}
	return c.do(req, nil, "delete document")
}
