package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports"
)

type uploadResponse struct {
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
}

// Upload sends one file as multipart/form-data with the exact field names the
// backend expects: file, filename, content_type. A 2xx response carries the
// server-assigned document id; status "duplicate" means the corpus already
// held identical content and no new document was created.
func (c *Client) Upload(ctx context.Context, filename, contentType string, body io.Reader) (*ports.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create upload form: %w", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, fmt.Errorf("read upload payload: %w", err)
	}
	if err := mw.WriteField("filename", filename); err != nil {
		return nil, fmt.Errorf("create upload form: %w", err)
	}
	if err := mw.WriteField("content_type", contentType); err != nil {
		return nil, fmt.Errorf("create upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/documents/upload", bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp uploadResponse
	if err := c.do(req, &resp, "upload"); err != nil {
		return nil, err
	}
	return &ports.UploadResult{
		DocumentID: resp.DocumentID,
		Duplicate:  resp.Status == "duplicate",
	}, nil
}
