package api

import (
	"encoding/json"
	"time"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

// documentRecord mirrors the field spellings the backend has been observed to
// use across versions. Unknown fields are ignored.
type documentRecord struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Name       string `json:"name"`
	MimeType   string `json:"mime_type"`
	Type       string `json:"type"`
	SizeBytes  int64  `json:"size_bytes"`
	Size       int64  `json:"size"`
	Status     string `json:"status"`
	Summary    string `json:"summary"`
	CreatedAt  string `json:"created_at"`
	UploadedAt string `json:"uploaded_at"`
}

// envelope covers the wrapper keys the backend nests listings under. The
// front-end must tolerate all of them; see normalizeDocuments.
type envelope struct {
	Documents json.RawMessage `json:"documents"`
	Data      json.RawMessage `json:"data"`
	Items     json.RawMessage `json:"items"`
	Results   json.RawMessage `json:"results"`
}

// normalizeDocuments maps any accepted listing shape to the canonical
// document slice. Accepted shapes: a raw array; an object with the array
// under "documents", "data", "items" or "results"; and one level of nesting
// ({"data": {"documents": [...]}}). Anything else yields an empty listing
// rather than an error — a malformed envelope is treated like an empty one.
func normalizeDocuments(raw json.RawMessage) []domain.Document {
	records := extractRecords(raw, 0)
	docs := make([]domain.Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, r.canonical())
	}
	return docs
}

const maxEnvelopeDepth = 2

func extractRecords(raw json.RawMessage, depth int) []documentRecord {
	if len(raw) == 0 || depth > maxEnvelopeDepth {
		return nil
	}

	var records []documentRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}
	for _, inner := range []json.RawMessage{env.Documents, env.Data, env.Items, env.Results} {
		if len(inner) == 0 {
			continue
		}
		if found := extractRecords(inner, depth+1); found != nil {
			return found
		}
	}
	return nil
}

func (r documentRecord) canonical() domain.Document {
	doc := domain.Document{
		ID:        firstNonEmpty(r.ID, r.DocumentID),
		Filename:  firstNonEmpty(r.Filename, r.Name),
		MimeType:  firstNonEmpty(r.MimeType, r.Type),
		SizeBytes: r.SizeBytes,
		Status:    domain.DocumentStatus(r.Status),
		Summary:   r.Summary,
	}
	if doc.SizeBytes == 0 {
		doc.SizeBytes = r.Size
	}
	if ts := firstNonEmpty(r.CreatedAt, r.UploadedAt); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			doc.CreatedAt = t
		}
	}
	return doc
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
