package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordJSON = `{"id":"d1","filename":"Report.PDF","mime_type":"application/pdf","size_bytes":2048,"status":"ready","created_at":"2026-08-01T10:00:00Z"}`

func TestNormalizeDocumentsShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"raw array", `[` + recordJSON + `]`},
		{"documents key", `{"documents":[` + recordJSON + `]}`},
		{"data key", `{"data":[` + recordJSON + `]}`},
		{"items key", `{"items":[` + recordJSON + `]}`},
		{"results key", `{"results":[` + recordJSON + `]}`},
		{"nested data.documents", `{"data":{"documents":[` + recordJSON + `]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := normalizeDocuments(json.RawMessage(tt.body))
			require.Len(t, docs, 1)
			assert.Equal(t, "d1", docs[0].ID)
			assert.Equal(t, "Report.PDF", docs[0].Filename)
			assert.Equal(t, int64(2048), docs[0].SizeBytes)
			assert.Equal(t, "ready", string(docs[0].Status))
			assert.Equal(t, 2026, docs[0].CreatedAt.Year())
		})
	}
}

func TestNormalizeDocumentsAltFieldNames(t *testing.T) {
	body := `{"documents":[{"document_id":"d2","name":"notes.txt","type":"text/plain","size":7,"uploaded_at":"2026-07-01T00:00:00Z"}]}`
	docs := normalizeDocuments(json.RawMessage(body))
	require.Len(t, docs, 1)
	assert.Equal(t, "d2", docs[0].ID)
	assert.Equal(t, "notes.txt", docs[0].Filename)
	assert.Equal(t, "text/plain", docs[0].MimeType)
	assert.Equal(t, int64(7), docs[0].SizeBytes)
	assert.False(t, docs[0].CreatedAt.IsZero())
}

func TestNormalizeDocumentsDegenerate(t *testing.T) {
	for _, body := range []string{``, `{}`, `null`, `42`, `{"unexpected":true}`} {
		docs := normalizeDocuments(json.RawMessage(body))
		assert.Empty(t, docs, "body %q", body)
	}
}

func TestNormalizeDocumentsPreservesOrder(t *testing.T) {
	body := `{"documents":[{"id":"a","filename":"a"},{"id":"b","filename":"b"},{"id":"c","filename":"c"}]}`
	docs := normalizeDocuments(json.RawMessage(body))
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)
}
