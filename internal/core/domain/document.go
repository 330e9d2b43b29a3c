package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocumentStatus is the server-side processing state of a document.
type DocumentStatus string

const (
	DocUploaded   DocumentStatus = "uploaded"
	DocProcessing DocumentStatus = "processing"
	DocReady      DocumentStatus = "ready"
	DocFailed     DocumentStatus = "failed"
)

// Document is the canonical shape of a document record. The backend returns
// listings in several envelope variants; the API adapter normalizes every
// accepted variant to this type, and nothing past the adapter ever sees
// anything else.
type Document struct {
	ID        string         `json:"id"`
	Filename  string         `json:"filename"`
	MimeType  string         `json:"mime_type"`
	SizeBytes int64          `json:"size_bytes"`
	Status    DocumentStatus `json:"status"`
	Summary   string         `json:"summary,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// HasStatus matches the status filter; an empty filter matches everything.
func (d Document) HasStatus(status string) bool {
	return status == "" || strings.EqualFold(string(d.Status), status)
}

// MatchesQuery performs a case-insensitive substring match on the filename.
func (d Document) MatchesQuery(query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Filename), strings.ToLower(query))
}

// FormatSize renders a byte count for table display.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
