package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

// Cache is a file-backed TTL cache for the document listing. Stale or
// unreadable entries are simply a miss; the cache never serves expired data.
type Cache struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

type cacheFile struct {
	ExpiresAt time.Time         `json:"expires_at"`
	Documents []domain.Document `json:"documents"`
}

// NewCache creates a listing cache at path with the given TTL.
func NewCache(path string, ttl time.Duration) *Cache {
	return &Cache{path: path, ttl: ttl, now: time.Now}
}

// Get returns the cached listing and whether it is still fresh.
func (c *Cache) Get() ([]domain.Document, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}
	var f cacheFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, false
	}
	if c.now().After(f.ExpiresAt) {
		return nil, false
	}
	return f.Documents, true
}

// Put stores a listing with the configured TTL.
func (c *Cache) Put(docs []domain.Document) error {
	if c.ttl <= 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	data, err := json.Marshal(cacheFile{ExpiresAt: c.now().Add(c.ttl), Documents: docs})
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Invalidate discards any cached listing.
func (c *Cache) Invalidate() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}
