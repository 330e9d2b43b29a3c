package services

import (
	"sort"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

// CorpusStats aggregates the document listing for the stats command and the
// exported chart.
type CorpusStats struct {
	Count      int
	TotalBytes int64
	ByStatus   map[string]int
	ByType     map[string]int
}

// Aggregate computes corpus statistics from a listing.
func Aggregate(docs []domain.Document) CorpusStats {
	stats := CorpusStats{
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}
	for _, d := range docs {
		stats.Count++
		stats.TotalBytes += d.SizeBytes

		status := string(d.Status)
		if status == "" {
			status = "unknown"
		}
		stats.ByStatus[status]++

		mime := d.MimeType
		if mime == "" {
			mime = "unknown"
		}
		stats.ByType[mime]++
	}
	return stats
}

// SortedKeys returns the map's keys ordered by descending count, ties
// alphabetical, for deterministic rendering.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
