package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports"
)

// ListService fetches the corpus and derives displayed subsets. The derived
// view is recomputed on every call — filtering and sorting never mutate the
// underlying listing and never cache their own results.
type ListService struct {
	gateway ports.Gateway
	cache   ports.ListCache
}

// NewListService creates a list service. cache may be nil to disable caching.
func NewListService(gateway ports.Gateway, cache ports.ListCache) *ListService {
	return &ListService{gateway: gateway, cache: cache}
}

// ListRequest selects and orders documents.
type ListRequest struct {
	Query   string // case-insensitive substring on filename
	Status  string // exact status match, empty = all
	SortBy  string // "name", "size", "date"; empty keeps insertion order
	Reverse bool
	NoCache bool // bypass the TTL cache
}

// ListResponse is the derived view plus corpus totals.
type ListResponse struct {
	Documents []domain.Document
	Total     int // size of the unfiltered corpus
}

// Execute fetches the listing (through the TTL cache unless bypassed) and
// applies the request's filter and sort.
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	docs, err := s.fetch(ctx, req.NoCache)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	return &ListResponse{
		Documents: FilterSort(docs, req),
		Total:     len(docs),
	}, nil
}

func (s *ListService) fetch(ctx context.Context, bypass bool) ([]domain.Document, error) {
	if s.cache != nil && !bypass {
		if docs, ok := s.cache.Get(); ok {
			return docs, nil
		}
	}
	docs, err := s.gateway.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		// Cache write failures are invisible: the listing was fetched fine.
		_ = s.cache.Put(docs)
	}
	return docs, nil
}

// Invalidate discards the cached listing after a mutation (upload, delete).
func (s *ListService) Invalidate() {
	if s.cache != nil {
		_ = s.cache.Invalidate()
	}
}

// FilterSort derives the displayed sequence without mutating the input.
// Both predicates must pass (query AND status). Sorting is stable: ties keep
// the store's insertion order, and no sort key at all preserves it entirely.
func FilterSort(docs []domain.Document, req ListRequest) []domain.Document {
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if d.MatchesQuery(req.Query) && d.HasStatus(req.Status) {
			out = append(out, d)
		}
	}

	less := comparator(req.SortBy)
	if less == nil {
		if req.Reverse {
			reverse(out)
		}
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if req.Reverse {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func comparator(sortBy string) func(a, b domain.Document) bool {
	switch sortBy {
	case "name":
		return func(a, b domain.Document) bool {
			return strings.ToLower(a.Filename) < strings.ToLower(b.Filename)
		}
	case "size":
		return func(a, b domain.Document) bool {
			return a.SizeBytes < b.SizeBytes
		}
	case "date":
		return func(a, b domain.Document) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		return nil
	}
}

func reverse(docs []domain.Document) {
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
}
