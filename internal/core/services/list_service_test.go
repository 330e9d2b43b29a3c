package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports/mocks"
)

func doc(filename string, size int64, status domain.DocumentStatus, created time.Time) domain.Document {
	return domain.Document{
		ID:        "id-" + filename,
		Filename:  filename,
		SizeBytes: size,
		Status:    status,
		CreatedAt: created,
	}
}

func testCorpus() []domain.Document {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Document{
		doc("zebra.txt", 300, domain.DocReady, base.Add(2*time.Hour)),
		doc("Apple.pdf", 100, domain.DocProcessing, base),
		doc("mango.docx", 200, domain.DocReady, base.Add(time.Hour)),
	}
}

func names(docs []domain.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Filename
	}
	return out
}

func TestFilterSortIdentity(t *testing.T) {
	// Empty query, empty status, no sort key: the input order survives intact.
	got := FilterSort(testCorpus(), ListRequest{})
	want := []string{"zebra.txt", "Apple.pdf", "mango.docx"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Filename != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i].Filename, want[i])
		}
	}
}

func TestFilterSortQueryCaseInsensitive(t *testing.T) {
	docs := []domain.Document{
		doc("Report.PDF", 100, domain.DocReady, time.Now()),
		doc("Invoice.docx", 200, domain.DocReady, time.Now()),
	}
	for _, query := range []string{"report", "REPORT", "ePoR"} {
		got := FilterSort(docs, ListRequest{Query: query})
		if len(got) != 1 || got[0].Filename != "Report.PDF" {
			t.Errorf("query %q matched %v, want [Report.PDF]", query, names(got))
		}
	}
}

func TestFilterSortStatusAndQueryBothApply(t *testing.T) {
	docs := testCorpus()
	got := FilterSort(docs, ListRequest{Query: ".txt", Status: "processing"})
	if len(got) != 0 {
		t.Errorf("expected no match when predicates disagree, got %v", names(got))
	}

	got = FilterSort(docs, ListRequest{Query: "a", Status: "ready"})
	want := []string{"zebra.txt", "mango.docx"}
	if len(got) != 2 || got[0].Filename != want[0] || got[1].Filename != want[1] {
		t.Errorf("got %v, want %v", names(got), want)
	}
}

func TestFilterSortByName(t *testing.T) {
	got := FilterSort(testCorpus(), ListRequest{SortBy: "name"})
	// Case-insensitive: Apple before mango before zebra.
	want := []string{"Apple.pdf", "mango.docx", "zebra.txt"}
	for i := range want {
		if got[i].Filename != want[i] {
			t.Fatalf("got %v, want %v", names(got), want)
		}
	}
}

func TestFilterSortBySizeReversed(t *testing.T) {
	got := FilterSort(testCorpus(), ListRequest{SortBy: "size", Reverse: true})
	want := []string{"zebra.txt", "mango.docx", "Apple.pdf"}
	for i := range want {
		if got[i].Filename != want[i] {
			t.Fatalf("got %v, want %v", names(got), want)
		}
	}
}

func TestFilterSortByDate(t *testing.T) {
	got := FilterSort(testCorpus(), ListRequest{SortBy: "date"})
	want := []string{"Apple.pdf", "mango.docx", "zebra.txt"}
	for i := range want {
		if got[i].Filename != want[i] {
			t.Fatalf("got %v, want %v", names(got), want)
		}
	}
}

func TestFilterSortStableTies(t *testing.T) {
	base := time.Now()
	docs := []domain.Document{
		doc("b.txt", 100, domain.DocReady, base),
		doc("a.txt", 100, domain.DocReady, base),
		doc("c.txt", 100, domain.DocReady, base),
	}
	got := FilterSort(docs, ListRequest{SortBy: "size"})
	// Equal sizes keep insertion order.
	want := []string{"b.txt", "a.txt", "c.txt"}
	for i := range want {
		if got[i].Filename != want[i] {
			t.Fatalf("ties reordered: got %v, want %v", names(got), want)
		}
	}
}

func TestFilterSortDoesNotMutateInput(t *testing.T) {
	docs := testCorpus()
	FilterSort(docs, ListRequest{SortBy: "name", Reverse: true})
	if docs[0].Filename != "zebra.txt" {
		t.Errorf("input slice mutated: first = %s", docs[0].Filename)
	}
}

// stubCache is an in-memory ListCache for exercising the fetch path.
type stubCache struct {
	docs []domain.Document
	ok   bool

	puts        int
	invalidates int
}

func (c *stubCache) Get() ([]domain.Document, bool) { return c.docs, c.ok }

func (c *stubCache) Put(docs []domain.Document) error {
	c.docs, c.ok = docs, true
	c.puts++
	return nil
}

func (c *stubCache) Invalidate() error {
	c.docs, c.ok = nil, false
	c.invalidates++
	return nil
}

func TestListServiceExecuteCachesListing(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.Documents = testCorpus()
	cache := &stubCache{}
	svc := NewListService(gw, cache)

	resp, err := svc.Execute(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 3 || len(resp.Documents) != 3 {
		t.Fatalf("total = %d, documents = %d", resp.Total, len(resp.Documents))
	}
	if cache.puts != 1 {
		t.Errorf("cache puts = %d, want 1", cache.puts)
	}

	// Second call is served from the cache even if the backend dies.
	gw.ListErr = errors.New("backend down")
	if _, err := svc.Execute(context.Background(), ListRequest{}); err != nil {
		t.Errorf("cached call hit the backend: %v", err)
	}
}

func TestListServiceNoCacheBypasses(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.ListErr = errors.New("backend down")
	cache := &stubCache{docs: testCorpus(), ok: true}
	svc := NewListService(gw, cache)

	if _, err := svc.Execute(context.Background(), ListRequest{NoCache: true}); err == nil {
		t.Error("bypass should have reached the failing backend")
	}
}

func TestListServiceFetchError(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.ListErr = errors.New("boom")
	svc := NewListService(gw, nil)

	if _, err := svc.Execute(context.Background(), ListRequest{}); err == nil {
		t.Error("expected fetch error to propagate")
	}
}

func TestListServiceInvalidate(t *testing.T) {
	cache := &stubCache{docs: testCorpus(), ok: true}
	svc := NewListService(mocks.NewMockGateway(), cache)

	svc.Invalidate()
	if cache.invalidates != 1 {
		t.Errorf("invalidates = %d, want 1", cache.invalidates)
	}
	if _, ok := cache.Get(); ok {
		t.Error("cache still fresh after invalidation")
	}
}

func TestListServiceTotalIgnoresFilter(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.Documents = testCorpus()
	svc := NewListService(gw, nil)

	resp, err := svc.Execute(context.Background(), ListRequest{Query: "zebra"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3 (unfiltered corpus size)", resp.Total)
	}
	if len(resp.Documents) != 1 {
		t.Errorf("filtered documents = %d, want 1", len(resp.Documents))
	}
}
