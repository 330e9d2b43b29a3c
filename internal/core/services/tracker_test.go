package services

import (
	"testing"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports"
)

func newTestUpload(filename string) *domain.Upload {
	return domain.NewUpload(filename, "/tmp/"+filename, "application/octet-stream", 100)
}

func TestTrackerAppendPreservesOrder(t *testing.T) {
	tr := NewTracker()
	a, b, c := newTestUpload("a"), newTestUpload("b"), newTestUpload("c")
	tr.Append(a, b)
	tr.Append(c)

	items := tr.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if items[i].Filename != want {
			t.Errorf("items[%d] = %s, want %s", i, items[i].Filename, want)
		}
	}
}

func TestTrackerAppendIgnoresInvalid(t *testing.T) {
	tr := NewTracker()
	tr.Append(nil, &domain.Upload{ID: ""})
	if tr.Len() != 0 {
		t.Errorf("len = %d, want 0", tr.Len())
	}
}

func TestTrackerUpdateNeverChangesCount(t *testing.T) {
	tr := NewTracker()
	u := newTestUpload("a")
	tr.Append(u)

	before := tr.Len()
	tr.Resolve(u.ID, ports.UploadResult{DocumentID: "d1"})
	tr.Complete(u.ID)
	tr.Fail(u.ID, "late failure")
	if tr.Len() != before {
		t.Errorf("updates changed entity count: %d -> %d", before, tr.Len())
	}
}

func TestTrackerUpdateMissingIDIsNoop(t *testing.T) {
	tr := NewTracker()
	u := newTestUpload("a")
	tr.Append(u)
	snapshot := tr.Items()

	tr.Resolve("no-such-id", ports.UploadResult{DocumentID: "x"})
	tr.Fail("no-such-id", "boom")
	tr.Complete("no-such-id")
	tr.Remove("no-such-id")

	after := tr.Items()
	if len(after) != len(snapshot) {
		t.Fatalf("store size changed: %d -> %d", len(snapshot), len(after))
	}
	if after[0] != snapshot[0] {
		t.Errorf("entity mutated by updates to a missing id: %+v -> %+v", snapshot[0], after[0])
	}
}

func TestTrackerProgressMonotonicAndCapped(t *testing.T) {
	tr := NewTracker()
	u := newTestUpload("a")
	tr.Append(u)

	prev := 0
	for i := 0; i < 20; i++ {
		tr.Tick()
		got, _ := tr.Get(u.ID)
		if got.Progress < prev {
			t.Fatalf("progress regressed: %d -> %d", prev, got.Progress)
		}
		if got.Progress > ProgressCap {
			t.Fatalf("progress %d exceeded cap before completion", got.Progress)
		}
		prev = got.Progress
	}
}

func TestTrackerTickAfterTerminalIsNoop(t *testing.T) {
	tr := NewTracker()
	u := newTestUpload("a")
	tr.Append(u)
	tr.Resolve(u.ID, ports.UploadResult{DocumentID: "d1"})
	tr.Complete(u.ID)

	tr.Tick()
	got, _ := tr.Get(u.ID)
	if got.Progress != 100 {
		t.Errorf("progress after terminal tick = %d, want 100", got.Progress)
	}
	if got.Status != domain.StatusCompleted {
		t.Errorf("status = %s, want %s", got.Status, domain.StatusCompleted)
	}
}

// Mirrors the canonical upload walkthrough: five ticks of simulated progress,
// then a duplicate success result.
func TestTrackerUploadScenario(t *testing.T) {
	tr := NewTracker()
	u := domain.NewUpload("Report.PDF", "/tmp/Report.PDF", "application/pdf", 4096)
	tr.Append(u)

	for i := 0; i < 5; i++ {
		tr.Tick()
	}
	got, ok := tr.Get(u.ID)
	if !ok {
		t.Fatal("entity disappeared")
	}
	if got.Progress != 50 {
		t.Errorf("progress after 5 ticks = %d, want 50", got.Progress)
	}
	if got.Status != domain.StatusUploading {
		t.Errorf("status = %s, want %s", got.Status, domain.StatusUploading)
	}

	tr.Resolve(u.ID, ports.UploadResult{DocumentID: "d1", Duplicate: true})
	tr.Complete(u.ID)

	got, _ = tr.Get(u.ID)
	if got.Progress != 100 {
		t.Errorf("final progress = %d, want 100", got.Progress)
	}
	if got.Status != domain.StatusCompleted {
		t.Errorf("final status = %s, want %s", got.Status, domain.StatusCompleted)
	}
	if !got.Duplicate {
		t.Error("duplicate flag lost")
	}
	if got.DocumentID != "d1" {
		t.Errorf("document id = %q, want d1", got.DocumentID)
	}
}

func TestTrackerFailFreezesProgress(t *testing.T) {
	tr := NewTracker()
	u := newTestUpload("a")
	tr.Append(u)
	tr.Tick()
	tr.Tick()

	tr.Fail(u.ID, "server exploded")
	got, _ := tr.Get(u.ID)
	if got.Status != domain.StatusError {
		t.Fatalf("status = %s, want %s", got.Status, domain.StatusError)
	}
	if got.Progress != 20 {
		t.Errorf("progress = %d, want 20 (frozen)", got.Progress)
	}
	if got.Error != "server exploded" {
		t.Errorf("error = %q", got.Error)
	}

	// Terminal states absorb everything afterwards.
	tr.Resolve(u.ID, ports.UploadResult{DocumentID: "d1"})
	tr.Complete(u.ID)
	got, _ = tr.Get(u.ID)
	if got.Status != domain.StatusError {
		t.Errorf("status escaped terminal error: %s", got.Status)
	}
}

func TestTrackerRemove(t *testing.T) {
	tr := NewTracker()
	a, b := newTestUpload("a"), newTestUpload("b")
	tr.Append(a, b)

	tr.Remove(a.ID)
	if tr.Len() != 1 {
		t.Fatalf("len = %d, want 1", tr.Len())
	}
	if _, ok := tr.Get(a.ID); ok {
		t.Error("removed entity still present")
	}

	// Update racing a removal is tolerated silently.
	tr.Fail(a.ID, "late")
	if tr.Len() != 1 {
		t.Error("late update changed store size")
	}
}

func TestTrackerDone(t *testing.T) {
	tr := NewTracker()
	if !tr.Done() {
		t.Error("empty tracker should be done")
	}

	a, b := newTestUpload("a"), newTestUpload("b")
	tr.Append(a, b)
	if tr.Done() || tr.ActiveCount() != 2 {
		t.Error("fresh uploads should be active")
	}

	tr.Fail(a.ID, "x")
	tr.Resolve(b.ID, ports.UploadResult{DocumentID: "d"})
	tr.Complete(b.ID)
	if !tr.Done() {
		t.Error("all terminal, tracker should be done")
	}
}
