package services

import (
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports"
)

// Progress simulation constants. The transfer has no real progress
// introspection, so the bar is a UX illusion: it climbs by a fixed step per
// tick and parks below the cap until the real result lands.
const (
	ProgressStep = 10
	ProgressCap  = 90
)

// Tracker is the in-memory store of upload entities, in insertion order.
// It owns every status and progress mutation and enforces the status machine:
// no regression, terminal states absorb all further updates, progress is
// monotonically non-decreasing.
//
// The tracker is not safe for concurrent use. It is owned by the TUI event
// loop; upload results arrive as messages on that loop, never from other
// goroutines. Updates racing a removal land as silent no-ops.
type Tracker struct {
	order []string
	items map[string]*domain.Upload
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{items: make(map[string]*domain.Upload)}
}

// Append inserts entities at the end, preserving prior order. Entities
// without an id are dropped; nothing else is validated.
func (t *Tracker) Append(uploads ...*domain.Upload) {
	for _, u := range uploads {
		if u == nil || u.ID == "" {
			continue
		}
		if _, exists := t.items[u.ID]; exists {
			continue
		}
		t.order = append(t.order, u.ID)
		t.items[u.ID] = u
	}
}

// Len returns the number of tracked entities.
func (t *Tracker) Len() int { return len(t.order) }

// Items returns copies of all entities in insertion order.
func (t *Tracker) Items() []domain.Upload {
	out := make([]domain.Upload, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.items[id])
	}
	return out
}

// Get returns a copy of the entity with the given id.
func (t *Tracker) Get(id string) (domain.Upload, bool) {
	u, ok := t.items[id]
	if !ok {
		return domain.Upload{}, false
	}
	return *u, true
}

// Remove deletes the entity; a missing id is a no-op.
func (t *Tracker) Remove(id string) {
	if _, ok := t.items[id]; !ok {
		return
	}
	delete(t.items, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Tick advances the simulated progress of every in-flight entity by one step,
// capped below completion. Ticks on terminal entities are no-ops.
func (t *Tracker) Tick() {
	for _, id := range t.order {
		u := t.items[id]
		if u.Status.IsTerminal() {
			continue
		}
		if p := u.Progress + ProgressStep; p <= ProgressCap {
			u.Progress = p
		} else if u.Progress < ProgressCap {
			u.Progress = ProgressCap
		}
	}
}

// Resolve records a successful upload result: the entity moves to processing
// and takes the server-assigned id. The visual completion (progress 100,
// completed status) happens in Complete after the cosmetic processing delay.
// A missing or already-terminal entity is a no-op.
func (t *Tracker) Resolve(id string, result ports.UploadResult) {
	u, ok := t.items[id]
	if !ok || !u.Status.CanTransition(domain.StatusProcessing) {
		return
	}
	u.Status = domain.StatusProcessing
	u.DocumentID = result.DocumentID
	u.Duplicate = result.Duplicate
	if u.Progress < ProgressCap {
		u.Progress = ProgressCap
	}
}

// Complete moves a processing entity to its terminal success state and jumps
// progress to 100. Progress reaches 100 only here.
func (t *Tracker) Complete(id string) {
	u, ok := t.items[id]
	if !ok || !u.Status.CanTransition(domain.StatusCompleted) {
		return
	}
	u.Status = domain.StatusCompleted
	u.Progress = 100
}

// Fail moves an entity to its error terminal state with a message. Progress
// freezes wherever it was.
func (t *Tracker) Fail(id, message string) {
	u, ok := t.items[id]
	if !ok || !u.Status.CanTransition(domain.StatusError) {
		return
	}
	u.Status = domain.StatusError
	u.Error = message
}

// ActiveCount returns how many entities have not reached a terminal status.
func (t *Tracker) ActiveCount() int {
	n := 0
	for _, id := range t.order {
		if !t.items[id].Status.IsTerminal() {
			n++
		}
	}
	return n
}

// Done reports whether every tracked entity is terminal.
func (t *Tracker) Done() bool {
	return t.ActiveCount() == 0
}
