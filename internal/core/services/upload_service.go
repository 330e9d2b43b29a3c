package services

import (
	"context"
	"fmt"
	"os"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/adapters/api"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports"
)

// UploadService performs one backend request per upload entity and maps the
// outcome back onto the tracker. Requests are independent and unordered;
// callers may run any number of them concurrently.
type UploadService struct {
	gateway ports.Gateway

	// onAuthFailure is invoked once per operation that failed with HTTP 401,
	// so the caller can prompt a re-login. Distinct from generic errors
	// because the recovery differs.
	onAuthFailure func()
}

// NewUploadService creates an upload service. onAuthFailure may be nil.
func NewUploadService(gateway ports.Gateway, onAuthFailure func()) *UploadService {
	return &UploadService{gateway: gateway, onAuthFailure: onAuthFailure}
}

// UploadOutcome is the terminal result of one upload request, keyed by the
// entity id it belongs to.
type UploadOutcome struct {
	ID          string
	Result      *ports.UploadResult
	Err         error
	AuthFailure bool
}

// Do uploads the entity's file and returns the outcome. It never panics or
// propagates errors upward: every failure mode becomes an outcome the caller
// folds into entity state.
func (s *UploadService) Do(ctx context.Context, u domain.Upload) UploadOutcome {
	f, err := os.Open(u.Path)
	if err != nil {
		return UploadOutcome{ID: u.ID, Err: fmt.Errorf("open %s: %w", u.Filename, err)}
	}
	defer f.Close()

	result, err := s.gateway.Upload(ctx, u.Filename, u.ContentType, f)
	if err != nil {
		return UploadOutcome{ID: u.ID, Err: err, AuthFailure: api.IsUnauthorized(err)}
	}
	return UploadOutcome{ID: u.ID, Result: result}
}

// Apply folds an outcome into the tracker. Auth failures additionally fire
// the re-login callback, exactly once per failed operation; entities other
// than the outcome's own are never touched.
func (s *UploadService) Apply(t *Tracker, o UploadOutcome) {
	if o.Err != nil {
		t.Fail(o.ID, o.Err.Error())
		if o.AuthFailure && s.onAuthFailure != nil {
			s.onAuthFailure()
		}
		return
	}
	if o.Result != nil {
		t.Resolve(o.ID, *o.Result)
	}
}
