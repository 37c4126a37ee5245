package resumestore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates no object exists at the requested path.
var ErrNotFound = errors.New("resume object not found")

// Store is the object store holding uploaded resumes, addressed by the
// deterministic per-account path (domain.ResumePath).
type Store interface {
	// Put stores (or replaces) the object at path.
	Put(ctx context.Context, path string, data []byte, contentType string) error

	// SignedURL returns a short-lived download link for the object at path.
	// Returns ErrNotFound if no object exists there.
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)

	// Delete removes the object at path. Returns ErrNotFound if absent.
	Delete(ctx context.Context, path string) error
}
