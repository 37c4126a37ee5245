package resumestore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/uf-sase-hacks/registration-api/internal/ports/out/resumestore"
)

type object struct {
	data        []byte
	contentType string
}

// Store is an in-memory implementation of resumestore.Store for dev and
// tests. Signed URLs are synthetic but stable for a given path.
type Store struct {
	mu   sync.RWMutex
	objs map[string]object
}

func NewStore() *Store {
	return &Store{objs: make(map[string]object)}
}

func (s *Store) Put(ctx context.Context, path string, data []byte, contentType string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objs[path] = object{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (s *Store) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objs[path]; !ok {
		return "", resumestore.ErrNotFound
	}
	return fmt.Sprintf("memory://resumes/%s?ttl=%d", path, int64(ttl.Seconds())), nil
}

func (s *Store) Delete(ctx context.Context, path string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objs[path]; !ok {
		return resumestore.ErrNotFound
	}
	delete(s.objs, path)
	return nil
}

// Object returns the stored bytes and content type for assertions in tests.
func (s *Store) Object(path string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objs[path]
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), o.data...), o.contentType, true
}
