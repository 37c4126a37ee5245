package profilerepo

import (
	"context"
	"sync"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/profilerepo"
)

// Repo is an in-memory implementation of profilerepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.AccountID]domain.Profile
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.AccountID]domain.Profile)}
}

func (r *Repo) Create(ctx context.Context, p domain.Profile) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.AccountID]; ok {
		return profilerepo.ErrAlreadyExists
	}
	r.byID[p.AccountID] = p.Clone()
	return nil
}

func (r *Repo) Update(ctx context.Context, p domain.Profile) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.AccountID]; !ok {
		return profilerepo.ErrNotFound
	}
	r.byID[p.AccountID] = p.Clone()
	return nil
}

func (r *Repo) Get(ctx context.Context, id domain.AccountID) (domain.Profile, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return domain.Profile{}, profilerepo.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *Repo) DeleteAll(ctx context.Context, ids []domain.AccountID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.byID, id)
	}
	return nil
}
