package adminroster

import (
	"context"
	"sync"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// Roster is an in-memory implementation of adminroster.Roster.
type Roster struct {
	mu  sync.RWMutex
	ids map[domain.AccountID]struct{}
}

func NewRoster(ids ...domain.AccountID) *Roster {
	r := &Roster{ids: make(map[domain.AccountID]struct{}, len(ids))}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

func (r *Roster) Grant(id domain.AccountID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[id] = struct{}{}
}

func (r *Roster) IsAdmin(ctx context.Context, id domain.AccountID) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[id]
	return ok, nil
}
