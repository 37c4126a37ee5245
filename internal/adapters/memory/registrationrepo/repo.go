package registrationrepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/profilerepo"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
)

// Repo is an in-memory implementation of registrationrepo.Repository.
// It is safe for concurrent use. Listing joins against the profile
// repository the same way the SQL adapter joins against the profiles table.
type Repo struct {
	mu       sync.RWMutex
	byID     map[domain.AccountID]domain.Registration
	profiles profilerepo.Repository
}

func NewRepo(profiles profilerepo.Repository) *Repo {
	return &Repo{
		byID:     make(map[domain.AccountID]domain.Registration),
		profiles: profiles,
	}
}

func (r *Repo) Create(ctx context.Context, reg domain.Registration) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[reg.AccountID]; ok {
		return registrationrepo.ErrAlreadyExists
	}
	r.byID[reg.AccountID] = reg.Clone()
	return nil
}

func (r *Repo) Get(ctx context.Context, id domain.AccountID) (domain.Registration, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.byID[id]
	if !ok {
		return domain.Registration{}, registrationrepo.ErrNotFound
	}
	return reg.Clone(), nil
}

func (r *Repo) UpdateConsents(ctx context.Context, id domain.AccountID, c domain.ConsentFlags, at time.Time) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok {
		return registrationrepo.ErrNotFound
	}
	reg.Consents = c
	reg.UpdatedAt = at
	r.byID[id] = reg
	return nil
}

func (r *Repo) SetResume(ctx context.Context, id domain.AccountID, path string, at time.Time) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok {
		return registrationrepo.ErrNotFound
	}
	p := path
	t := at
	reg.ResumePath = &p
	reg.ResumeUpdatedAt = &t
	reg.UpdatedAt = at
	r.byID[id] = reg
	return nil
}

func (r *Repo) SetStatusAll(ctx context.Context, ids []domain.AccountID, s domain.Status, at time.Time) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		reg, ok := r.byID[id]
		if !ok {
			continue
		}
		reg.Status = s
		reg.UpdatedAt = at
		r.byID[id] = reg
	}
	return nil
}

func (r *Repo) SetLockAll(ctx context.Context, ids []domain.AccountID, locked bool, at time.Time) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		reg, ok := r.byID[id]
		if !ok {
			continue
		}
		reg.EditingLocked = locked
		reg.UpdatedAt = at
		r.byID[id] = reg
	}
	return nil
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

func (r *Repo) List(ctx context.Context, f registrationrepo.Filter) ([]registrationrepo.Entry, error) {
	regs := r.snapshot()

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]registrationrepo.Entry, 0, len(regs))
	for _, reg := range regs {
		if f.Status != "" && reg.Status != f.Status {
			continue
		}
		p, err := r.lookupProfile(ctx, reg.AccountID)
		if err != nil {
			return nil, err
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.FullName), q) &&
			!strings.Contains(strings.ToLower(p.Email), q) {
			continue
		}
		out = append(out, registrationrepo.Entry{Registration: reg, Profile: p})
	}
	sortEntriesNewestFirst(out)
	return out, nil
}

func (r *Repo) ListSharedWithResume(ctx context.Context) ([]registrationrepo.Entry, error) {
	regs := r.snapshot()

	out := make([]registrationrepo.Entry, 0)
	for _, reg := range regs {
		if !reg.Consents.ShareResumeWithCompanies || reg.ResumePath == nil {
			continue
		}
		p, err := r.lookupProfile(ctx, reg.AccountID)
		if err != nil {
			return nil, err
		}
		out = append(out, registrationrepo.Entry{Registration: reg, Profile: p})
	}
	sortEntriesNewestFirst(out)
	return out, nil
}

func (r *Repo) snapshot() []domain.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Registration, 0, len(r.byID))
	for _, reg := range r.byID {
		out = append(out, reg.Clone())
	}
	return out
}

// A registration without a profile row joins as an empty profile, matching
// the SQL adapter's LEFT JOIN.
func (r *Repo) lookupProfile(ctx context.Context, id domain.AccountID) (domain.Profile, error) {
	p, err := r.profiles.Get(ctx, id)
	if err != nil {
		if err == profilerepo.ErrNotFound {
			return domain.Profile{AccountID: id}, nil
		}
		return domain.Profile{}, err
	}
	return p, nil
}

func sortEntriesNewestFirst(es []registrationrepo.Entry) {
	sort.Slice(es, func(i, j int) bool {
		ci := es[i].Registration.CreatedAt
		cj := es[j].Registration.CreatedAt
		if ci.Equal(cj) {
			return es[i].Registration.AccountID < es[j].Registration.AccountID
		}
		return ci.After(cj)
	})
}
