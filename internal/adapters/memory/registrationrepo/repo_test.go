package registrationrepo

import (
	"context"
	"testing"
	"time"

	memprofilerepo "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/profilerepo"
	"github.com/uf-sase-hacks/registration-api/internal/domain"
	registrationrepoport "github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
)

func TestList_TieBreaksOnAccountID(t *testing.T) {
	t.Parallel()

	profiles := memprofilerepo.NewRepo()
	repo := NewRepo(profiles)
	ctx := context.Background()
	now := time.Unix(3000, 0).UTC()

	// Same CreatedAt: order falls back to account id ascending.
	for _, id := range []domain.AccountID{"acct-b", "acct-a", "acct-c"} {
		if err := repo.Create(ctx, domain.NewRegistration(id, now)); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	entries, err := repo.List(ctx, registrationrepoport.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []domain.AccountID{"acct-a", "acct-b", "acct-c"}
	for i, w := range want {
		if entries[i].Registration.AccountID != w {
			t.Fatalf("order[%d] = %v, want %v", i, entries[i].Registration.AccountID, w)
		}
	}
}

func TestList_MissingProfileJoinsEmpty(t *testing.T) {
	t.Parallel()

	profiles := memprofilerepo.NewRepo()
	repo := NewRepo(profiles)
	ctx := context.Background()

	if err := repo.Create(ctx, domain.NewRegistration("acct-1", time.Unix(3000, 0).UTC())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	entries, err := repo.List(ctx, registrationrepoport.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	p := entries[0].Profile
	if p.AccountID != "acct-1" || p.FullName != "" || p.Email != "" {
		t.Fatalf("expected empty joined profile, got %+v", p)
	}
}

func TestBulkMutationsSkipMissingIDs(t *testing.T) {
	t.Parallel()

	profiles := memprofilerepo.NewRepo()
	repo := NewRepo(profiles)
	ctx := context.Background()
	now := time.Unix(3000, 0).UTC()

	if err := repo.Create(ctx, domain.NewRegistration("acct-1", now)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SetStatusAll(ctx, []domain.AccountID{"acct-1", "acct-missing"}, domain.StatusConfirmed, now); err != nil {
		t.Fatalf("SetStatusAll with missing id: %v", err)
	}
	got, err := repo.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("status = %q", got.Status)
	}
}
