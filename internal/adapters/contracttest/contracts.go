// Package contracttest holds behavioral test suites that every adapter
// implementation of a port must pass. Memory and Postgres adapters run the
// same suites so their observable semantics cannot drift apart.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
	profilerepoport "github.com/uf-sase-hacks/registration-api/internal/ports/out/profilerepo"
	registrationrepoport "github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
	resumestoreport "github.com/uf-sase-hacks/registration-api/internal/ports/out/resumestore"
)

type CleanupFunc = func()

type ProfileRepoFactory func(t *testing.T) (profilerepoport.Repository, CleanupFunc)

// RegistrationRepoFactory returns the registration repo plus the profile repo
// it joins against, so the suite can provision profiles for List assertions.
type RegistrationRepoFactory func(t *testing.T) (registrationrepoport.Repository, profilerepoport.Repository, CleanupFunc)

type ResumeStoreFactory func(t *testing.T) (resumestoreport.Store, CleanupFunc)

func newProfile(id domain.AccountID, first, last, email string, at time.Time) domain.Profile {
	return domain.Profile{
		AccountID:   id,
		FirstName:   first,
		LastName:    last,
		FullName:    first + " " + last,
		Email:       email,
		PhoneNumber: "3525550100",
		Age:         domain.AgeBrackets[0],
		LinkedInURL: "https://linkedin.com/in/" + first,
		School:      "University of Florida",
		Country:     "United States",
		Dietary:     []domain.DietaryTag{},
		Race:        []domain.Race{},
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

func RunProfileRepo(t *testing.T, newRepo ProfileRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(1000, 0).UTC()
	aID := domain.AccountID(uuid.NewString())
	a := newProfile(aID, "Alice", "Johnson", "alice@example.com", now)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Account id uniqueness.
	if err := repo.Create(ctx, a); !errors.Is(err, profilerepoport.ErrAlreadyExists) {
		t.Fatalf("duplicate Create: got %v, want ErrAlreadyExists", err)
	}

	got, err := repo.Get(ctx, aID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FullName != "Alice Johnson" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := repo.Get(ctx, domain.AccountID(uuid.NewString())); !errors.Is(err, profilerepoport.ErrNotFound) {
		t.Fatalf("Get missing: got %v, want ErrNotFound", err)
	}

	a.School = "Santa Fe College"
	a.Dietary = []domain.DietaryTag{domain.DietaryTags[0]}
	a.UpdatedAt = now.Add(time.Minute)
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.Get(ctx, aID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.School != "Santa Fe College" || len(got.Dietary) != 1 {
		t.Fatalf("update not persisted: %+v", got)
	}

	missing := newProfile(domain.AccountID(uuid.NewString()), "Nobody", "Here", "nobody@example.com", now)
	if err := repo.Update(ctx, missing); !errors.Is(err, profilerepoport.ErrNotFound) {
		t.Fatalf("Update missing: got %v, want ErrNotFound", err)
	}

	// DeleteAll removes only the given ids and tolerates absent ones.
	bID := domain.AccountID(uuid.NewString())
	if err := repo.Create(ctx, newProfile(bID, "Bob", "Lee", "bob@example.com", now)); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	if err := repo.DeleteAll(ctx, []domain.AccountID{aID, domain.AccountID(uuid.NewString())}); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if _, err := repo.Get(ctx, aID); !errors.Is(err, profilerepoport.ErrNotFound) {
		t.Fatalf("deleted profile still present: %v", err)
	}
	if _, err := repo.Get(ctx, bID); err != nil {
		t.Fatalf("unrelated profile removed: %v", err)
	}
}

func RunRegistrationRepo(t *testing.T, newRepo RegistrationRepoFactory) {
	t.Helper()
	ctx := context.Background()

	regs, profiles, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	base := time.Unix(2000, 0).UTC()
	aID := domain.AccountID(uuid.NewString())
	bID := domain.AccountID(uuid.NewString())

	if err := profiles.Create(ctx, newProfile(aID, "Alice", "Johnson", "alice@example.com", base)); err != nil {
		t.Fatalf("Create profile a: %v", err)
	}
	if err := profiles.Create(ctx, newProfile(bID, "Bob", "Lee", "bob@example.com", base)); err != nil {
		t.Fatalf("Create profile b: %v", err)
	}

	ra := domain.NewRegistration(aID, base)
	rb := domain.NewRegistration(bID, base.Add(time.Hour))
	if err := regs.Create(ctx, ra); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if err := regs.Create(ctx, ra); !errors.Is(err, registrationrepoport.ErrAlreadyExists) {
		t.Fatalf("duplicate Create: got %v, want ErrAlreadyExists", err)
	}
	if err := regs.Create(ctx, rb); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	if _, err := regs.Get(ctx, domain.AccountID(uuid.NewString())); !errors.Is(err, registrationrepoport.ErrNotFound) {
		t.Fatalf("Get missing: got %v, want ErrNotFound", err)
	}

	// Consents round-trip.
	flags := domain.ConsentFlags{
		AccuracyAgreement:        true,
		TermsAndConditions:       true,
		CodeOfConduct:            true,
		MLHCodeOfConduct:         true,
		MLHDataSharing:           true,
		ShareResumeWithCompanies: true,
	}
	if err := regs.UpdateConsents(ctx, aID, flags, base.Add(time.Minute)); err != nil {
		t.Fatalf("UpdateConsents: %v", err)
	}
	got, err := regs.Get(ctx, aID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Consents != flags {
		t.Fatalf("consents not persisted: %+v", got.Consents)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("UpdatedAt not stamped: %+v", got)
	}
	if err := regs.UpdateConsents(ctx, domain.AccountID(uuid.NewString()), flags, base); !errors.Is(err, registrationrepoport.ErrNotFound) {
		t.Fatalf("UpdateConsents missing: got %v, want ErrNotFound", err)
	}

	// Resume path and timestamp change together.
	resumeAt := base.Add(2 * time.Minute)
	if err := regs.SetResume(ctx, aID, string(aID)+"/resume.pdf", resumeAt); err != nil {
		t.Fatalf("SetResume: %v", err)
	}
	got, _ = regs.Get(ctx, aID)
	if got.ResumePath == nil || got.ResumeUpdatedAt == nil {
		t.Fatalf("resume fields not set: %+v", got)
	}
	if !got.ResumeUpdatedAt.Equal(resumeAt) {
		t.Fatalf("ResumeUpdatedAt = %v, want %v", got.ResumeUpdatedAt, resumeAt)
	}

	// Bulk status applies to exactly the given set.
	if err := regs.SetStatusAll(ctx, []domain.AccountID{aID}, domain.StatusConfirmed, base.Add(3*time.Minute)); err != nil {
		t.Fatalf("SetStatusAll: %v", err)
	}
	got, _ = regs.Get(ctx, aID)
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", got.Status)
	}
	gotB, _ := regs.Get(ctx, bID)
	if gotB.Status != domain.StatusPending {
		t.Fatalf("untouched status = %q, want pending", gotB.Status)
	}

	if err := regs.SetLockAll(ctx, []domain.AccountID{aID, bID}, true, base.Add(4*time.Minute)); err != nil {
		t.Fatalf("SetLockAll: %v", err)
	}
	got, _ = regs.Get(ctx, aID)
	gotB, _ = regs.Get(ctx, bID)
	if !got.EditingLocked || !gotB.EditingLocked {
		t.Fatalf("lock not applied to full selection")
	}

	// List: newest first, joined with profiles.
	entries, err := regs.List(ctx, registrationrepoport.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List len = %d, want 2", len(entries))
	}
	if entries[0].Registration.AccountID != bID {
		t.Fatalf("List order: first = %v, want %v (newest)", entries[0].Registration.AccountID, bID)
	}
	if entries[1].Profile.FullName != "Alice Johnson" {
		t.Fatalf("join missing profile: %+v", entries[1].Profile)
	}

	entries, err = regs.List(ctx, registrationrepoport.Filter{Status: domain.StatusConfirmed})
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if len(entries) != 1 || entries[0].Registration.AccountID != aID {
		t.Fatalf("status filter: %+v", entries)
	}

	entries, err = regs.List(ctx, registrationrepoport.Filter{Query: "bob@"})
	if err != nil {
		t.Fatalf("List by query: %v", err)
	}
	if len(entries) != 1 || entries[0].Registration.AccountID != bID {
		t.Fatalf("query filter: %+v", entries)
	}

	// Case-insensitive name match.
	entries, err = regs.List(ctx, registrationrepoport.Filter{Query: "alice john"})
	if err != nil {
		t.Fatalf("List by name: %v", err)
	}
	if len(entries) != 1 || entries[0].Registration.AccountID != aID {
		t.Fatalf("name filter: %+v", entries)
	}

	// Shared-resume listing requires both the flag and a stored resume.
	shared, err := regs.ListSharedWithResume(ctx)
	if err != nil {
		t.Fatalf("ListSharedWithResume: %v", err)
	}
	if len(shared) != 1 || shared[0].Registration.AccountID != aID {
		t.Fatalf("shared listing: %+v", shared)
	}

	if err := regs.DeleteAll(ctx, []domain.AccountID{aID, bID}); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if _, err := regs.Get(ctx, aID); !errors.Is(err, registrationrepoport.ErrNotFound) {
		t.Fatalf("deleted registration still present: %v", err)
	}
}

func RunResumeStore(t *testing.T, newStore ResumeStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	path := uuid.NewString() + "/resume.pdf"
	if err := store.Put(ctx, path, []byte("%PDF-1.4 test"), "application/pdf"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	url, err := store.SignedURL(ctx, path, time.Minute)
	if err != nil {
		t.Fatalf("SignedURL: %v", err)
	}
	if url == "" {
		t.Fatalf("empty signed url")
	}

	if _, err := store.SignedURL(ctx, "missing/resume.pdf", time.Minute); !errors.Is(err, resumestoreport.ErrNotFound) {
		t.Fatalf("SignedURL missing: got %v, want ErrNotFound", err)
	}

	// Overwrite is allowed.
	if err := store.Put(ctx, path, []byte("%PDF-1.7 newer"), "application/pdf"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	if err := store.Delete(ctx, path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, path); !errors.Is(err, resumestoreport.ErrNotFound) {
		t.Fatalf("Delete missing: got %v, want ErrNotFound", err)
	}
}
