package registrationrepo

import (
	"context"
	"time"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// Filter selects registrations for the admin listing. Zero values mean "no
// constraint": an empty Status matches every status, an empty Query matches
// every row. Query is a case-insensitive substring match over the profile's
// full name and email.
type Filter struct {
	Status domain.Status
	Query  string
}

// Entry is a registration joined with its profile, as the admin console and
// the CSV export consume it.
type Entry struct {
	Registration domain.Registration
	Profile      domain.Profile
}

// Repository provides access to persisted registrations.
//
// Bulk mutations (SetStatusAll, SetLockAll, DeleteAll) must be single
// conditional writes scoped to exactly the given id set: they either apply as
// a whole or report an error, with no per-row partial-success contract.
//
// List results are ordered by registration creation time descending (newest
// first), ties broken by account id, to keep behavior deterministic.
type Repository interface {
	Create(ctx context.Context, r domain.Registration) error
	Get(ctx context.Context, id domain.AccountID) (domain.Registration, error)

	// UpdateConsents replaces the consent flags for one registration.
	UpdateConsents(ctx context.Context, id domain.AccountID, c domain.ConsentFlags, at time.Time) error

	// SetResume records the stored resume path and stamps ResumeUpdatedAt;
	// the two change together or not at all.
	SetResume(ctx context.Context, id domain.AccountID, path string, at time.Time) error

	SetStatusAll(ctx context.Context, ids []domain.AccountID, s domain.Status, at time.Time) error
	SetLockAll(ctx context.Context, ids []domain.AccountID, locked bool, at time.Time) error
	DeleteAll(ctx context.Context, ids []domain.AccountID) error

	List(ctx context.Context, f Filter) ([]Entry, error)

	// ListSharedWithResume returns entries whose owner opted into resume
	// sharing and has a stored resume.
	ListSharedWithResume(ctx context.Context) ([]Entry, error)
}
