package profilerepo

import (
	"context"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// Repository provides access to persisted profiles, keyed by account id.
//
// DeleteAll is scoped to exactly the given id set; ids with no row are not an
// error (the bulk delete contract is "remove whatever exists").
type Repository interface {
	Create(ctx context.Context, p domain.Profile) error
	Update(ctx context.Context, p domain.Profile) error

	Get(ctx context.Context, id domain.AccountID) (domain.Profile, error)

	DeleteAll(ctx context.Context, ids []domain.AccountID) error
}
