package adminroster

import (
	"context"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// Roster answers the single authorization predicate gating every admin
// operation. Membership is managed outside this service.
type Roster interface {
	IsAdmin(ctx context.Context, id domain.AccountID) (bool, error)
}
