package adminroster

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// Roster is a Postgres implementation of adminroster.Roster backed by the
// admins table.
type Roster struct {
	pool *pgxpool.Pool
}

func NewRoster(pool *pgxpool.Pool) *Roster {
	return &Roster{pool: pool}
}

func (r *Roster) IsAdmin(ctx context.Context, id domain.AccountID) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return false, nil
	}
	var ok bool
	err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`, uid).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}
