// Package repo provides postgres access for users
package repo

import (
	"context"

	"qanda/internal/modkit/repokit"
	"qanda/internal/platform/store"
	"qanda/internal/services/api/users/domain"
)

// Repo defines the repository contract for users
type Repo interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func scanUser(row store.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name)
	return u, err
}

func (r *queries) List(ctx context.Context) ([]domain.User, error) {
	return store.Many(ctx, r.q, scanUser, `SELECT id, name FROM users WHERE deleted = false`)
}

func (r *queries) Get(ctx context.Context, id int64) (domain.User, error) {
	return store.One(ctx, r.q, scanUser, `SELECT id, name FROM users WHERE id = $1 AND deleted = false`, id)
}
