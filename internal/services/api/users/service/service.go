// Package service contains users workflows
package service

import (
	"context"

	"qanda/internal/modkit/repokit"
	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store"
	"qanda/internal/services/api/users/domain"
	"qanda/internal/services/api/users/repo"
)

// Service defines the service contract for users
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
}

// New creates a new users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db)}
}

// List returns users that are not soft deleted
func (s *Svc) List(ctx context.Context) ([]domain.User, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "list users")
	}
	return out, nil
}

// Get returns one user; deleted users are not found
func (s *Svc) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Repo.Get(ctx, id)
	if store.ErrNoRows(err) {
		return domain.User{}, perr.NotFoundf("User ID %d not found", id)
	}
	if err != nil {
		return domain.User{}, perr.FromPostgresf(err, "get user %d", id)
	}
	return u, nil
}
