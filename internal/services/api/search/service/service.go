// Package service contains the search workflow
package service

import (
	"context"

	"qanda/internal/modkit/repokit"
	perr "qanda/internal/platform/errors"
	"qanda/internal/services/api/search/domain"
	"qanda/internal/services/api/search/repo"
)

// Service defines the service contract for search
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
}

// New creates a new search service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("search.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db)}
}

// ErrMissingQuery is returned when the q parameter is absent
var ErrMissingQuery = perr.WithField(perr.Validationf("Must include query parameter 'q'"), "q")

// Search ranks questions against query
func (s *Svc) Search(ctx context.Context, query string) ([]domain.Result, error) {
	out, err := s.Repo.Search(ctx, query)
	if err != nil {
		return nil, perr.FromPostgres(err, "search questions")
	}
	return out, nil
}
