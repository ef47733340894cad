// Package repo provides the ranked full-text query over questions
package repo

import (
	"context"

	"qanda/internal/modkit/repokit"
	"qanda/internal/platform/store"
	"qanda/internal/services/api/search/domain"

	questionsrepo "qanda/internal/services/api/questions/repo"
)

// Repo defines the repository contract for search
type Repo interface {
	Search(ctx context.Context, query string) ([]domain.Result, error)
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

// Search matches the english tsvector of the question text; ties keep ts_rank order
func (r *queries) Search(ctx context.Context, query string) ([]domain.Result, error) {
	return store.Many(ctx, r.q, questionsrepo.ScanSummary, questionsrepo.SummaryColumns+`
WHERE questions.ts_body @@ websearch_to_tsquery('english', $1) AND users.deleted = false
ORDER BY ts_rank(questions.ts_body, websearch_to_tsquery('english', $1)) DESC
`, query)
}
