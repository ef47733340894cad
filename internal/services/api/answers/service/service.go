// Package service contains answers workflows
package service

import (
	"context"
	"time"

	"qanda/internal/core/htmltext"
	"qanda/internal/modkit/repokit"
	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store"
	"qanda/internal/services/api/answers/domain"
	"qanda/internal/services/api/answers/repo"
)

// Service defines the service contract for answers
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New creates a new answers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("answers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("answers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// List returns every answer by a non-deleted author, oldest first
func (s *Svc) List(ctx context.Context) ([]domain.AnswerSummary, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "list answers")
	}
	return out, nil
}

// ForQuestion returns the answers of a question, accepted first then by score
func (s *Svc) ForQuestion(ctx context.Context, questionID int64) ([]domain.AnswerSummary, error) {
	out, err := s.Repo.ForQuestion(ctx, questionID)
	if err != nil {
		return nil, perr.FromPostgresf(err, "list answers of question %d", questionID)
	}
	return out, nil
}

// Get returns one answer with its HTML body
func (s *Svc) Get(ctx context.Context, id int64) (domain.AnswerDetail, error) {
	a, err := s.Repo.Get(ctx, id)
	if store.ErrNoRows(err) {
		return domain.AnswerDetail{}, perr.NotFoundf("Answer ID %d not found", id)
	}
	if err != nil {
		return domain.AnswerDetail{}, perr.FromPostgresf(err, "get answer %d", id)
	}
	return a, nil
}

// Comments returns the comments of an answer by non-deleted authors
func (s *Svc) Comments(ctx context.Context, answerID int64) ([]domain.Comment, error) {
	out, err := s.Repo.Comments(ctx, answerID)
	if err != nil {
		return nil, perr.FromPostgresf(err, "list comments of answer %d", answerID)
	}
	return out, nil
}

// Create stores a new answer on an existing question
func (s *Svc) Create(ctx context.Context, questionID int64, in domain.CreateAnswerInput) (domain.Created, error) {
	userID, err := in.UserID.Int64()
	if err != nil {
		return domain.Created{}, perr.WithField(perr.Validationf("userId must be numeric"), "userId")
	}
	html := htmltext.Sanitize(in.Body)
	row := repo.NewAnswer{
		QuestionID: questionID,
		HTML:       html,
		Text:       htmltext.ToPlainText(html),
		Creation:   s.now(),
		UserID:     userID,
	}

	var id int64
	err = repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		ok, err := r.QuestionExists(ctx, questionID)
		if err != nil {
			return perr.FromPostgresf(err, "lookup question %d", questionID)
		}
		if !ok {
			return perr.NotFoundf("Question ID %d not found", questionID)
		}
		id, err = r.Insert(ctx, row)
		if perr.IsForeignKeyViolation(err) {
			return perr.WithField(perr.InvalidArgf("userId %d references no user", userID), "userId")
		}
		if err != nil {
			return perr.FromPostgresWithField(err, "insert answer")
		}
		return nil
	})
	if err != nil {
		return domain.Created{}, err
	}
	return domain.Created{ID: id}, nil
}
