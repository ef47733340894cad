// Package service contains questions workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"qanda/internal/core/htmltext"
	"qanda/internal/modkit/repokit"
	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store"
	"qanda/internal/services/api/questions/domain"
	"qanda/internal/services/api/questions/repo"
)

// Service defines the service contract for questions
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New creates a new questions service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("questions.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("questions.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// List returns every question by a non-deleted author, oldest first
func (s *Svc) List(ctx context.Context) ([]domain.QuestionSummary, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "list questions")
	}
	return out, nil
}

// Get returns one question with its HTML body
func (s *Svc) Get(ctx context.Context, id int64) (domain.QuestionDetail, error) {
	q, err := s.Repo.Get(ctx, id)
	if store.ErrNoRows(err) {
		return domain.QuestionDetail{}, notFound(id)
	}
	if err != nil {
		return domain.QuestionDetail{}, perr.FromPostgresf(err, "get question %d", id)
	}
	return q, nil
}

// Create stores a new question stamped now with score 0
func (s *Svc) Create(ctx context.Context, in domain.CreateQuestionInput) (domain.Created, error) {
	userID, err := parseUserID(in.UserID)
	if err != nil {
		return domain.Created{}, err
	}
	html := htmltext.Sanitize(in.Body)
	id, err := s.Repo.Insert(ctx, repo.NewQuestion{
		Title:    in.Title,
		HTML:     html,
		Text:     htmltext.ToPlainText(html),
		Creation: s.now(),
		UserID:   userID,
	})
	if err != nil {
		return domain.Created{}, insertErr(err, userID, "insert question")
	}
	return domain.Created{ID: id}, nil
}

// Comments returns the comments of a question by non-deleted authors
func (s *Svc) Comments(ctx context.Context, questionID int64) ([]domain.Comment, error) {
	out, err := s.Repo.Comments(ctx, questionID)
	if err != nil {
		return nil, perr.FromPostgresf(err, "list comments of question %d", questionID)
	}
	return out, nil
}

// AddComment stores a comment on an existing question
func (s *Svc) AddComment(ctx context.Context, questionID int64, in domain.CreateCommentInput) (domain.Created, error) {
	userID, err := parseUserID(in.UserID)
	if err != nil {
		return domain.Created{}, err
	}
	row := repo.NewComment{QuestionID: questionID, HTML: htmltext.Sanitize(in.Body), UserID: userID}

	var id int64
	err = repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		ok, err := r.Exists(ctx, questionID)
		if err != nil {
			return perr.FromPostgresf(err, "lookup question %d", questionID)
		}
		if !ok {
			return notFound(questionID)
		}
		id, err = r.InsertComment(ctx, row)
		if err != nil {
			return insertErr(err, userID, "insert question comment")
		}
		return nil
	})
	if err != nil {
		return domain.Created{}, err
	}
	return domain.Created{ID: id}, nil
}

func notFound(id int64) error { return perr.NotFoundf("Question ID %d not found", id) }

func parseUserID(n json.Number) (int64, error) {
	id, err := n.Int64()
	if err != nil {
		return 0, perr.WithField(perr.Validationf("userId must be numeric"), "userId")
	}
	return id, nil
}

// insertErr turns a missing author into a 422 naming userId
func insertErr(err error, userID int64, msg string) error {
	if perr.IsForeignKeyViolation(err) {
		return perr.WithField(perr.InvalidArgf("userId %d references no user", userID), "userId")
	}
	return perr.FromPostgresWithField(err, msg)
}
