// Package repo provides postgres writes for the ingest pipeline
package repo

import (
	"context"
	"fmt"

	"qanda/internal/modkit/repokit"
	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store"
	"qanda/internal/services/ingest/domain"
)

type (
	// PG is a Postgres binder for domain.StorageRepo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.StorageRepo { return &queries{q: q} }

// identityTables own a GENERATED BY DEFAULT identity that loaded ids bypass
var identityTables = []string{"questions", "q_comments", "answers", "a_comments"}

func (r *queries) UserExists(ctx context.Context, id int64) (bool, error) {
	ok, err := store.Scalar[bool](ctx, r.q, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, perr.FromPostgresf(err, "lookup user %d", id)
	}
	return ok, nil
}

func (r *queries) InsertUser(ctx context.Context, u domain.User) error {
	err := store.ExecOne(ctx, r.q, `INSERT INTO users (id, name) VALUES ($1, $2)`, u.ID, u.Name)
	return wrap(err, domain.KindUser, u.ID)
}

func (r *queries) InsertQuestion(ctx context.Context, q domain.QuestionRow) error {
	err := store.ExecOne(ctx, r.q, `
		INSERT INTO questions (id, title, html_body, text_body, creation, score, user_id)
		VALUES ($1, $2, $3, $4, to_timestamp($5), $6, $7)
	`, q.ID, q.Title, q.HTML, q.Text, q.Creation, q.Score, q.UserID)
	return wrap(err, domain.KindQuestion, q.ID)
}

func (r *queries) InsertQuestionComment(ctx context.Context, c domain.CommentRow) error {
	err := store.ExecOne(ctx, r.q, `
		INSERT INTO q_comments (id, question_id, html_body, user_id)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.ParentID, c.HTML, c.UserID)
	return wrap(err, domain.KindQuestionComment, c.ID)
}

func (r *queries) InsertAnswer(ctx context.Context, a domain.AnswerRow) error {
	err := store.ExecOne(ctx, r.q, `
		INSERT INTO answers (id, question_id, html_body, text_body, creation, score, user_id, accepted)
		VALUES ($1, $2, $3, $4, to_timestamp($5), $6, $7, $8)
	`, a.ID, a.QuestionID, a.HTML, a.Text, a.Creation, a.Score, a.UserID, a.Accepted)
	return wrap(err, domain.KindAnswer, a.ID)
}

func (r *queries) InsertAnswerComment(ctx context.Context, c domain.CommentRow) error {
	err := store.ExecOne(ctx, r.q, `
		INSERT INTO a_comments (id, answer_id, html_body, user_id)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.ParentID, c.HTML, c.UserID)
	return wrap(err, domain.KindAnswerComment, c.ID)
}

func (r *queries) SyncIdentities(ctx context.Context) error {
	for _, t := range identityTables {
		// table names come from the fixed list above
		sql := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s`, t)
		if _, err := r.q.Exec(ctx, sql); err != nil {
			return perr.FromPostgresf(err, "sync %s identity", t)
		}
	}
	return nil
}

// wrap names the entity and keeps the mapped code of a pg failure
func wrap(err error, kind string, id int64) error {
	if err == nil {
		return nil
	}
	return perr.AttachFieldFromPg(perr.FromPostgresf(err, "insert %s %d", kind, id))
}
