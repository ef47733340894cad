// Package repo provides postgres access for answers
package repo

import (
	"context"
	"time"

	"qanda/internal/modkit/repokit"
	"qanda/internal/platform/store"
	"qanda/internal/services/api/answers/domain"
)

// Repo defines the repository contract for answers
type Repo interface {
	List(ctx context.Context) ([]domain.AnswerSummary, error)
	ForQuestion(ctx context.Context, questionID int64) ([]domain.AnswerSummary, error)
	Get(ctx context.Context, id int64) (domain.AnswerDetail, error)
	Comments(ctx context.Context, answerID int64) ([]domain.Comment, error)
	QuestionExists(ctx context.Context, questionID int64) (bool, error)
	Insert(ctx context.Context, row NewAnswer) (int64, error)
}

// NewAnswer is a row for Insert; score starts at 0 and accepted at false
type NewAnswer struct {
	QuestionID int64
	HTML       string
	Text       string
	Creation   time.Time
	UserID     int64
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

const summaryCols = `
SELECT answers.id, answers.question_id, left(answers.text_body, 256) AS preview,
extract(epoch FROM answers.creation)::bigint AS creation, answers.score,
answers.user_id, users.name AS user_name, answers.accepted
FROM answers
INNER JOIN users ON answers.user_id = users.id
`

func scanSummary(row store.Row) (domain.AnswerSummary, error) {
	var a domain.AnswerSummary
	err := row.Scan(&a.ID, &a.QuestionID, &a.Preview, &a.Creation, &a.Score, &a.UserID, &a.UserName, &a.Accepted)
	return a, err
}

func (r *queries) List(ctx context.Context) ([]domain.AnswerSummary, error) {
	return store.Many(ctx, r.q, scanSummary, summaryCols+`
WHERE users.deleted = false
ORDER BY answers.creation
`)
}

// ForQuestion puts the accepted answer first, then the rest by score
func (r *queries) ForQuestion(ctx context.Context, questionID int64) ([]domain.AnswerSummary, error) {
	return store.Many(ctx, r.q, scanSummary, summaryCols+`
WHERE answers.question_id = $1 AND users.deleted = false
ORDER BY answers.accepted DESC, answers.score DESC
`, questionID)
}

func (r *queries) Get(ctx context.Context, id int64) (domain.AnswerDetail, error) {
	const sql = `
SELECT answers.id, answers.question_id, answers.html_body AS body,
extract(epoch FROM answers.creation)::bigint AS creation, answers.score,
answers.user_id, users.name AS user_name, answers.accepted
FROM answers
INNER JOIN users ON answers.user_id = users.id
WHERE answers.id = $1 AND users.deleted = false
`
	return store.One(ctx, r.q, func(row store.Row) (domain.AnswerDetail, error) {
		var a domain.AnswerDetail
		err := row.Scan(&a.ID, &a.QuestionID, &a.Body, &a.Creation, &a.Score, &a.UserID, &a.UserName, &a.Accepted)
		return a, err
	}, sql, id)
}

func (r *queries) Comments(ctx context.Context, answerID int64) ([]domain.Comment, error) {
	const sql = `
SELECT a_comments.id, a_comments.html_body AS body, a_comments.user_id, users.name AS user_name
FROM a_comments
INNER JOIN users ON a_comments.user_id = users.id
WHERE a_comments.answer_id = $1 AND users.deleted = false
`
	return store.Many(ctx, r.q, func(row store.Row) (domain.Comment, error) {
		var c domain.Comment
		err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.UserName)
		return c, err
	}, sql, answerID)
}

func (r *queries) QuestionExists(ctx context.Context, questionID int64) (bool, error) {
	return store.Scalar[bool](ctx, r.q, `SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1)`, questionID)
}

func (r *queries) Insert(ctx context.Context, row NewAnswer) (int64, error) {
	const sql = `
INSERT INTO answers (question_id, html_body, text_body, creation, score, user_id, accepted)
VALUES ($1, $2, $3, to_timestamp($4), 0, $5, false)
RETURNING id
`
	return store.Scalar[int64](ctx, r.q, sql, row.QuestionID, row.HTML, row.Text, row.Creation.Unix(), row.UserID)
}
