// Package repo provides postgres access for questions
package repo

import (
	"context"
	"time"

	"qanda/internal/modkit/repokit"
	"qanda/internal/platform/store"
	"qanda/internal/services/api/questions/domain"
)

// Repo defines the repository contract for questions
type Repo interface {
	List(ctx context.Context) ([]domain.QuestionSummary, error)
	Get(ctx context.Context, id int64) (domain.QuestionDetail, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, row NewQuestion) (int64, error)
	Comments(ctx context.Context, questionID int64) ([]domain.Comment, error)
	InsertComment(ctx context.Context, row NewComment) (int64, error)
}

// NewQuestion is a row for Insert; score starts at 0
type NewQuestion struct {
	Title    string
	HTML     string
	Text     string
	Creation time.Time
	UserID   int64
}

// NewComment is a row for InsertComment
type NewComment struct {
	QuestionID int64
	HTML       string
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

// SummaryColumns selects a QuestionSummary from questions joined to users
const SummaryColumns = `
SELECT questions.id, questions.title, left(questions.text_body, 256) AS preview,
extract(epoch FROM questions.creation)::bigint AS creation, questions.score,
questions.user_id, users.name AS user_name
FROM questions
INNER JOIN users ON questions.user_id = users.id
`

// ScanSummary maps one SummaryColumns row
func ScanSummary(row store.Row) (domain.QuestionSummary, error) {
	var q domain.QuestionSummary
	err := row.Scan(&q.ID, &q.Title, &q.Preview, &q.Creation, &q.Score, &q.UserID, &q.UserName)
	return q, err
}

func (r *queries) List(ctx context.Context) ([]domain.QuestionSummary, error) {
	return store.Many(ctx, r.q, ScanSummary, SummaryColumns+`
WHERE users.deleted = false
ORDER BY questions.creation
`)
}

func (r *queries) Get(ctx context.Context, id int64) (domain.QuestionDetail, error) {
	const sql = `
SELECT questions.id, questions.title, questions.html_body AS body,
extract(epoch FROM questions.creation)::bigint AS creation, questions.score,
questions.user_id, users.name AS user_name
FROM questions
INNER JOIN users ON questions.user_id = users.id
WHERE questions.id = $1 AND users.deleted = false
`
	return store.One(ctx, r.q, func(row store.Row) (domain.QuestionDetail, error) {
		var q domain.QuestionDetail
		err := row.Scan(&q.ID, &q.Title, &q.Body, &q.Creation, &q.Score, &q.UserID, &q.UserName)
		return q, err
	}, sql, id)
}

func (r *queries) Exists(ctx context.Context, id int64) (bool, error) {
	return store.Scalar[bool](ctx, r.q, `SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1)`, id)
}

func (r *queries) Insert(ctx context.Context, row NewQuestion) (int64, error) {
	const sql = `
INSERT INTO questions (title, html_body, text_body, creation, score, user_id)
VALUES ($1, $2, $3, to_timestamp($4), 0, $5)
RETURNING id
`
	return store.Scalar[int64](ctx, r.q, sql, row.Title, row.HTML, row.Text, row.Creation.Unix(), row.UserID)
}

func (r *queries) Comments(ctx context.Context, questionID int64) ([]domain.Comment, error) {
	const sql = `
SELECT q_comments.id, q_comments.html_body AS body, q_comments.user_id, users.name AS user_name
FROM q_comments
INNER JOIN users ON q_comments.user_id = users.id
WHERE q_comments.question_id = $1 AND users.deleted = false
`
	return store.Many(ctx, r.q, func(row store.Row) (domain.Comment, error) {
		var c domain.Comment
		err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.UserName)
		return c, err
	}, sql, questionID)
}

func (r *queries) InsertComment(ctx context.Context, row NewComment) (int64, error) {
	const sql = `
INSERT INTO q_comments (question_id, html_body, user_id)
VALUES ($1, $2, $3)
RETURNING id
`
	return store.Scalar[int64](ctx, r.q, sql, row.QuestionID, row.HTML, row.UserID)
}
