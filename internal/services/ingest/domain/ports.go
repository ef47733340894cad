package domain

import "context"

// RunnerPort is what the loader binary calls
type RunnerPort interface {
	Ingest(ctx context.Context, doc Document) (Stats, error)
}

// StorageRepo is the write surface of one question graph
type StorageRepo interface {
	// UserExists reports whether a user row with id is already stored
	UserExists(ctx context.Context, id int64) (bool, error)

	// InsertUser writes a new user row
	InsertUser(ctx context.Context, u User) error

	InsertQuestion(ctx context.Context, q QuestionRow) error
	InsertQuestionComment(ctx context.Context, c CommentRow) error
	InsertAnswer(ctx context.Context, a AnswerRow) error
	InsertAnswerComment(ctx context.Context, c CommentRow) error

	// SyncIdentities moves every identity sequence past the highest loaded id
	SyncIdentities(ctx context.Context) error
}

// Normalizer derives the search text of an HTML body
type Normalizer interface {
	ToPlainText(html string) string
}

// NormalizerFunc adapts a plain function to Normalizer
type NormalizerFunc func(string) string

// ToPlainText calls f
func (f NormalizerFunc) ToPlainText(html string) string { return f(html) }

// Counter receives one tick per processed entity
type Counter interface {
	Ingested(kind, outcome string)
}
