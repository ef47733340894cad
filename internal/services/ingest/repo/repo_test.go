package repo

import (
	"context"
	"strings"
	"testing"

	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store/storetest"
	"qanda/internal/services/ingest/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserExists(t *testing.T) {
	db := storetest.New()
	db.QueryFn = func(sql string, args []any) ([][]any, error) {
		return [][]any{{args[0].(int64) == 7}}, nil
	}
	r := NewPG().Bind(db)

	ok, err := r.UserExists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.UserExists(context.Background(), 8)
	require.NoError(t, err)
	assert.False(t, ok)

	require.Len(t, db.Statements("FROM users WHERE id = $1"), 2)
}

func TestInserts_SQLAndArgs(t *testing.T) {
	db := storetest.New()
	r := NewPG().Bind(db)
	ctx := context.Background()

	require.NoError(t, r.InsertUser(ctx, domain.User{ID: 1, Name: "Alice"}))
	require.NoError(t, r.InsertQuestion(ctx, domain.QuestionRow{
		ID: 5, Title: "T", HTML: "<p>hello</p>", Text: "hello", Creation: 1700000000, Score: 3, UserID: 1,
	}))
	require.NoError(t, r.InsertQuestionComment(ctx, domain.CommentRow{ID: 10, ParentID: 5, HTML: "c", UserID: 1}))
	require.NoError(t, r.InsertAnswer(ctx, domain.AnswerRow{
		ID: 20, QuestionID: 5, HTML: "a", Text: "a", Creation: 1700000100, Score: 2, UserID: 1, Accepted: true,
	}))
	require.NoError(t, r.InsertAnswerComment(ctx, domain.CommentRow{ID: 30, ParentID: 20, HTML: "ac", UserID: 1}))

	require.Len(t, db.Calls, 5)
	assert.Equal(t, []any{int64(1), "Alice"}, db.Calls[0].Args)

	q := db.Statements("INSERT INTO questions")
	require.Len(t, q, 1)
	assert.Contains(t, q[0].SQL, "to_timestamp($5)")
	assert.Equal(t, []any{int64(5), "T", "<p>hello</p>", "hello", int64(1700000000), 3, int64(1)}, q[0].Args)

	a := db.Statements("INSERT INTO answers")
	require.Len(t, a, 1)
	assert.Equal(t, true, a[0].Args[7])

	assert.Len(t, db.Statements("INSERT INTO q_comments"), 1)
	assert.Len(t, db.Statements("INSERT INTO a_comments"), 1)
}

func TestInsert_MapsPostgresErrors(t *testing.T) {
	db := storetest.New()
	r := NewPG().Bind(db)
	ctx := context.Background()

	db.ExecFn = func(string, []any) (int64, error) {
		return 0, &pgconn.PgError{Code: "23505", TableName: "questions", ConstraintName: "questions_pkey"}
	}
	err := r.InsertQuestion(ctx, domain.QuestionRow{ID: 5, UserID: 1})
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDuplicateKey))
	assert.True(t, strings.HasPrefix(err.Error(), "insert question 5"))

	db.ExecFn = func(string, []any) (int64, error) {
		return 0, &pgconn.PgError{Code: "23503", TableName: "answers", ConstraintName: "answers_question_id_fkey"}
	}
	err = r.InsertAnswer(ctx, domain.AnswerRow{ID: 20, QuestionID: 99, UserID: 1})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, "question_id", e.Field())

	db.ExecFn = func(string, []any) (int64, error) { return 0, nil }
	err = r.InsertUser(ctx, domain.User{ID: 1, Name: "A"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB), "zero rows affected is a db error")
}

func TestSyncIdentities(t *testing.T) {
	db := storetest.New()
	require.NoError(t, NewPG().Bind(db).SyncIdentities(context.Background()))

	require.Len(t, db.Calls, len(identityTables))
	for i, tbl := range identityTables {
		assert.Contains(t, db.Calls[i].SQL, "pg_get_serial_sequence('"+tbl+"', 'id')")
		assert.Contains(t, db.Calls[i].SQL, "FROM "+tbl)
	}
}
