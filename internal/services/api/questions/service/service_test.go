package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"qanda/internal/modkit/repokit"
	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store/storetest"
	"qanda/internal/services/api/questions/domain"
	"qanda/internal/services/api/questions/repo"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	existing  map[int64]bool
	questions []repo.NewQuestion
	comments  []repo.NewComment
	insertErr error
	getErr    error
}

func (f *fakeRepo) List(context.Context) ([]domain.QuestionSummary, error) { return nil, nil }

func (f *fakeRepo) Get(_ context.Context, id int64) (domain.QuestionDetail, error) {
	if f.getErr != nil {
		return domain.QuestionDetail{}, f.getErr
	}
	if !f.existing[id] {
		return domain.QuestionDetail{}, perr.ErrNotFound
	}
	return domain.QuestionDetail{ID: id}, nil
}

func (f *fakeRepo) Exists(_ context.Context, id int64) (bool, error) { return f.existing[id], nil }

func (f *fakeRepo) Insert(_ context.Context, row repo.NewQuestion) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.questions = append(f.questions, row)
	return 7, nil
}

func (f *fakeRepo) Comments(context.Context, int64) ([]domain.Comment, error) { return nil, nil }

func (f *fakeRepo) InsertComment(_ context.Context, row repo.NewComment) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.comments = append(f.comments, row)
	return 8, nil
}

func newSvc(f *fakeRepo) (*Svc, *storetest.Fake) {
	db := storetest.New()
	s := New(db, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f }))
	s.now = func() time.Time { return time.Unix(1700000900, 0) }
	return s, db
}

func TestGet(t *testing.T) {
	s, _ := newSvc(&fakeRepo{existing: map[int64]bool{5: true}})

	q, err := s.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), q.ID)

	_, err = s.Get(context.Background(), 6)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	assert.Equal(t, "Question ID 6 not found", err.Error())
}

func TestGet_StoreFailure(t *testing.T) {
	s, _ := newSvc(&fakeRepo{getErr: &pgconn.PgError{Code: "57P03"}})
	_, err := s.Get(context.Background(), 5)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}

func TestCreate_DerivesTextAndStamps(t *testing.T) {
	f := &fakeRepo{}
	s, _ := newSvc(f)

	got, err := s.Create(context.Background(), domain.CreateQuestionInput{
		Title:  "T",
		Body:   "<b>Hi &amp; bye</b>\n<img src=x onerror=alert(1)>",
		UserID: json.Number("1"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)

	require.Len(t, f.questions, 1)
	row := f.questions[0]
	assert.Equal(t, "T", row.Title)
	assert.NotContains(t, row.HTML, "onerror")
	assert.Equal(t, "Hi & bye ", row.Text)
	assert.Equal(t, int64(1700000900), row.Creation.Unix())
	assert.Equal(t, int64(1), row.UserID)
}

func TestCreate_UnknownUser(t *testing.T) {
	f := &fakeRepo{insertErr: &pgconn.PgError{Code: "23503", TableName: "questions", ConstraintName: "questions_user_id_fkey"}}
	s, _ := newSvc(f)

	_, err := s.Create(context.Background(), domain.CreateQuestionInput{Title: "T", Body: "b", UserID: "999"})
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	assert.Equal(t, "userId 999 references no user", err.Error())
}

func TestCreate_ColumnViolationNamesField(t *testing.T) {
	f := &fakeRepo{insertErr: &pgconn.PgError{Code: "23502", TableName: "questions", ColumnName: "title"}}
	s, _ := newSvc(f)

	_, err := s.Create(context.Background(), domain.CreateQuestionInput{Body: "b", UserID: "1"})
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, "title", e.Field())
}

func TestAddComment(t *testing.T) {
	f := &fakeRepo{existing: map[int64]bool{5: true}}
	s, db := newSvc(f)

	got, err := s.AddComment(context.Background(), 5, domain.CreateCommentInput{Body: "<i>nice</i>", UserID: "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)
	assert.Equal(t, []repo.NewComment{{QuestionID: 5, HTML: "<i>nice</i>", UserID: 2}}, f.comments)
	assert.Equal(t, 1, db.Commits)

	_, err = s.AddComment(context.Background(), 6, domain.CreateCommentInput{Body: "x", UserID: "2"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	assert.Equal(t, 1, db.Rollbacks)
	assert.Len(t, f.comments, 1)
}
