//go:build integration_pg

package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"qanda/internal/core/htmltext"
	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store"
	"qanda/internal/platform/store/migrate"
	"qanda/internal/platform/store/pgtest"
	"qanda/internal/services/ingest/domain"
	"qanda/internal/services/ingest/repo"
	"qanda/internal/services/ingest/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest_Postgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s, err := store.Open(ctx, store.Config{
		AppName: "qanda-ingest-test",
		PG:      store.PGConfig{Enabled: true, URL: pgtest.Start(t), MaxConns: 2, ConnectRetries: 3},
	}, store.WithLogger(zerolog.New(io.Discard)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	_, err = migrate.Apply(ctx, s.PG)
	require.NoError(t, err)

	svc := service.New(s.PG, repo.NewPG(), domain.NormalizerFunc(htmltext.ToPlainText), nil, service.Config{SyncIdentities: true})

	doc := domain.Document{Questions: []domain.Question{{
		ID: 5, Title: "T", Body: "<p>hello</p>", Creation: 1700000000, Score: 3,
		User: domain.User{ID: 1, Name: "Alice"},
		Answers: []domain.Answer{
			{ID: 20, Body: "loud", Score: 10, User: domain.User{ID: 2, Name: "Bob"}},
			{ID: 21, Body: "right", Score: 2, Accepted: true, User: domain.User{ID: 1, Name: "Renamed"},
				Comments: []domain.Comment{{ID: 30, Body: "thanks", User: domain.User{ID: 2, Name: "Bob"}}}},
		},
	}}}

	st, err := svc.Ingest(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, 2, st.UsersInserted)
	assert.Equal(t, 2, st.UsersSkipped)

	text, err := store.Scalar[string](ctx, s.PG, `SELECT text_body FROM questions WHERE id = 5`)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	epoch, err := store.Scalar[int64](ctx, s.PG, `SELECT extract(epoch FROM creation)::bigint FROM questions WHERE id = 5`)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), epoch)

	name, err := store.Scalar[string](ctx, s.PG, `SELECT name FROM users WHERE id = 1`)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	// a second run keeps users and stops at the duplicate question
	_, err = svc.Ingest(ctx, doc)
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDuplicateKey), "code = %v", perr.CodeOf(err))

	users, err := store.Scalar[int64](ctx, s.PG, `SELECT count(*) FROM users`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	// identities were moved past the loaded ids
	var next int64
	require.NoError(t, s.PG.QueryRow(ctx,
		`INSERT INTO questions (title, html_body, text_body, creation, score, user_id)
		 VALUES ('n', '', '', now(), 0, 1) RETURNING id`).Scan(&next))
	assert.Equal(t, int64(6), next)
}
