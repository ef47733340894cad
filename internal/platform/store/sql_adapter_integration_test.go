//go:build integration_pg

package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/store/pgtest"

	"github.com/rs/zerolog"
)

func TestPGAdapter_Integration(t *testing.T) {
	dsn := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, err := Open(ctx, Config{
		AppName: "qanda-test",
		PG:      PGConfig{Enabled: true, URL: dsn, MaxConns: 2, LogSQL: true, ConnectRetries: 3},
	}, WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}

	db := s.PG
	if _, err := db.Exec(ctx, `CREATE TABLE adapter_t (id BIGINT PRIMARY KEY, name TEXT NOT NULL)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := ExecOne(ctx, db, `INSERT INTO adapter_t VALUES ($1, $2)`, 1, "ada"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	name, err := Scalar[string](ctx, db, `SELECT name FROM adapter_t WHERE id = $1`, 1)
	if err != nil || name != "ada" {
		t.Fatalf("Scalar = %q, %v", name, err)
	}

	// rolled back on error
	boom := errors.New("boom")
	err = db.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO adapter_t VALUES ($1, $2)`, 2, "bob"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Tx = %v", err)
	}
	n, err := Scalar[int64](ctx, db, `SELECT count(*) FROM adapter_t`)
	if err != nil || n != 1 {
		t.Fatalf("count after rollback = %d, %v", n, err)
	}

	// duplicate key surfaces as a pg error that maps to a coded error
	err = db.Tx(ctx, func(q RowQuerier) error {
		return ExecOne(ctx, q, `INSERT INTO adapter_t VALUES ($1, $2)`, 1, "again")
	})
	if !perr.IsDuplicateKey(err) {
		t.Fatalf("want duplicate key, got %v", err)
	}
	if got := perr.FromPostgres(err, "insert"); !perr.IsCode(got, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("mapped code = %v", perr.CodeOf(got))
	}

	if _, err := Scalar[string](ctx, db, `SELECT name FROM adapter_t WHERE id = $1`, 99); !ErrNoRows(err) {
		t.Fatalf("missing row = %v", err)
	}
}
