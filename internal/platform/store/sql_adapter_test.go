package store

import (
	"context"
	"errors"
	"testing"

	"qanda/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recTracer struct{ events []pg.QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { r.events = append(r.events, ev) }

type fakeRow struct{ err error }

func (r fakeRow) Scan(...any) error { return r.err }

// emptyRows is a pgx.Rows with no data
type emptyRows struct{ closed bool }

func (r *emptyRows) Close()                                       { r.closed = true }
func (r *emptyRows) Err() error                                   { return nil }
func (r *emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT 0") }
func (r *emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *emptyRows) Next() bool                                   { return false }
func (r *emptyRows) Scan(...any) error                            { return errors.New("no row") }
func (r *emptyRows) Values() ([]any, error)                       { return nil, nil }
func (r *emptyRows) RawValues() [][]byte                          { return nil }
func (r *emptyRows) Conn() *pgx.Conn                              { return nil }

type fakeQuerier struct {
	execErr  error
	queryErr error
	rowErr   error
}

func (f fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &emptyRows{}, nil
}

func (f fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return fakeRow{err: f.rowErr} }

func TestTraced_Exec(t *testing.T) {
	rec := &recTracer{}
	q := traced{q: fakeQuerier{}, tracer: rec}

	tag, err := q.Exec(context.Background(), "INSERT INTO users VALUES ($1, $2)", 1, "ada")
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if tag.RowsAffected() != 1 {
		t.Fatalf("RowsAffected = %d", tag.RowsAffected())
	}
	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.SQL != "INSERT INTO users VALUES ($1, $2)" || len(ev.Args) != 2 || ev.Err != nil {
		t.Fatalf("event = %+v", ev)
	}
}

func TestTraced_QueryError(t *testing.T) {
	rec := &recTracer{}
	boom := errors.New("boom")
	q := traced{q: fakeQuerier{queryErr: boom}, tracer: rec}

	rows, err := q.Query(context.Background(), "SELECT 1")
	if !errors.Is(err, boom) || rows != nil {
		t.Fatalf("Query = %v, %v", rows, err)
	}
	if len(rec.events) != 1 || !errors.Is(rec.events[0].Err, boom) {
		t.Fatalf("events = %+v", rec.events)
	}
}

func TestTraced_QueryRowDefersUntilScan(t *testing.T) {
	rec := &recTracer{}
	q := traced{q: fakeQuerier{rowErr: pgx.ErrNoRows}, tracer: rec}

	r := q.QueryRow(context.Background(), "SELECT name FROM users WHERE id = $1", 1)
	if len(rec.events) != 0 {
		t.Fatal("event emitted before Scan")
	}
	if err := r.Scan(); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("Scan = %v", err)
	}
	if len(rec.events) != 1 || rec.events[0].Err != nil {
		t.Fatalf("no-rows should trace as success: %+v", rec.events)
	}
}

func TestTraced_SlowFlag(t *testing.T) {
	rec := &recTracer{}
	// any elapsed time is >= 0ms, so a threshold of zero disables the flag
	q := traced{q: fakeQuerier{}, tracer: rec, slowMs: 0}
	_, _ = q.Exec(context.Background(), "SELECT 1")
	if rec.events[0].Slow {
		t.Fatal("slow flag set with threshold disabled")
	}
}

func TestTraced_NilTracer(t *testing.T) {
	q := traced{q: fakeQuerier{}}
	if _, err := q.Exec(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	rows, err := q.Query(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	rows.Close()
}

func TestPGAdapter_NilPing(t *testing.T) {
	var a *pgAdapter
	if err := a.Ping(context.Background()); err == nil {
		t.Fatal("Ping on nil adapter should fail")
	}
}
