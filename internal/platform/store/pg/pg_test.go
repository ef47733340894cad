package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	kit "qanda/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ParseError(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpen_NewPoolError(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})
	if _, err := Open(context.Background(), Config{URL: "postgres://u:p@h:5432/db?sslmode=disable"}, nil, nil); err == nil {
		t.Fatalf("expected newPool error")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	kit.Serial(t)

	var seen *pgxpool.Config
	fake := &pgxpool.Pool{}
	kit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = pc
		return fake, nil
	})

	cfg := Config{URL: "postgres://u:p@h:5432/qanda?sslmode=disable", MaxConns: 7, SlowMs: 250, AppName: "qanda-load"}
	p, err := Open(context.Background(), cfg, nil, func(pc *pgxpool.Config) {
		pc.MaxConnIdleTime = 42 * time.Second
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.Pool != fake || p.SlowMs != 250 {
		t.Fatalf("PG = %+v", p)
	}
	if seen.MaxConns != 7 || seen.MaxConnIdleTime != 42*time.Second {
		t.Fatalf("pool config not applied: max=%d idle=%v", seen.MaxConns, seen.MaxConnIdleTime)
	}
	if seen.ConnConfig.RuntimeParams["application_name"] != "qanda-load" {
		t.Fatalf("application_name = %q", seen.ConnConfig.RuntimeParams["application_name"])
	}
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}
