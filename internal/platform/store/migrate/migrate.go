// Package migrate applies the embedded Postgres schema
package migrate

import (
	"context"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/logger"
	"qanda/internal/platform/store"
)

//go:embed sql/*.sql
var files embed.FS

const ensureVersionTable = `CREATE TABLE IF NOT EXISTS schema_version (
	version    INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Step is one numbered schema file
type Step struct {
	Version int
	Name    string
	SQL     string
}

// Steps returns the embedded steps ordered by version
// File names follow NNNN_name.sql
func Steps() ([]Step, error) {
	return load(files, "sql")
}

func load(fsys fs.FS, dir string) ([]Step, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(entries))
	seen := map[int]string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		base := strings.TrimSuffix(e.Name(), ".sql")
		num, name, ok := strings.Cut(base, "_")
		if !ok {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "migration %q: want NNNN_name.sql", e.Name())
		}
		v, err := strconv.Atoi(num)
		if err != nil || v <= 0 {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "migration %q: bad version", e.Name())
		}
		if prev, dup := seen[v]; dup {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "migration version %d used by %q and %q", v, prev, e.Name())
		}
		seen[v] = e.Name()

		body, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Version: v, Name: name, SQL: string(body)})
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].Version < steps[j].Version })
	return steps, nil
}

// Apply runs every step not yet recorded in schema_version, each in its own transaction
// It returns the number of steps applied; a second call is a no-op
func Apply(ctx context.Context, db store.TxRunner) (int, error) {
	steps, err := Steps()
	if err != nil {
		return 0, err
	}
	return apply(ctx, db, steps)
}

func apply(ctx context.Context, db store.TxRunner, steps []Step) (int, error) {
	log := logger.Named("migrate")

	if _, err := db.Exec(ctx, ensureVersionTable); err != nil {
		return 0, perr.FromPostgres(err, "create schema_version")
	}

	applied := 0
	for _, st := range steps {
		done, err := store.Scalar[bool](ctx, db, `SELECT EXISTS (SELECT 1 FROM schema_version WHERE version = $1)`, st.Version)
		if err != nil {
			return applied, perr.FromPostgresf(err, "check migration %d", st.Version)
		}
		if done {
			log.Debug().Int("version", st.Version).Str("name", st.Name).Msg("already applied")
			continue
		}

		err = store.InTx(ctx, db, func(ctx context.Context, q store.RowQuerier) error {
			if _, err := q.Exec(ctx, st.SQL); err != nil {
				return err
			}
			return store.ExecOne(ctx, q, `INSERT INTO schema_version (version, name) VALUES ($1, $2)`, st.Version, st.Name)
		})
		if err != nil {
			return applied, perr.FromPostgresf(err, "apply migration %d_%s", st.Version, st.Name)
		}
		log.Info().Int("version", st.Version).Str("name", st.Name).Msg("applied")
		applied++
	}
	return applied, nil
}
