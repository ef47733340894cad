// Package storetest provides a scripted in-memory store.TxRunner for repo and service tests
package storetest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"qanda/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

// Call is one recorded statement
type Call struct {
	SQL  string
	Args []any
	InTx bool
}

// Fake records statements and answers them from ExecFn and QueryFn
// A nil ExecFn affects one row; a nil QueryFn returns no rows
type Fake struct {
	mu sync.Mutex

	ExecFn  func(sql string, args []any) (int64, error)
	QueryFn func(sql string, args []any) ([][]any, error)

	Calls     []Call
	Commits   int
	Rollbacks int

	inTx bool
}

// New returns an empty Fake
func New() *Fake { return &Fake{} }

func (f *Fake) record(sql string, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{SQL: sql, Args: args, InTx: f.inTx})
}

// Exec implements store.RowQuerier
func (f *Fake) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.record(sql, args)
	if f.ExecFn == nil {
		return Tag(1), nil
	}
	n, err := f.ExecFn(sql, args)
	return Tag(n), err
}

// Query implements store.RowQuerier
func (f *Fake) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.record(sql, args)
	if f.QueryFn == nil {
		return NewRows(nil), nil
	}
	data, err := f.QueryFn(sql, args)
	if err != nil {
		return nil, err
	}
	return NewRows(data), nil
}

// QueryRow implements store.RowQuerier; an empty result scans as pgx.ErrNoRows
func (f *Fake) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	rows, err := f.Query(ctx, sql, args...)
	if err != nil {
		return errRow{err}
	}
	r := rows.(*Rows)
	if !r.Next() {
		return errRow{pgx.ErrNoRows}
	}
	return r
}

// Tx implements store.TxRunner; fn runs against the same fake
func (f *Fake) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	f.mu.Lock()
	f.inTx = true
	f.mu.Unlock()

	err := fn(f)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inTx = false
	if err != nil {
		f.Rollbacks++
		return err
	}
	f.Commits++
	return nil
}

// Ping implements store.Pinger
func (f *Fake) Ping(context.Context) error { return nil }

// Statements returns recorded SQL containing substr, in order
func (f *Fake) Statements(substr string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.Calls {
		if strings.Contains(c.SQL, substr) {
			out = append(out, c)
		}
	}
	return out
}

// Tag is a store.CommandTag reporting n affected rows
type Tag int64

func (t Tag) String() string      { return fmt.Sprintf("FAKE %d", int64(t)) }
func (t Tag) RowsAffected() int64 { return int64(t) }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// Rows is an in-memory store.Rows over literal values
type Rows struct {
	data [][]any
	idx  int
}

// NewRows returns Rows that yield data in order
func NewRows(data [][]any) *Rows { return &Rows{data: data, idx: -1} }

// Next implements store.Rows
func (r *Rows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

// Err implements store.Rows
func (r *Rows) Err() error { return nil }

// Close implements store.Rows
func (r *Rows) Close() {}

// Scan assigns the current row into dest, converting between compatible kinds
func (r *Rows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("storetest: scan out of bounds")
	}
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return fmt.Errorf("storetest: scan wants %d columns, row has %d", len(dest), len(row))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || !dv.Elem().CanSet() {
			return fmt.Errorf("storetest: dest %d not settable", i)
		}
		el := dv.Elem()
		if row[i] == nil {
			el.Set(reflect.Zero(el.Type()))
			continue
		}
		val := reflect.ValueOf(row[i])
		switch {
		case val.Type().AssignableTo(el.Type()):
			el.Set(val)
		case val.Type().ConvertibleTo(el.Type()):
			el.Set(val.Convert(el.Type()))
		default:
			return fmt.Errorf("storetest: cannot scan %T into %s", row[i], el.Type())
		}
	}
	return nil
}
