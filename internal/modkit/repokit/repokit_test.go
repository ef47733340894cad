package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"qanda/internal/platform/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameRepo struct{ q Queryer }

func (r nameRepo) Touch(ctx context.Context) error {
	_, err := r.q.Exec(ctx, "UPDATE touch")
	return err
}

var binder = BindFunc[nameRepo](func(q Queryer) nameRepo { return nameRepo{q: q} })

func TestMustBind(t *testing.T) {
	db := storetest.New()
	r := MustBind[nameRepo](binder, db)
	require.NoError(t, r.Touch(context.Background()))
	assert.Len(t, db.Statements("UPDATE touch"), 1)

	assert.Panics(t, func() { _ = MustBind[nameRepo](binder, nil) })
}

func TestWithTx_BindsTxQueryer(t *testing.T) {
	db := storetest.New()
	err := WithTx(context.Background(), db, binder, func(r nameRepo) error {
		return r.Touch(context.Background())
	})
	require.NoError(t, err)
	calls := db.Statements("UPDATE touch")
	require.Len(t, calls, 1)
	assert.True(t, calls[0].InTx)
	assert.Equal(t, 1, db.Commits)

	boom := errors.New("boom")
	err = WithTx(context.Background(), db, binder, func(nameRepo) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, db.Rollbacks)
}

func TestWithBeginHooks(t *testing.T) {
	ctx := context.Background()
	db := storetest.New()

	assert.Same(t, db, WithBeginHooks(db).(*storetest.Fake), "no hooks returns inner")

	var order []string
	tx := WithBeginHooks(db,
		func(context.Context, Queryer) error { order = append(order, "a"); return nil },
		StatementTimeout(1500*time.Millisecond),
	)
	err := tx.Tx(ctx, func(q Queryer) error {
		order = append(order, "fn")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "fn"}, order)

	set := db.Statements("statement_timeout")
	require.Len(t, set, 1)
	assert.Equal(t, "SET LOCAL statement_timeout = 1500", set[0].SQL)
	assert.True(t, set[0].InTx)

	// pass through outside a tx
	_, err = tx.Exec(ctx, "SELECT 1")
	require.NoError(t, err)
	assert.False(t, db.Statements("SELECT 1")[0].InTx)

	hookErr := errors.New("hook failed")
	ran := false
	err = WithBeginHooks(db, func(context.Context, Queryer) error { return hookErr }).
		Tx(ctx, func(Queryer) error { ran = true; return nil })
	assert.ErrorIs(t, err, hookErr)
	assert.False(t, ran)
}

func TestStatementTimeout_ZeroIsNoop(t *testing.T) {
	db := storetest.New()
	require.NoError(t, StatementTimeout(0)(context.Background(), db))
	assert.Empty(t, db.Calls)
}
