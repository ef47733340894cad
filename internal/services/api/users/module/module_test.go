package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	modkit "qanda/internal/modkit"
	phttp "qanda/internal/platform/net/http"
	"qanda/internal/platform/store/storetest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, db *storetest.Fake, path string) (int, map[string]any) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	New(modkit.Deps{PG: db}).MountRoutes(r)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestUsers_NonNumericIDNeverQueries(t *testing.T) {
	db := storetest.New()
	code, body := serve(t, db, "/users/abc")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "id parameter must be numeric", body["error"])
	assert.Equal(t, "id", body["field"])
	assert.Empty(t, db.Calls)
}

func TestUsers_AbsentIsNotFound(t *testing.T) {
	db := storetest.New()
	code, body := serve(t, db, "/users/999999")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User ID 999999 not found", body["error"])
	require.Len(t, db.Calls, 1)
	assert.Contains(t, db.Calls[0].SQL, "deleted = false")
	assert.Equal(t, []any{int64(999999)}, db.Calls[0].Args)
}

func TestUsers_ListAndGet(t *testing.T) {
	db := storetest.New()
	db.QueryFn = func(sql string, args []any) ([][]any, error) {
		if len(args) == 1 {
			return [][]any{{args[0], "Alice"}}, nil
		}
		return [][]any{{int64(1), "Alice"}, {int64(2), "Bob"}}, nil
	}

	code, body := serve(t, db, "/users")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body["data"], 2)

	code, body = serve(t, db, "/users/1")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Alice"}, body["data"])
}

func TestUsers_ModuleIdentity(t *testing.T) {
	m := New(modkit.Deps{PG: storetest.New()})
	assert.Equal(t, "users", m.Name())
	assert.NotNil(t, m.Ports())
}
