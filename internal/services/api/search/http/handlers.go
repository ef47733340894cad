// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"qanda/internal/modkit/httpkit"
	svc "qanda/internal/services/api/search/service"
)

// Register mounts the search endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/", h.search)
}

type handlers struct{ svc svc.Service }

// GET /search?q=
// only an absent q is rejected; an empty q reaches the store and matches nothing
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	qs := r.URL.Query()
	if !qs.Has("q") {
		return nil, svc.ErrMissingQuery
	}
	return h.svc.Search(r.Context(), qs.Get("q"))
}
