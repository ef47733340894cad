// Package http provides http transport for answers
package http

import (
	stdhttp "net/http"

	"qanda/internal/modkit/httpkit"
	svc "qanda/internal/services/api/answers/service"
)

// Register mounts answers endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/", h.list)
	httpkit.GetJSON(r, "/{id}", h.get)
	httpkit.GetJSON(r, "/{id}/comments", h.comments)
}

type handlers struct{ svc svc.Service }

// GET /answers
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// GET /answers/{id}
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// GET /answers/{id}/comments
func (h *handlers) comments(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Comments(r.Context(), id)
}
