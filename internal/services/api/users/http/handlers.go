// Package http provides http transport for users
package http

import (
	stdhttp "net/http"

	"qanda/internal/modkit/httpkit"
	svc "qanda/internal/services/api/users/service"
)

// Register mounts users endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/", h.list)
	httpkit.GetJSON(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// GET /users
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// GET /users/{id}
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}
