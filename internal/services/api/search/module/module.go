// Package module wires search into the API using modkit
package module

import (
	modkit "qanda/internal/modkit"
	"qanda/internal/modkit/httpkit"
	searchhttp "qanda/internal/services/api/search/http"
	searchrepo "qanda/internal/services/api/search/repo"
	searchsvc "qanda/internal/services/api/search/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc searchsvc.Service
}

// New constructs a search module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("search"), modkit.WithPrefix("/search")}, opts...)...)

	svc := searchsvc.New(deps.PG, searchrepo.NewPG())
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, svc, func(r httpkit.Router) {
		searchhttp.Register(r, m.svc)
	})
	return m
}
