// Package module wires users into the API using modkit
package module

import (
	modkit "qanda/internal/modkit"
	"qanda/internal/modkit/httpkit"
	usershttp "qanda/internal/services/api/users/http"
	usersrepo "qanda/internal/services/api/users/repo"
	userssvc "qanda/internal/services/api/users/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc userssvc.Service
}

// New constructs a users module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("users"), modkit.WithPrefix("/users")}, opts...)...)

	svc := userssvc.New(deps.PG, usersrepo.NewPG())
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, svc, func(r httpkit.Router) {
		usershttp.Register(r, m.svc)
	})
	return m
}
