// Package module wires answers into the API using modkit
package module

import (
	modkit "qanda/internal/modkit"
	"qanda/internal/modkit/httpkit"
	answershttp "qanda/internal/services/api/answers/http"
	answersrepo "qanda/internal/services/api/answers/repo"
	answerssvc "qanda/internal/services/api/answers/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc answerssvc.Service
}

// Ports is what the answers module offers other modules
type Ports struct {
	Answers answerssvc.Service
}

// New constructs an answers module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("answers"), modkit.WithPrefix("/answers")}, opts...)...)

	svc := answerssvc.New(deps.PG, answersrepo.NewPG())
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, Ports{Answers: svc}, func(r httpkit.Router) {
		answershttp.Register(r, m.svc)
	})
	return m
}
