// Package module wires questions into the API using modkit
package module

import (
	modkit "qanda/internal/modkit"
	"qanda/internal/modkit/httpkit"
	answersdom "qanda/internal/services/api/answers/domain"
	questionshttp "qanda/internal/services/api/questions/http"
	questionsrepo "qanda/internal/services/api/questions/repo"
	questionssvc "qanda/internal/services/api/questions/service"
)

// Ports declares what this module consumes from other modules
type Ports struct {
	Answers answersdom.QuestionAnswersPort
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc questionssvc.Service
}

// New constructs a questions module; inject the answers port with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("questions"), modkit.WithPrefix("/questions")}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	svc := questionssvc.New(deps.PG, questionsrepo.NewPG())
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, svc, func(r httpkit.Router) {
		questionshttp.Register(r, m.svc, injected.Answers)
	})
	return m
}
