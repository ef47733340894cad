// Package module wires the ingest pipeline; it mounts no routes
package module

import (
	"qanda/internal/core/htmltext"
	"qanda/internal/modkit"
	"qanda/internal/modkit/repokit"
	"qanda/internal/services/ingest/domain"
	"qanda/internal/services/ingest/guardrails"
	"qanda/internal/services/ingest/repo"
	"qanda/internal/services/ingest/service"
)

// Ports defines the ingest module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the ingest module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs the ingest module from deps; opts come from FromConfig(deps.Cfg)
func New(deps modkit.Deps, opts Options) *Module {
	db := repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(opts.StatementTimeout))

	var counter domain.Counter
	if deps.Metrics != nil {
		counter = deps.Metrics
	}

	svc := service.New(
		db, repo.NewPG(),
		domain.NormalizerFunc(htmltext.ToPlainText),
		counter,
		service.Config{
			Timeouts: guardrails.Timeouts{
				Run:      opts.RunTimeout,
				Question: opts.QuestionTimeout,
			},
			SyncIdentities: opts.SyncIdentities,
		},
	)
	return &Module{deps: deps, opts: opts, ports: Ports{Runner: svc}}
}

// Name returns the module name
func (m *Module) Name() string { return "ingest" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Options returns the options the module was built with
func (m *Module) Options() Options { return m.opts }
