// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "qanda/internal/modkit"
	"qanda/internal/modkit/httpkit"

	metahttp "qanda/internal/services/api/meta/http"
)

// ServiceName is reported by health and version
const ServiceName = "qanda-api"

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}

	// a nil TxRunner must reach the handlers as a nil interface
	var pg any
	if deps.HasPG() {
		pg = deps.PG
	}
	m.Base = modkit.NewBase(b, nil, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName:  ServiceName,
			StartedAt:    m.startedAt,
			PG:           pg,
			ReadyTimeout: deps.Cfg.Prefix("CORE_API_").MayDuration("READY_TIMEOUT", 2*time.Second),
		})
	})
	return m
}
