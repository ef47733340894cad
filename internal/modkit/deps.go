// Package modkit provides module wiring and core deps
package modkit

import (
	"qanda/internal/modkit/repokit"
	"qanda/internal/platform/config"
	"qanda/internal/platform/logger"
	"qanda/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	Metrics *metrics.Registry
}

// HasPG reports whether a postgres runner was wired
func (d Deps) HasPG() bool { return d.PG != nil }
