// Package api composes the HTTP API modules
package api

import (
	"strings"
	"time"

	"qanda/internal/platform/config"
	"qanda/internal/platform/logger"
	"qanda/internal/platform/metrics"
	phttp "qanda/internal/platform/net/http"
	"qanda/internal/platform/net/middleware"
	"qanda/internal/platform/store"

	"qanda/internal/modkit"
	"qanda/internal/modkit/httpkit"
	"qanda/internal/modkit/module"
	"qanda/internal/modkit/swaggerkit"

	answersmod "qanda/internal/services/api/answers/module"
	metamod "qanda/internal/services/api/meta/module"
	questionsmod "qanda/internal/services/api/questions/module"
	searchmod "qanda/internal/services/api/search/module"
	usersmod "qanda/internal/services/api/users/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Store   *store.Store
	Logger  *logger.Logger
	Metrics *metrics.Registry

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// answers first so questions can serve /questions/{id}/answers through its port
	answers := answersmod.New(deps)
	questions := questionsmod.New(deps, modkit.WithPorts(questionsmod.Ports{
		Answers: module.MustPortsOf[answersmod.Ports](answers).Answers,
	}))

	mods := []module.Module{
		metamod.New(deps),
		questions,
		answers,
		usersmod.New(deps),
		searchmod.New(deps),
	}
	module.Register(mods...)

	apiCfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.StackOptions{
		CORS:        middleware.CORSOptions{AllowedOrigins: corsOrigins(apiCfg.MayString("CORS_ORIGINS", ""))},
		Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 0),
	}
	if opt.Metrics != nil {
		stack.Observer = opt.Metrics
	}
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
}

// corsOrigins splits a comma separated origin list; empty means any origin
func corsOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
