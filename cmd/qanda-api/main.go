package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"qanda/internal/core/version"
	"qanda/internal/platform/config"
	"qanda/internal/platform/logger"
	"qanda/internal/platform/metrics"
	phttp "qanda/internal/platform/net/http"
	"qanda/internal/platform/store"

	"qanda/internal/services/api"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logger.Get().Fatal().Err(err).Msg("load .env")
	}

	root := config.New()
	// service-scoped config for HTTP (CORE_API_*)
	apiCfg := root.Prefix("CORE_API_")

	l := logger.Get()
	l.Info().Str("build", version.Info("qanda-api").String()).Msg("starting")

	pgCfg, err := store.PGFromEnv(root)
	if err != nil {
		l.Fatal().Err(err).Msg("postgres config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{AppName: "qanda-api", PG: pgCfg}, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
		l.Info().Msg("store closed")
	}()

	// http server (reads CORE_API_PORT, default :3000)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Metrics:        metrics.New(),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		return
	}
	l.Info().Msg("shutdown complete")
}
