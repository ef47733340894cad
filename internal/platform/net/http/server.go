package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"qanda/internal/platform/config"
	"qanda/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps a chi mux and a stdlib http.Server
type Server struct {
	addr            string
	mux             *chi.Mux
	srv             *stdhttp.Server
	shutdownTimeout time.Duration
}

// NewServer builds a server listening on cfg PORT (default :3000)
// opts receive the *chi.Mux so callers can mount routes and middleware
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayPort("PORT", 3000)
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.MayDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}
}

// Router returns a Router facade over the server mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Dur("timeout", s.shutdownTimeout).Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		log.Info().Msg("http stopped")
		return nil
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
