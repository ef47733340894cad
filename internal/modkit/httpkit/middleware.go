package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"qanda/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// Observer receives per route request metrics; nil disables them
	Observer middleware.HTTPObserver
	CORS     middleware.CORSOptions
	// Timeout bounds each request; zero means 30s
	Timeout time.Duration
	// SlowRequest raises access log lines to warn; zero disables it
	SlowRequest time.Duration
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLogger,
		// safety
		middleware.RecoverJSON,
		middleware.NoCache(),
		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.Metrics(o.Observer),
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}
