package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/logger"
	pnet "qanda/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RecoverJSON converts panics into the JSON 500 envelope and logs the stack
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
// A panic after the handler started its response is logged only
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if ww.Status() != 0 {
				return
			}
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, body := pnet.Error(perr.PanicErrf("internal server error"), reqID)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(ww, r)
	})
}
