package middleware

import (
	"net/http"
	"reflect"
	"time"

	"github.com/go-chi/chi/v5"
)

// HTTPObserver receives one observation per finished request
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics reports each request under its chi route pattern, keeping label cardinality bounded.
// A nil observer, including a nil pointer in the interface, disables it
func Metrics(obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if isNil(obs) {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			route := ""
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}
			obs.ObserveHTTP(r.Method, route, cw.status, time.Since(start))
		})
	}
}

func isNil(obs HTTPObserver) bool {
	if obs == nil {
		return true
	}
	v := reflect.ValueOf(obs)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Chan, reflect.Slice:
		return v.IsNil()
	}
	return false
}
