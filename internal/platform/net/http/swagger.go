package http

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the Swagger UI under prefix pointing at docURL when enabled
func MountSwagger(r Router, prefix, docURL string, enabled bool) {
	if !enabled {
		return
	}
	r.Handle(strings.TrimSuffix(prefix, "/")+"/*", httpSwagger.Handler(httpSwagger.URL(docURL)))
}

// ServeStatic returns a handler writing body with the given content type
func ServeStatic(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	}
}
