package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"qanda/internal/platform/logger"
	pnet "qanda/internal/platform/net"
	"qanda/internal/platform/net/middleware"
)

func TestAccessLogZerolog_PassThrough(t *testing.T) {
	for _, slow := range []time.Duration{0, time.Nanosecond} {
		mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: slow})
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, "ok")
		})
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
		if rr.Code != http.StatusCreated || rr.Body.String() != "ok" {
			t.Fatalf("slow=%v: got %d %q", slow, rr.Code, rr.Body.String())
		}
	}
}

func TestRequestLogger_SetsLoggerContext(t *testing.T) {
	var seen string
	h := middleware.RequestID()(middleware.RequestLogger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
		// the logger context must not break request scoped logging
		logger.C(r.Context()).Debug().Msg("inside")
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "rid-9" {
		t.Fatalf("request id = %q", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "rid-9" {
		t.Fatalf("echoed request id = %q", got)
	}
}

func TestRecoverJSON(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequestID(req.Context(), "rid-p"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") != "rid-p" {
		t.Fatalf("request id header missing")
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"status_code":500`) || !strings.Contains(body, `"error":"internal server error"`) {
		t.Fatalf("body = %s", body)
	}
	if strings.Contains(body, "kaboom") {
		t.Fatalf("panic value leaked to client: %s", body)
	}
}

func TestRecoverJSON_AbortHandlerRepanics(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	defer func() {
		if r := recover(); r != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler, got %v", r)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
