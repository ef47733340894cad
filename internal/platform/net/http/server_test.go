package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"qanda/internal/platform/config"
	phttp "qanda/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewServer_DefaultAddr(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("QANDA_TEST_NOPE_"))
	if srv.Addr() != ":3000" {
		t.Fatalf("addr = %q", srv.Addr())
	}
	if srv.Router().Mux() == nil {
		t.Fatalf("nil mux")
	}
}

func TestServer_RunAndGracefulStop(t *testing.T) {
	port := freePort(t)
	t.Setenv("QANDA_SRV_PORT", strconv.Itoa(port))

	srv := phttp.NewServer(config.New().Prefix("QANDA_SRV_"), func(m *chi.Mux) {
		m.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/ping"
	var body string
	for i := 0; i < 50; i++ {
		resp, err := http.Get(url)
		if err == nil {
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			body = string(b)
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if body != "pong" {
		t.Fatalf("server never answered, body=%q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
