package net_test

import (
	"context"
	"testing"

	pnet "qanda/internal/platform/net"
)

func TestWithRequestID(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequestID(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want req-123", got)
	}

	if pnet.WithRequestID(base, "") != base {
		t.Fatalf("empty id should return ctx unchanged")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID on bare ctx = %q", got)
	}
}
