package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stocklens/internal/config"
)

func TestNewHTTPServiceAppliesServerConfig(t *testing.T) {
	svc := NewHTTPService(config.ServerConfig{
		Host:                     "127.0.0.1",
		Port:                     "9000",
		ReadHeaderTimeoutSeconds: 5,
		WriteTimeoutSeconds:      0,
		IdleTimeoutSeconds:       30,
	}, http.NotFoundHandler())

	if svc.server.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr want 127.0.0.1:9000 got %s", svc.server.Addr)
	}
	if svc.server.ReadHeaderTimeout != 5*time.Second || svc.server.IdleTimeout != 30*time.Second {
		t.Fatalf("unexpected timeouts: %+v", svc.server)
	}
	if svc.server.WriteTimeout != 0 {
		t.Fatalf("zero write timeout should stay unlimited, got %s", svc.server.WriteTimeout)
	}
}

func TestRunnerShutsDownHTTPService(t *testing.T) {
	svc := NewHTTPService(config.ServerConfig{Host: "127.0.0.1", Port: "0"}, http.NotFoundHandler())
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	if err := NewRunner(svc).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("graceful shutdown should return nil, got %v", err)
	}
}
