package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeService struct {
	name     string
	startErr error
	stopErr  error
	block    bool
	stopped  atomic.Bool
	returned atomic.Bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	defer s.returned.Store(true)
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return s.stopErr
}

func TestRunnerReturnsStartErrorAndStops(t *testing.T) {
	svc := &fakeService{name: "http", startErr: errors.New("listen failed")}

	err := NewRunner(svc).Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "listen failed" {
		t.Fatalf("expected start error, got %v", err)
	}
	if !svc.stopped.Load() {
		t.Fatalf("service should be stopped after start failure")
	}
}

func TestRunnerCancelledContextReturnsNil(t *testing.T) {
	svc := &fakeService{name: "http", block: true}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if err := NewRunner(svc).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancelled run should return nil, got %v", err)
	}
	if !svc.stopped.Load() {
		t.Fatalf("service should be stopped")
	}
	if !svc.returned.Load() {
		t.Fatalf("run should wait for Start to return")
	}
}

func TestRunnerReportsStopError(t *testing.T) {
	svc := &fakeService{name: "http", block: true, stopErr: errors.New("shutdown timed out")}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner(svc).Run(ctx, time.Second, nil)
	if err == nil || err.Error() != "shutdown timed out" {
		t.Fatalf("expected stop error, got %v", err)
	}
}

func TestRunnerWithoutService(t *testing.T) {
	if err := NewRunner(nil).Run(context.Background(), time.Second, nil); !errors.Is(err, errNoService) {
		t.Fatalf("expected errNoService, got %v", err)
	}
	if err := RunWithOptions(nil, Options{}); err == nil {
		t.Fatalf("expected error for nil runner")
	}
}

func TestBuildRunnerRequiresContainer(t *testing.T) {
	if _, err := BuildRunner(nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
