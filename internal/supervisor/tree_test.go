// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// countingService runs until canceled, failing its first failFirst starts.
type countingService struct {
	name      string
	failFirst int32
	starts    atomic.Int32
}

func (s *countingService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.failFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *countingService) String() string { return s.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func waitForStarts(t *testing.T, svc *countingService, want int32) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for svc.starts.Load() < want {
		select {
		case <-deadline:
			t.Fatalf("%s started %d times, want at least %d", svc.name, svc.starts.Load(), want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNewSupervisorTreeDefaults(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("Root() = nil")
	}
	if got, want := tree.Config(), DefaultTreeConfig(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
}

func TestNewSupervisorTreeNilLogger(t *testing.T) {
	tree, err := NewSupervisorTree(nil, TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewSupervisorTree(nil) error = %v", err)
	}
	if tree.Config().ShutdownTimeout != time.Second {
		t.Errorf("ShutdownTimeout = %v, want 1s", tree.Config().ShutdownTimeout)
	}
}

func TestSupervisorTreeStartsEveryLayer(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

	data := &countingService{name: "data"}
	background := &countingService{name: "background"}
	api := &countingService{name: "api"}
	tree.AddDataService(data)
	tree.AddBackgroundService(background)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for _, svc := range []*countingService{data, background, api} {
		waitForStarts(t, svc, 1)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree stopped with %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down")
	}
}

func TestSupervisorTreeRestartsFailingBackgroundService(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := &countingService{name: "flaky", failFirst: 2}
	api := &countingService{name: "api"}
	tree.AddBackgroundService(flaky)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitForStarts(t, flaky, 3)
	if got := api.starts.Load(); got != 1 {
		t.Errorf("api service started %d times, want 1", got)
	}

	cancel()
	<-errCh
}

func TestSupervisorTreeRemoveBackgroundService(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

	svc := &countingService{name: "reload"}
	token := tree.AddBackgroundService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitForStarts(t, svc, 1)
	if err := tree.RemoveBackgroundService(token); err != nil {
		t.Errorf("RemoveBackgroundService() error = %v", err)
	}

	cancel()
	<-errCh
	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestDefaultTreeConfig(t *testing.T) {
	cfg := DefaultTreeConfig()
	if cfg.FailureThreshold != 5 || cfg.FailureDecay != 30 {
		t.Errorf("threshold/decay = %v/%v, want 5/30", cfg.FailureThreshold, cfg.FailureDecay)
	}
	if cfg.FailureBackoff != 15*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("backoff/timeout = %v/%v, want 15s/10s", cfg.FailureBackoff, cfg.ShutdownTimeout)
	}
}
