// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// fakeServer blocks in ListenAndServe until Shutdown unless listenErr is set.
type fakeServer struct {
	listenErr   error
	shutdownErr error
	started     chan struct{}
	stop        chan struct{}
	stopOnce    sync.Once
	listens     atomic.Int32
	shutdowns   atomic.Int32
}

func newFakeServer() *fakeServer {
	return &fakeServer{started: make(chan struct{}, 1), stop: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	f.stopOnce.Do(func() { close(f.stop) })
	return f.shutdownErr
}

func serveAsync(ctx context.Context, svc *HTTPServerService) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return errCh
}

func TestNewHTTPServerServiceTimeout(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{30 * time.Second, 30 * time.Second},
		{0, 10 * time.Second},
		{-time.Second, 10 * time.Second},
	}
	for _, tt := range tests {
		svc := NewHTTPServerService(newFakeServer(), tt.in, zerolog.Nop())
		if svc.shutdownTimeout != tt.want {
			t.Errorf("NewHTTPServerService(%v) timeout = %v, want %v", tt.in, svc.shutdownTimeout, tt.want)
		}
	}
	if got := NewHTTPServerService(newFakeServer(), 0, zerolog.Nop()).String(); got != "http-server" {
		t.Errorf("String() = %q", got)
	}
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	server := newFakeServer()
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)

	select {
	case <-server.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if server.listens.Load() != 1 || server.shutdowns.Load() != 1 {
		t.Errorf("listens/shutdowns = %d/%d, want 1/1", server.listens.Load(), server.shutdowns.Load())
	}
}

func TestHTTPServerServiceErrors(t *testing.T) {
	t.Run("listen failure", func(t *testing.T) {
		bindErr := errors.New("bind: address already in use")
		server := newFakeServer()
		server.listenErr = bindErr

		err := NewHTTPServerService(server, time.Second, zerolog.Nop()).Serve(context.Background())
		if !errors.Is(err, bindErr) {
			t.Errorf("Serve() = %v, want wrapped bind error", err)
		}
	})

	t.Run("shutdown failure", func(t *testing.T) {
		shutdownErr := errors.New("shutdown timeout")
		server := newFakeServer()
		server.shutdownErr = shutdownErr
		svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := serveAsync(ctx, svc)
		<-server.started
		cancel()

		if err := <-errCh; !errors.Is(err, shutdownErr) {
			t.Errorf("Serve() = %v, want shutdown error", err)
		}
	})
}

func TestHTTPServerServiceUnderSupervisor(t *testing.T) {
	server := newFakeServer()
	sup := suture.New("test", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(NewHTTPServerService(server, time.Second, zerolog.Nop()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	select {
	case <-server.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
	cancel()
	<-errCh

	if server.shutdowns.Load() < 1 {
		t.Error("Shutdown was not called")
	}
}
