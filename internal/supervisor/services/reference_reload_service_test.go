// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeWatcher captures the change callback so tests can fire events.
type fakeWatcher struct {
	mu       sync.Mutex
	onChange func()
	ready    chan struct{}
	stopped  atomic.Bool
	err      error
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{ready: make(chan struct{})}
}

func (f *fakeWatcher) watch(_ string, onChange func()) (func() error, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.onChange = onChange
	f.mu.Unlock()
	close(f.ready)
	return func() error {
		f.stopped.Store(true)
		return nil
	}, nil
}

func (f *fakeWatcher) fire() {
	f.mu.Lock()
	cb := f.onChange
	f.mu.Unlock()
	cb()
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestReferenceReloadServiceCoalescesEvents(t *testing.T) {
	watcher := newFakeWatcher()
	var reloads atomic.Int32
	svc := NewReferenceReloadService("reference.yaml", watcher.watch, func(context.Context) error {
		reloads.Add(1)
		return nil
	}, zerolog.Nop())
	svc.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-watcher.ready
	for i := 0; i < 5; i++ {
		watcher.fire()
	}
	waitFor(t, "first reload", func() bool { return reloads.Load() >= 1 })

	// Let any stray queued event drain before counting.
	time.Sleep(60 * time.Millisecond)
	if got := reloads.Load(); got > 2 {
		t.Errorf("reloads = %d for one burst, want at most 2", got)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if !watcher.stopped.Load() {
		t.Error("watch was not stopped on shutdown")
	}
}

func TestReferenceReloadServiceSurvivesReloadErrors(t *testing.T) {
	watcher := newFakeWatcher()
	var reloads atomic.Int32
	svc := NewReferenceReloadService("reference.yaml", watcher.watch, func(context.Context) error {
		reloads.Add(1)
		return errors.New("duplicate currency code")
	}, zerolog.Nop())
	svc.debounce = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-watcher.ready
	watcher.fire()
	waitFor(t, "first reload", func() bool { return reloads.Load() == 1 })
	watcher.fire()
	waitFor(t, "second reload", func() bool { return reloads.Load() == 2 })

	select {
	case err := <-errCh:
		t.Fatalf("Serve() returned early: %v", err)
	default:
	}
}

func TestReferenceReloadServiceWatchError(t *testing.T) {
	watchErr := errors.New("no such file")
	watcher := &fakeWatcher{err: watchErr}
	svc := NewReferenceReloadService("missing.yaml", watcher.watch, func(context.Context) error { return nil }, zerolog.Nop())

	if err := svc.Serve(context.Background()); !errors.Is(err, watchErr) {
		t.Errorf("Serve() = %v, want wrapped watch error", err)
	}
	if svc.String() != "reference-reload" {
		t.Errorf("String() = %q", svc.String())
	}
}
