// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type countingSweeper struct{ calls atomic.Int32 }

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 2
}

type countingGC struct {
	calls atomic.Int32
	err   error
}

func (c *countingGC) RunGC() error {
	c.calls.Add(1)
	return c.err
}

func TestCacheJanitorService(t *testing.T) {
	sweeper := &countingSweeper{}
	svc := NewCacheJanitorService(sweeper, 10*time.Millisecond, zerolog.Nop())
	if svc.String() != "cache-janitor" {
		t.Errorf("String() = %q", svc.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if sweeper.calls.Load() < 2 {
		t.Errorf("Sweep() called %d times, want at least 2", sweeper.calls.Load())
	}
}

func TestCacheJanitorServiceDefaultInterval(t *testing.T) {
	if svc := NewCacheJanitorService(&countingSweeper{}, 0, zerolog.Nop()); svc.interval != time.Minute {
		t.Errorf("interval = %v, want 1m", svc.interval)
	}
}

func TestStoreGCService(t *testing.T) {
	tests := []struct {
		name      string
		interval  time.Duration
		gcErr     error
		wantCalls bool
	}{
		{"runs on schedule", 10 * time.Millisecond, nil, true},
		{"keeps running after GC errors", 10 * time.Millisecond, errors.New("disk full"), true},
		{"disabled", 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc := &countingGC{err: tt.gcErr}
			svc := NewStoreGCService(gc, tt.interval, zerolog.Nop())

			ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
			defer cancel()

			if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
			}
			calls := gc.calls.Load()
			if tt.wantCalls && calls < 2 {
				t.Errorf("RunGC() called %d times, want at least 2", calls)
			}
			if !tt.wantCalls && calls != 0 {
				t.Errorf("RunGC() called %d times while disabled", calls)
			}
		})
	}
}
