// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	name     string
	runCount atomic.Int32
	err      error
	block    bool
}

func (m *mockWorker) Name() string { return m.name }

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{name: "w1"}
	w2 := &mockWorker{name: "w2"}
	w3 := &mockWorker{name: "w3"}

	ws := NewWorkers(logger.Nop(), w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount.Load() != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount.Load())
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	// Should not block or panic on empty workers list
	require.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_CancelledWorkersAreNotErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	blocking := &mockWorker{name: "blocking", block: true}
	ws := NewWorkers(logger.Nop(), blocking)

	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_JoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	ws := NewWorkers(logger.Nop(), &mockWorker{name: "a", err: errA}, &mockWorker{name: "ok"})
	ws.Add(&mockWorker{name: "b", err: errB})

	err := ws.Run(context.Background())
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	assert.Contains(t, err.Error(), "worker a")
}

func TestPeriodic_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	p := NewPeriodic("tick", 5*time.Millisecond, func(context.Context) error {
		if calls.Add(1) == 3 {
			cancel()
		}
		return errors.New("ignored")
	}, logger.Nop())

	assert.Equal(t, "tick", p.Name())

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}
