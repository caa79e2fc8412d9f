package schedule

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAsync(ctx context.Context, tasks ...Task) <-chan error {
	done := make(chan error, 1)
	go func() { done <- Run(ctx, tasks...) }()
	return done
}

func TestRunCallsTaskPeriodically(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := runAsync(ctx, Task{
		Name:     "draw",
		Interval: 5 * time.Millisecond,
		Run:      func() { calls.Add(1) },
	})

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWakeRunsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := NewWaker()
	ran := make(chan struct{}, 4)
	done := runAsync(ctx, Task{
		Name:     "draw",
		Interval: time.Hour,
		Run:      func() { ran <- struct{}{} },
		Wake:     w.C(),
	})

	w.Wake()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("woken task did not run")
	}
	cancel()
	assert.NoError(t, <-done)
}

func TestWakeOnlyTask(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWaker()
	var calls atomic.Int32
	done := runAsync(ctx, Task{Name: "commit", Run: func() { calls.Add(1) }, Wake: w.C()})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	w.Wake()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestWakerCoalesces(t *testing.T) {
	w := NewWaker()
	w.Wake()
	w.Wake()
	w.Wake()

	<-w.C()
	select {
	case <-w.C():
		t.Fatal("pending wakes were not coalesced")
	default:
	}
}

func TestTaskRunsDoNotOverlap(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWaker()
	var inFlight, overlap, calls atomic.Int32
	done := runAsync(ctx, Task{
		Name:     "draw",
		Interval: time.Millisecond,
		Wake:     w.C(),
		Run: func() {
			if inFlight.Add(1) > 1 {
				overlap.Add(1)
			}
			time.Sleep(200 * time.Microsecond)
			calls.Add(1)
			inFlight.Add(-1)
		},
	})
	for i := 0; i < 50; i++ {
		w.Wake()
		time.Sleep(100 * time.Microsecond)
	}
	require.Eventually(t, func() bool { return calls.Load() >= 10 }, time.Second, time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
	assert.Equal(t, int32(0), overlap.Load())
}

func TestRunRejectsBadTasks(t *testing.T) {
	noop := func() {}
	tests := []struct {
		name string
		task Task
	}{
		{"missing run", Task{Name: "a", Interval: time.Second}},
		{"negative interval", Task{Name: "b", Interval: -time.Second, Run: noop}},
		{"no trigger", Task{Name: "c", Run: noop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), tt.task)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.task.Name)
		})
	}

	err := Run(context.Background(), Task{Name: "c", Run: noop})
	assert.True(t, errors.Is(err, errNoTrigger))
}

func TestRunWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	err := Run(ctx, Task{Name: "draw", Interval: time.Millisecond, Run: func() { calls.Add(1) }})
	assert.NoError(t, err)
}
