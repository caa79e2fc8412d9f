// Package schedule runs periodic tasks that can also be woken early.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

var errNoTrigger = errors.New("task has neither an interval nor a wake channel")

// Task is one periodic job. Run is called every Interval and additionally
// whenever Wake delivers. A wake restarts the interval so a woken task does
// not run twice back to back. Interval zero means the task only runs when
// woken.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func()
	Wake     <-chan struct{}
}

// Run drives every task on its own goroutine until ctx is cancelled. Calls of
// one task never overlap. It returns nil after cancellation, or the first
// configuration error.
func Run(ctx context.Context, tasks ...Task) error {
	for _, t := range tasks {
		if err := t.validate(); err != nil {
			return err
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			t.loop(ctx)
			return nil
		})
	}
	return g.Wait()
}

func (t Task) validate() error {
	if t.Run == nil {
		return fmt.Errorf("task %q: missing Run", t.Name)
	}
	if t.Interval < 0 {
		return fmt.Errorf("task %q: negative interval %v", t.Name, t.Interval)
	}
	if t.Interval == 0 && t.Wake == nil {
		return fmt.Errorf("task %q: %w", t.Name, errNoTrigger)
	}
	return nil
}

func (t Task) loop(ctx context.Context) {
	var tick <-chan time.Time
	var timer *time.Timer
	if t.Interval > 0 {
		timer = time.NewTimer(t.Interval)
		defer timer.Stop()
		tick = timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			t.Run()
			timer.Reset(t.Interval)
		case <-t.Wake:
			t.Run()
			if timer != nil {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(t.Interval)
			}
		}
	}
}

// Waker coalesces wake-up requests into a single pending signal. Wake never
// blocks, so input handlers can call it freely.
type Waker struct {
	ch chan struct{}
}

// NewWaker returns a Waker with no pending signal.
func NewWaker() *Waker {
	return &Waker{ch: make(chan struct{}, 1)}
}

// Wake requests a run. Requests made while one is pending are dropped.
func (w *Waker) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// C is the channel to use as Task.Wake.
func (w *Waker) C() <-chan struct{} { return w.ch }
