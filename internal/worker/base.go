package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// BaseWorker provides a single cancellable timer plus shutdown bookkeeping
// for background workers
type BaseWorker struct {
	mu       sync.Mutex
	timer    *time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// armTimerLocked schedules fn after d. The caller holds w.mu and must not
// have a timer armed already.
func (w *BaseWorker) armTimerLocked(d time.Duration, fn func()) {
	w.wg.Add(1)
	w.timer = time.AfterFunc(d, func() {
		defer w.wg.Done()
		fn()
	})
}

// disarmTimerLocked stops a pending timer. It reports whether the timer was
// stopped before firing. The caller holds w.mu.
func (w *BaseWorker) disarmTimerLocked() bool {
	if w.timer == nil {
		return false
	}
	stopped := w.timer.Stop()
	w.timer = nil
	if stopped {
		// The callback will never run, so release its slot here
		w.wg.Done()
	}
	return stopped
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.shutdown)
	if w.disarmTimerLocked() {
		log.Info("Cancelled pending " + workerName + " execution")
	}
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
