package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
	"github.com/osse101/SlotsBot_Go/internal/metrics"
)

// SnapshotSource produces the current state to persist
type SnapshotSource interface {
	Snapshot() domain.Snapshot
}

// SnapshotStore durably writes a snapshot
type SnapshotStore interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Name() string
}

// SaveWorker coalesces save requests into at most one write per debounce
// window. The snapshot is taken when the window closes, so every write
// reflects the latest state. A failed write is logged and the in-memory state
// stays authoritative until the next save.
type SaveWorker struct {
	BaseWorker
	source   SnapshotSource
	store    SnapshotStore
	debounce time.Duration

	// generation identifies the armed timer; guarded by mu
	generation uint64

	// writeMu serializes writes so a manual flush and a timer flush never
	// overlap at the store
	writeMu sync.Mutex
	writes  int
}

// NewSaveWorker creates a save worker
func NewSaveWorker(source SnapshotSource, store SnapshotStore, debounce time.Duration) *SaveWorker {
	if debounce <= 0 {
		debounce = DefaultSaveDebounce
	}
	w := &SaveWorker{
		source:   source,
		store:    store,
		debounce: debounce,
	}
	w.init()
	return w
}

// ScheduleSave requests a write within the debounce window. Requests made
// while a write is already pending are absorbed by it.
func (w *SaveWorker) ScheduleSave() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		logger.FromContext(context.Background()).Debug(LogMsgSaveAfterClosed)
		return
	}
	if w.timer != nil {
		return
	}

	metrics.SnapshotScheduled.Inc()
	w.generation++
	gen := w.generation
	w.armTimerLocked(w.debounce, func() {
		w.mu.Lock()
		if w.generation == gen {
			w.timer = nil
		}
		w.mu.Unlock()
		_ = w.write(context.Background(), TriggerDebounce)
	})
	logger.FromContext(context.Background()).Debug(LogMsgSaveScheduled, "debounce", w.debounce)
}

// Pending reports whether a debounced write is waiting to fire
func (w *SaveWorker) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer != nil
}

// Flush cancels any pending debounced write and writes immediately
func (w *SaveWorker) Flush(ctx context.Context) error {
	w.mu.Lock()
	w.disarmTimerLocked()
	w.mu.Unlock()

	return w.write(ctx, TriggerManual)
}

// Shutdown stops scheduling, waits for an in-flight write, then writes the
// final state synchronously
func (w *SaveWorker) Shutdown(ctx context.Context) error {
	if err := w.shutdownInternal(ctx, SaveWorkerName); err != nil {
		return err
	}
	if err := w.write(ctx, TriggerShutdown); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgFinalSaveWritten)
	return nil
}

// Writes returns how many writes were attempted
func (w *SaveWorker) Writes() int {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return w.writes
}

func (w *SaveWorker) write(ctx context.Context, trigger string) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	log := logger.FromContext(ctx)
	snap := w.source.Snapshot()

	start := time.Now()
	err := w.store.Save(ctx, snap)
	elapsed := time.Since(start)
	w.writes++

	metrics.RecordSnapshotWrite(trigger, w.store.Name(), len(snap), elapsed, err)
	if err != nil {
		log.Error(LogMsgSnapshotFailed, "trigger", trigger, "backend", w.store.Name(), "error", err)
		return err
	}
	log.Debug(LogMsgSnapshotWritten, "trigger", trigger, "accounts", len(snap), "duration", elapsed)
	return nil
}
