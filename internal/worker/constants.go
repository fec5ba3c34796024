package worker

import "time"

// DefaultSaveDebounce is the coalescing window for snapshot writes
const DefaultSaveDebounce = time.Second

// Worker names used in shutdown logs
const (
	SaveWorkerName = "save worker"
)

// Write triggers, used as metric and log labels
const (
	TriggerDebounce = "debounce"
	TriggerManual   = "manual"
	TriggerShutdown = "shutdown"
)

// ============================================================================
// Log Messages - Save Worker
// ============================================================================

// Log messages for save worker operations
const (
	LogMsgSaveScheduled    = "Snapshot save scheduled"
	LogMsgSnapshotWritten  = "Snapshot written"
	LogMsgSnapshotFailed   = "Snapshot write failed, state kept in memory"
	LogMsgSaveAfterClosed  = "Save requested after shutdown, ignoring"
	LogMsgFinalSaveWritten = "Final snapshot written"
)
