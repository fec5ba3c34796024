package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the application in order:
// 1. Spin feed (end open streams so the server can drain)
// 2. HTTP server (stop accepting new requests)
// 3. Slots service (wait for in-flight spins to settle)
// 4. Save worker (cancel the debounce timer and write the final snapshot)
// 5. Storage connections
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDown)

	app.Feed.Stop()

	if err := app.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if err := app.Slots.Shutdown(ctx); err != nil {
		slog.Error(LogMsgSlotsShutdownFailed, "error", err)
	}

	if err := app.SaveWorker.Shutdown(ctx); err != nil {
		slog.Error(LogMsgFinalSaveFailed, "error", err)
	}

	app.Storage.Close()
	slog.Info(LogMsgServerStopped)
}
