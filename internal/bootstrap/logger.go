package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/SlotsBot_Go/internal/config"
	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// SetupLogger installs the process-wide logger from the app configuration
// and logs the startup banner. Source locations are added in development.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	l := logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		logger.IsDevelopment(cfg.Environment),
	), w)

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingSlotsBot,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageBackend)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"spin_min_interval", cfg.SpinMinInterval,
		"save_debounce", cfg.SaveDebounce,
		"jackpot_floor", cfg.JackpotFloor)

	for _, warning := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "detail", warning)
	}
	return l
}
