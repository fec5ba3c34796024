package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/SlotsBot_Go/internal/config"
	"github.com/osse101/SlotsBot_Go/internal/cooldown"
	"github.com/osse101/SlotsBot_Go/internal/economy"
	"github.com/osse101/SlotsBot_Go/internal/jackpot"
	"github.com/osse101/SlotsBot_Go/internal/ledger"
	"github.com/osse101/SlotsBot_Go/internal/server"
	"github.com/osse101/SlotsBot_Go/internal/slots"
	"github.com/osse101/SlotsBot_Go/internal/sse"
	"github.com/osse101/SlotsBot_Go/internal/stats"
	"github.com/osse101/SlotsBot_Go/internal/utils"
	"github.com/osse101/SlotsBot_Go/internal/worker"
)

// App is the fully wired application
type App struct {
	Server     *server.Server
	Services   server.Services
	Ledger     *ledger.Ledger
	Slots      slots.Service
	Feed       *sse.Hub
	SaveWorker *worker.SaveWorker
	Storage    *Storage
}

// LoadPaytable returns the YAML paytable at cfg.PaytablePath, or the
// built-in one when no path is set
func LoadPaytable(cfg *config.Config) (*slots.Paytable, error) {
	if cfg.PaytablePath == "" {
		slog.Info(LogMsgDefaultPaytable)
		return slots.DefaultPaytable(), nil
	}
	p, err := slots.LoadPaytable(cfg.PaytablePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPaytable, err)
	}
	slog.Info(LogMsgPaytableLoaded, "path", cfg.PaytablePath)
	return p, nil
}

// Build wires every component on top of an opened storage backend and
// restores the saved accounts into the ledger
func Build(ctx context.Context, cfg *config.Config, storage *Storage) (*App, error) {
	paytable, err := LoadPaytable(cfg)
	if err != nil {
		return nil, err
	}

	l := ledger.New(ledger.Config{
		InitialBalance: cfg.InitialBalance,
		DefaultBet:     cfg.DefaultBet,
		BonusMin:       cfg.BonusMin,
		BonusMax:       cfg.BonusMax,
		BonusInterval:  cfg.BonusInterval,
	}, utils.SecureIntn, time.Now)

	snap, err := storage.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadState, err)
	}
	// Restore before the notifier is attached so loading does not schedule a save
	l.Restore(snap)
	slog.Info(LogMsgStateRestored, "accounts", len(snap), "backend", storage.Store.Name())

	saveWorker := worker.NewSaveWorker(l, storage.Store, cfg.SaveDebounce)
	l.SetNotifier(saveWorker)

	pool := jackpot.NewPool(cfg.JackpotFloor, cfg.JackpotIncrement)
	limiter := cooldown.NewLimiter(slots.ActionSpin, cooldown.Config{
		DevMode:  cfg.DevMode,
		Interval: cfg.SpinMinInterval,
	})
	feed := sse.NewHub()
	feed.Start()
	slotsSvc := slots.NewService(l, limiter, pool, paytable, utils.SecureIntn,
		slots.WithPresenter(sse.NewPresenter(feed)))

	services := server.Services{
		Slots:   slotsSvc,
		Economy: economy.NewService(l),
		Stats:   stats.NewService(l, pool),
		Flusher: saveWorker,
		Storage: storage.Pinger,
		Feed:    feed,
	}

	srv := server.NewServer(server.Config{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		Version:     cfg.Version,
		CORSOrigins: cfg.CORSOrigins,
	}, services)

	return &App{
		Server:     srv,
		Services:   services,
		Ledger:     l,
		Slots:      slotsSvc,
		Feed:       feed,
		SaveWorker: saveWorker,
		Storage:    storage,
	}, nil
}
