package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/SlotsBot_Go/internal/config"
	"github.com/osse101/SlotsBot_Go/internal/database"
	"github.com/osse101/SlotsBot_Go/internal/database/file"
	"github.com/osse101/SlotsBot_Go/internal/database/postgres"
	"github.com/osse101/SlotsBot_Go/internal/database/redis"
	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/handler"
	"github.com/osse101/SlotsBot_Go/internal/worker"
)

// SnapshotStore is a persistence backend that can also read back its last save
type SnapshotStore interface {
	worker.SnapshotStore
	Load(ctx context.Context) (domain.Snapshot, error)
}

// Storage is the selected backend plus its health check and cleanup
type Storage struct {
	Store SnapshotStore
	// Pinger is nil for backends without a connection to check
	Pinger handler.Pinger
	close  func()
}

// Close releases the backend's connections
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
	slog.Info(LogMsgStorageClosed, "backend", s.Store.Name())
}

type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// OpenStorage connects the backend named by cfg.StorageBackend. Postgres is
// migrated before use.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var storage *Storage

	switch cfg.StorageBackend {
	case config.StorageFile:
		storage = &Storage{Store: file.NewStore(cfg.DataFile)}

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString:      cfg.GetDBConnString(),
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		storage = &Storage{Store: postgres.NewSnapshotStore(pool), Pinger: pool, close: pool.Close}

	case config.StorageRedis:
		client, err := redis.NewClient(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.RedisKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		storage = &Storage{
			Store:  redis.NewStore(client, cfg.RedisKey),
			Pinger: redisPinger{client: client},
			close:  func() { _ = client.Close() },
		}

	default:
		return nil, fmt.Errorf("%s %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	slog.Info(LogMsgStorageSelected, "backend", storage.Store.Name())
	return storage, nil
}
