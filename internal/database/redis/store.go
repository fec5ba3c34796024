// Package redis stores ledger snapshots in a Redis hash, one field per user
// holding the JSON-encoded account record.
package redis

import (
	"context"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// BackendName identifies this store in logs and metrics
const BackendName = "redis"

// DefaultKey is the hash holding every account
const DefaultKey = "slots:accounts"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config holds connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// Store keeps the snapshot in one hash and replaces it in a MULTI/EXEC block
type Store struct {
	client *goredis.Client
	key    string
}

// NewClient opens a client and verifies the connection
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}
	logger.FromContext(ctx).Info("Connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}

// NewStore creates a store writing to key. An empty key uses DefaultKey.
func NewStore(client *goredis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// Name implements worker.SnapshotStore
func (s *Store) Name() string {
	return BackendName
}

// Save replaces the hash contents with the snapshot atomically
func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	fields := make(map[string]any, len(snap))
	for userID, rec := range snap {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode account %d: %w", userID, err)
		}
		fields[strconv.FormatInt(userID, 10)] = data
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(fields) > 0 {
			pipe.HSet(ctx, s.key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write snapshot to %s: %w", s.key, err)
	}
	return nil
}

// Load reads every account in the hash. A missing key is an empty snapshot.
func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot from %s: %w", s.key, err)
	}

	snap := make(domain.Snapshot, len(values))
	for field, raw := range values {
		userID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q in %s: %w", field, s.key, err)
		}
		var rec domain.AccountRecord
		if err := json.UnmarshalFromString(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode account %d: %w", userID, err)
		}
		snap[userID] = rec
	}
	return snap, nil
}
