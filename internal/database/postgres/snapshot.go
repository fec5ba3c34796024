// Package postgres stores ledger snapshots in PostgreSQL, one row per account.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// SnapshotStore upserts every account of a snapshot in one transaction
type SnapshotStore struct {
	db *pgxpool.Pool
}

// NewSnapshotStore creates a new SnapshotStore. The schema must already be
// migrated.
func NewSnapshotStore(db *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Name implements worker.SnapshotStore
func (s *SnapshotStore) Name() string {
	return BackendName
}

// Save writes the snapshot. Either every account lands or none does.
func (s *SnapshotStore) Save(ctx context.Context, snap domain.Snapshot) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for userID, rec := range snap {
		batch.Queue(upsertAccountQuery,
			userID,
			rec.Balance,
			bonusTime(rec.LastBonusClaim),
			rec.Stats.Spins,
			rec.Stats.TotalBet,
			rec.Stats.TotalWin,
			rec.DisplayName,
			rec.Settings.DefaultBet,
		)
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertAccount, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

// Load reads every stored account
func (s *SnapshotStore) Load(ctx context.Context) (domain.Snapshot, error) {
	rows, err := s.db.Query(ctx, selectAccountsQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAccounts, err)
	}
	defer rows.Close()

	snap := make(domain.Snapshot)
	for rows.Next() {
		var (
			userID    int64
			rec       domain.AccountRecord
			lastBonus *time.Time
		)
		if err := rows.Scan(
			&userID,
			&rec.Balance,
			&lastBonus,
			&rec.Stats.Spins,
			&rec.Stats.TotalBet,
			&rec.Stats.TotalWin,
			&rec.DisplayName,
			&rec.Settings.DefaultBet,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanAccount, err)
		}
		if lastBonus != nil {
			rec.LastBonusClaim = lastBonus.UTC().Format(domain.BonusTimeLayout)
		}
		snap[userID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAccounts, err)
	}
	return snap, nil
}

// bonusTime maps the persisted ISO string to a nullable timestamp
func bonusTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(domain.BonusTimeLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
