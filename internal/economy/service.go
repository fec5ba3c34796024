package economy

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
	"github.com/osse101/SlotsBot_Go/internal/metrics"
)

// Ledger is the subset of the balance store used for bonuses, admin
// adjustments and bet settings
type Ledger interface {
	ClaimBonus(userID int64) domain.BonusResult
	Adjust(userID int64, fn func(balance int64) (int64, error)) (domain.AdjustResult, error)
	SetDefaultBet(userID, bet int64)
	DefaultBet(userID int64) int64
}

// Service defines the interface for economy operations
type Service interface {
	ClaimDailyBonus(ctx context.Context, userID int64) (domain.BonusResult, error)
	AdminAdjustBalance(ctx context.Context, userID, amount int64) (domain.AdjustResult, error)
	SetDefaultBet(ctx context.Context, userID, bet int64) error
	DefaultBet(ctx context.Context, userID int64) int64
}

type service struct {
	ledger Ledger
}

// NewService creates a new economy service
func NewService(ledger Ledger) Service {
	return &service{ledger: ledger}
}

// ClaimDailyBonus grants the daily bonus if the interval has passed. A claim
// that is too early is not an error; the result carries the remaining wait.
func (s *service) ClaimDailyBonus(ctx context.Context, userID int64) (domain.BonusResult, error) {
	log := logger.FromContext(ctx)

	res := s.ledger.ClaimBonus(userID)
	metrics.RecordBonusClaim(res.Granted)

	if !res.Granted {
		log.Debug(LogMsgBonusNotAvailable, "user_id", userID, "wait", res.Wait)
		return res, nil
	}
	log.Info(LogMsgBonusClaimed, "user_id", userID, "amount", res.Amount, "balance", res.NewBalance)
	return res, nil
}

// AdminAdjustBalance adds amount to an existing account's balance.
// An amount of 0 resets the balance to 0. A debit larger than the balance
// fails with ErrInsufficientFunds, and a credit that would overflow the
// balance fails with ErrInvalidAdjustment. Neither changes anything.
func (s *service) AdminAdjustBalance(ctx context.Context, userID, amount int64) (domain.AdjustResult, error) {
	log := logger.FromContext(ctx)

	res, err := s.ledger.Adjust(userID, func(balance int64) (int64, error) {
		if amount == 0 {
			return -balance, nil
		}
		if amount > 0 && balance > math.MaxInt64-amount {
			return 0, fmt.Errorf("%w: crediting %d to %d overflows", domain.ErrInvalidAdjustment, amount, balance)
		}
		return amount, nil
	})
	if err != nil {
		metrics.AdminAdjustments.WithLabelValues(metrics.ResultError).Inc()
		log.Warn(LogMsgAdjustRejected, "user_id", userID, "amount", amount, "error", err)
		return domain.AdjustResult{}, fmt.Errorf("failed to adjust balance: %w", err)
	}

	metrics.AdminAdjustments.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgBalanceAdjusted, "user_id", userID, "delta", res.Delta, "old_balance", res.OldBalance, "new_balance", res.NewBalance)
	return res, nil
}

// SetDefaultBet stores the bet used when a spin does not name one
func (s *service) SetDefaultBet(ctx context.Context, userID, bet int64) error {
	if !slices.Contains(AllowedDefaultBets, bet) {
		return fmt.Errorf("%w: %d (allowed: %v)", domain.ErrInvalidDefaultBet, bet, AllowedDefaultBets)
	}
	s.ledger.SetDefaultBet(userID, bet)
	logger.FromContext(ctx).Info(LogMsgDefaultBetChanged, "user_id", userID, "bet", bet)
	return nil
}

// DefaultBet returns the user's default bet
func (s *service) DefaultBet(_ context.Context, userID int64) int64 {
	return s.ledger.DefaultBet(userID)
}
