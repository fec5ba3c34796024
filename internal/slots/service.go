package slots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SlotsBot_Go/internal/concurrency"
	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/jackpot"
	"github.com/osse101/SlotsBot_Go/internal/logger"
	"github.com/osse101/SlotsBot_Go/internal/metrics"
)

// ErrShuttingDown is returned for spins requested after Shutdown
var ErrShuttingDown = errors.New("slots service is shutting down")

// Ledger is the balance store spins settle against
type Ledger interface {
	Apply(userID, delta int64) (int64, bool)
	Get(userID int64) domain.Account
	RecordSpin(userID, bet, win int64)
	SetDisplayName(userID int64, name string)
}

// RateLimiter enforces the minimum interval between spins of one user
type RateLimiter interface {
	Check(ctx context.Context, userID int64, now time.Time) error
	Record(userID int64, now time.Time)
}

// Presenter shows an evaluated spin to the player before the win is
// credited. It runs while the user's spin lock is held and must not block on
// other users.
type Presenter interface {
	Present(ctx context.Context, outcome *domain.SpinOutcome) error
}

// Service defines the interface for slots operations
type Service interface {
	Spin(ctx context.Context, userID int64, displayName string, bet int64) (*domain.SpinOutcome, error)
	Balance(ctx context.Context, userID int64) domain.BalanceSummary
	JackpotPool() int64
	Shutdown(ctx context.Context) error
}

// Option configures the service
type Option func(*service)

// WithPresenter sets the display step run between evaluation and crediting
func WithPresenter(p Presenter) Option {
	return func(s *service) { s.presenter = p }
}

// WithClock replaces the wall clock used for rate limiting
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	ledger    Ledger
	limiter   RateLimiter
	pool      *jackpot.Pool
	paytable  *Paytable
	generator *Generator
	locks     *concurrency.LockManager[int64]
	presenter Presenter
	now       func() time.Time

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewService creates a new slots service. rng returns a value in [0, n) and
// must be safe for concurrent use.
func NewService(
	ledger Ledger,
	limiter RateLimiter,
	pool *jackpot.Pool,
	paytable *Paytable,
	rng func(int) int,
	opts ...Option,
) Service {
	s := &service{
		ledger:    ledger,
		limiter:   limiter,
		pool:      pool,
		paytable:  paytable,
		generator: NewGenerator(paytable, rng),
		locks:     concurrency.NewLockManager[int64](),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	metrics.JackpotPool.Set(float64(pool.Value()))
	return s
}

// Spin runs one full spin lifecycle for the user. Rejections (cooldown,
// spin in flight, insufficient funds, invalid bet) mutate nothing.
func (s *service) Spin(ctx context.Context, userID int64, displayName string, bet int64) (*domain.SpinOutcome, error) {
	log := logger.FromContext(ctx)

	if !s.enter() {
		return nil, ErrShuttingDown
	}
	defer s.wg.Done()

	if bet <= 0 {
		return nil, s.reject(ctx, userID, fmt.Errorf("%w: got %d", domain.ErrInvalidBet, bet))
	}

	now := s.now()
	if err := s.limiter.Check(ctx, userID, now); err != nil {
		return nil, s.reject(ctx, userID, err)
	}

	unlock, ok := s.locks.TryLock(userID)
	if !ok {
		return nil, s.reject(ctx, userID, domain.ErrAlreadySpinning)
	}
	defer unlock()

	// A spin that finished between the first check and the lock may have
	// just recorded its time
	if err := s.limiter.Check(ctx, userID, now); err != nil {
		return nil, s.reject(ctx, userID, err)
	}
	s.limiter.Record(userID, now)

	balance, ok := s.ledger.Apply(userID, -bet)
	if !ok {
		return nil, s.reject(ctx, userID, fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientFunds, balance, bet))
	}

	start := time.Now()
	claim := &poolClaim{pool: s.pool}
	outcome, err := s.settle(ctx, userID, displayName, bet, balance, claim)
	if err != nil {
		refunded, _ := s.ledger.Apply(userID, bet)
		metrics.JackpotPool.Set(float64(claim.revert()))
		metrics.SpinRefunds.Inc()
		log.Error(LogMsgSettlementFailed, "user_id", userID, "bet", bet, "balance", refunded, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrSettlementFailed, err)
	}

	metrics.RecordSpin(outcome, time.Since(start))
	log.Info(LogMsgSpinSettled,
		"user_id", userID,
		"spin_id", outcome.SpinID,
		"bet", bet,
		"win", outcome.WinAmount,
		"trigger", outcome.TriggerType,
		"balance", outcome.NewBalance)
	return outcome, nil
}

// settle generates, evaluates, presents and credits a debited spin. Any
// error or panic is returned so the caller can refund the bet.
func (s *service) settle(ctx context.Context, userID int64, displayName string, bet, balance int64, claim *poolClaim) (outcome *domain.SpinOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = nil
			err = fmt.Errorf("panic during settlement: %v", r)
		}
	}()

	s.ledger.SetDisplayName(userID, displayName)

	// The wager's contribution lands before evaluation, so a jackpot on
	// this spin pays it out too
	claim.wager(bet)

	grid := s.generator.Generate()
	eval := s.paytable.Evaluate(grid, bet, claim)

	outcome = &domain.SpinOutcome{
		SpinID:         uuid.New(),
		UserID:         userID,
		DisplayName:    displayName,
		Grid:           grid,
		Bet:            bet,
		WinAmount:      eval.Win,
		LineWins:       eval.LineWins,
		Jackpot:        eval.Jackpot,
		NewBalance:     balance + eval.Win,
		NewJackpotPool: s.pool.Value(),
		TriggerType:    classify(bet, eval.Win, eval.Jackpot),
	}
	if s.presenter != nil {
		if err := s.presenter.Present(ctx, outcome); err != nil {
			return nil, fmt.Errorf("failed to present spin: %w", err)
		}
	}

	if eval.Win > 0 {
		newBalance, ok := s.ledger.Apply(userID, eval.Win)
		if !ok {
			return nil, fmt.Errorf("failed to credit win of %d", eval.Win)
		}
		outcome.NewBalance = newBalance
	} else {
		outcome.NewBalance = s.ledger.Get(userID).Balance
	}
	s.ledger.RecordSpin(userID, bet, eval.Win)
	outcome.Message = formatMessage(outcome)

	if eval.Jackpot {
		logger.FromContext(ctx).Info(LogMsgJackpotPaid, "user_id", userID, "spin_id", outcome.SpinID, "win", eval.Win)
	}

	return outcome, nil
}

// poolClaim tracks what one spin took from and added to the jackpot pool so
// a failed settlement can give it back
type poolClaim struct {
	pool         *jackpot.Pool
	contribution int64
	payouts      []int64
}

func (c *poolClaim) wager(bet int64) {
	c.contribution = c.pool.Contribution(bet)
	c.pool.RecordWager(bet)
}

// PayoutAndReset pays the pool and remembers the amount
func (c *poolClaim) PayoutAndReset() int64 {
	paid := c.pool.PayoutAndReset()
	c.payouts = append(c.payouts, paid)
	return paid
}

func (c *poolClaim) revert() int64 {
	return c.pool.Revert(c.contribution, c.payouts...)
}

func (s *service) reject(ctx context.Context, userID int64, err error) error {
	reason := domain.RejectionReason(err)
	metrics.RecordRejection(reason)
	logger.FromContext(ctx).Debug(LogMsgSpinRejected, "user_id", userID, "reason", reason, "error", err)
	return err
}

// Balance returns the user's balance, stats and the current jackpot pool
func (s *service) Balance(ctx context.Context, userID int64) domain.BalanceSummary {
	acc := s.ledger.Get(userID)
	return domain.BalanceSummary{
		UserID:      userID,
		DisplayName: acc.DisplayName,
		Balance:     acc.Balance,
		Spins:       acc.Stats.Spins,
		TotalBet:    acc.Stats.TotalBet,
		TotalWin:    acc.Stats.TotalWin,
		DefaultBet:  acc.Settings.DefaultBet,
		JackpotPool: s.pool.Value(),
	}
}

// JackpotPool returns the current progressive jackpot
func (s *service) JackpotPool() int64 {
	return s.pool.Value()
}

func (s *service) enter() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// Shutdown rejects new spins and waits for in-flight ones to settle
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgServiceShutdown)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownIncomplete)
		return ctx.Err()
	}
}
