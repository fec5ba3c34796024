// Package ledger is the in-memory balance store.
//
// Every account has its own lock, held for the whole read-modify-write of each
// mutation, so operations on different users never contend. Balances are never
// allowed below zero.
package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

// Notifier is told after every committed mutation
type Notifier interface {
	ScheduleSave()
}

type entry struct {
	mu  sync.Mutex
	acc domain.Account
}

// Ledger holds every user's account
type Ledger struct {
	mu       sync.RWMutex
	accounts map[int64]*entry
	notifier Notifier

	cfg Config
	rng func(int) int
	now func() time.Time
}

// New creates an empty ledger. rng returns a value in [0, n) and must be safe
// for concurrent use; now is the clock used for bonus eligibility.
func New(cfg Config, rng func(int) int, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		accounts: make(map[int64]*entry),
		cfg:      cfg,
		rng:      rng,
		now:      now,
	}
}

// SetNotifier registers the save scheduler. Call before serving traffic.
func (l *Ledger) SetNotifier(n Notifier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notifier = n
}

func (l *Ledger) notify() {
	l.mu.RLock()
	n := l.notifier
	l.mu.RUnlock()
	if n != nil {
		n.ScheduleSave()
	}
}

// getOrCreate returns the user's entry, creating it with the initial balance
func (l *Ledger) getOrCreate(userID int64) *entry {
	l.mu.RLock()
	e, ok := l.accounts[userID]
	l.mu.RUnlock()
	if ok {
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok = l.accounts[userID]; ok {
		return e
	}
	e = &entry{acc: domain.Account{
		UserID:   userID,
		Balance:  l.cfg.InitialBalance,
		Settings: domain.UserSettings{DefaultBet: l.cfg.DefaultBet},
	}}
	l.accounts[userID] = e
	return e
}

func (l *Ledger) lookup(userID int64) (*entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.accounts[userID]
	return e, ok
}

// Balance returns the user's balance, creating the account if absent
func (l *Ledger) Balance(userID int64) int64 {
	e := l.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc.Balance
}

// Get returns a copy of the user's account, creating it if absent
func (l *Ledger) Get(userID int64) domain.Account {
	e := l.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc
}

// Account returns a copy of an existing account without creating one
func (l *Ledger) Account(userID int64) (domain.Account, bool) {
	e, ok := l.lookup(userID)
	if !ok {
		return domain.Account{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc, true
}

// Apply atomically adds delta to the balance. It fails without mutating
// anything when the result would be negative.
func (l *Ledger) Apply(userID, delta int64) (int64, bool) {
	e := l.getOrCreate(userID)

	e.mu.Lock()
	next := e.acc.Balance + delta
	if next < 0 {
		bal := e.acc.Balance
		e.mu.Unlock()
		return bal, false
	}
	e.acc.Balance = next
	e.mu.Unlock()

	l.notify()
	return next, true
}

// Adjust computes a delta from the current balance and applies it under the
// user's lock. The account must already exist. A delta that would take the
// balance below zero fails with ErrInsufficientFunds.
func (l *Ledger) Adjust(userID int64, fn func(balance int64) (int64, error)) (domain.AdjustResult, error) {
	e, ok := l.lookup(userID)
	if !ok {
		return domain.AdjustResult{}, fmt.Errorf("%w: %d", domain.ErrUserNotFound, userID)
	}

	e.mu.Lock()
	old := e.acc.Balance
	delta, err := fn(old)
	if err != nil {
		e.mu.Unlock()
		return domain.AdjustResult{}, err
	}
	if old+delta < 0 {
		e.mu.Unlock()
		return domain.AdjustResult{}, fmt.Errorf("%w: short by %d", domain.ErrInsufficientFunds, -(old + delta))
	}
	e.acc.Balance = old + delta
	e.mu.Unlock()

	l.notify()
	return domain.AdjustResult{UserID: userID, OldBalance: old, NewBalance: old + delta, Delta: delta}, nil
}

// CanClaimBonus reports whether the bonus interval has passed since the last claim
func (l *Ledger) CanClaimBonus(userID int64) bool {
	e := l.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return l.bonusWait(e.acc, l.now()) == 0
}

func (l *Ledger) bonusWait(acc domain.Account, now time.Time) time.Duration {
	if acc.LastBonusClaim.IsZero() {
		return 0
	}
	if elapsed := now.Sub(acc.LastBonusClaim); elapsed < l.cfg.BonusInterval {
		return l.cfg.BonusInterval - elapsed
	}
	return 0
}

// ClaimBonus checks eligibility and grants the bonus as one step under the
// user's lock, so concurrent claims cannot both succeed.
func (l *Ledger) ClaimBonus(userID int64) domain.BonusResult {
	e := l.getOrCreate(userID)
	now := l.now()

	e.mu.Lock()
	if wait := l.bonusWait(e.acc, now); wait > 0 {
		res := domain.BonusResult{
			UserID:      userID,
			NewBalance:  e.acc.Balance,
			Wait:        wait,
			WaitSeconds: int64(wait / time.Second),
			NextClaimAt: e.acc.LastBonusClaim.Add(l.cfg.BonusInterval),
		}
		e.mu.Unlock()
		return res
	}

	amount := l.cfg.BonusMin + int64(l.rng(int(l.cfg.BonusMax-l.cfg.BonusMin+1)))
	e.acc.Balance += amount
	e.acc.LastBonusClaim = now
	res := domain.BonusResult{
		UserID:      userID,
		Granted:     true,
		Amount:      amount,
		NewBalance:  e.acc.Balance,
		NextClaimAt: now.Add(l.cfg.BonusInterval),
	}
	e.mu.Unlock()

	l.notify()
	return res
}

// RecordSpin adds one settled spin to the user's statistics
func (l *Ledger) RecordSpin(userID, bet, win int64) {
	e := l.getOrCreate(userID)
	e.mu.Lock()
	e.acc.Stats.Spins++
	e.acc.Stats.TotalBet += bet
	e.acc.Stats.TotalWin += win
	e.mu.Unlock()

	l.notify()
}

// SetDisplayName records the name the user was last seen with
func (l *Ledger) SetDisplayName(userID int64, name string) {
	if name == "" {
		return
	}
	e := l.getOrCreate(userID)
	e.mu.Lock()
	changed := e.acc.DisplayName != name
	e.acc.DisplayName = name
	e.mu.Unlock()

	if changed {
		l.notify()
	}
}

// SetDefaultBet stores the user's preferred bet
func (l *Ledger) SetDefaultBet(userID, bet int64) {
	e := l.getOrCreate(userID)
	e.mu.Lock()
	e.acc.Settings.DefaultBet = bet
	e.mu.Unlock()

	l.notify()
}

// DefaultBet returns the user's preferred bet, falling back to the configured default
func (l *Ledger) DefaultBet(userID int64) int64 {
	e := l.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.acc.Settings.DefaultBet > 0 {
		return e.acc.Settings.DefaultBet
	}
	return l.cfg.DefaultBet
}

// Accounts returns a copy of every account ordered by user id
func (l *Ledger) Accounts() []domain.Account {
	l.mu.RLock()
	entries := make([]*entry, 0, len(l.accounts))
	for _, e := range l.accounts {
		entries = append(entries, e)
	}
	l.mu.RUnlock()

	out := make([]domain.Account, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.acc)
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// Snapshot returns the persisted form of every account
func (l *Ledger) Snapshot() domain.Snapshot {
	accounts := l.Accounts()
	snap := make(domain.Snapshot, len(accounts))
	for _, acc := range accounts {
		snap[acc.UserID] = acc.ToRecord()
	}
	return snap
}

// Restore replaces the ledger contents with a loaded snapshot.
// It does not schedule a save.
func (l *Ledger) Restore(snap domain.Snapshot) {
	accounts := make(map[int64]*entry, len(snap))
	for userID, rec := range snap {
		acc := domain.AccountFromRecord(userID, rec)
		if acc.Balance < 0 {
			acc.Balance = 0
		}
		if acc.Settings.DefaultBet <= 0 {
			acc.Settings.DefaultBet = l.cfg.DefaultBet
		}
		accounts[userID] = &entry{acc: acc}
	}

	l.mu.Lock()
	l.accounts = accounts
	l.mu.Unlock()
}

// Len returns the number of accounts
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}
