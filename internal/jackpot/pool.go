// Package jackpot holds the process-wide progressive jackpot pool.
//
// The pool is not persisted: it starts at its floor on every process start,
// while balances, bonus dates and stats survive restarts.
package jackpot

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Defaults for the progressive pool
const (
	DefaultFloor     int64   = 10000
	DefaultIncrement float64 = 0.10
)

// Pool is a progressive jackpot shared by every user's spins
type Pool struct {
	mu        sync.Mutex
	value     int64
	floor     int64
	increment decimal.Decimal
}

// NewPool creates a pool starting at floor that grows by fraction of every wager
func NewPool(floor int64, fraction float64) *Pool {
	return &Pool{
		value:     floor,
		floor:     floor,
		increment: decimal.NewFromFloat(fraction),
	}
}

// Contribution is the amount a wager adds to the pool, rounded half to even
func (p *Pool) Contribution(bet int64) int64 {
	return decimal.NewFromInt(bet).Mul(p.increment).RoundBank(0).IntPart()
}

// RecordWager grows the pool by the wager's contribution and returns the new value
func (p *Pool) RecordWager(bet int64) int64 {
	add := p.Contribution(bet)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.value += add
	return p.value
}

// PayoutAndReset returns the current pool and resets it to the floor
func (p *Pool) PayoutAndReset() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	paid := p.value
	p.value = p.floor
	return paid
}

// Revert undoes one spin's effect on the pool: its wager contribution and
// any payouts taken from it. Contributions from other spins made meanwhile
// are kept. The pool never drops below the floor.
func (p *Pool) Revert(contribution int64, payouts ...int64) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, paid := range payouts {
		p.value += paid - p.floor
	}
	p.value -= contribution
	if p.value < p.floor {
		p.value = p.floor
	}
	return p.value
}

// Value returns the current pool
func (p *Pool) Value() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Floor returns the reset value
func (p *Pool) Floor() int64 {
	return p.floor
}
