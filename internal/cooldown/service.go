package cooldown

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// Limiter enforces a minimum interval between actions by the same user.
// Only the last action time per user is kept in memory. The table has no size
// cap: an entry leaves only when its interval has passed, never to make room.
type Limiter struct {
	action   string
	interval time.Duration
	devMode  bool
	last     *expirable.LRU[int64, time.Time]
}

// NewLimiter creates a limiter for the named action
func NewLimiter(action string, cfg Config) *Limiter {
	interval := cfg.GetInterval()
	return &Limiter{
		action:   action,
		interval: interval,
		devMode:  cfg.DevMode,
		last:     expirable.NewLRU[int64, time.Time](0, nil, interval+expiryGrace),
	}
}

// Check returns ErrOnCooldown when the user acted less than the interval before now
func (l *Limiter) Check(ctx context.Context, userID int64, now time.Time) error {
	if l.devMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", l.action, "user_id", userID)
		return nil
	}

	if remaining := l.Remaining(userID, now); remaining > 0 {
		return ErrOnCooldown{Action: l.action, Remaining: remaining}
	}
	return nil
}

// Remaining returns how long the user must still wait, or 0
func (l *Limiter) Remaining(userID int64, now time.Time) time.Duration {
	last, ok := l.last.Get(userID)
	if !ok {
		return 0
	}
	if elapsed := now.Sub(last); elapsed < l.interval {
		return l.interval - elapsed
	}
	return 0
}

// Record stores now as the user's last action time
func (l *Limiter) Record(userID int64, now time.Time) {
	l.last.Add(userID, now)
}

// Reset clears a user's cooldown (admin/testing)
func (l *Limiter) Reset(ctx context.Context, userID int64) {
	l.last.Remove(userID)
	logger.FromContext(ctx).Info(LogMsgCooldownReset, "action", l.action, "user_id", userID)
}

// Interval returns the enforced minimum gap
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	rounded := time.Duration(math.Ceil(e.Remaining.Seconds())) * time.Second
	minutes := int(rounded / time.Minute)
	seconds := int((rounded % time.Minute) / time.Second)

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
