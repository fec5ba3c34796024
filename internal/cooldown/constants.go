package cooldown

import "time"

// DefaultSpinInterval is the minimum gap between two spins by the same user
const DefaultSpinInterval = 5 * time.Second

// expiryGrace keeps entries past the interval so the clock comparison, not
// LRU expiry, decides borderline checks
const expiryGrace = time.Second

const (
	LogMsgDevModeBypass = "cooldown bypassed in dev mode"
	LogMsgCooldownReset = "cooldown reset"
)

// Wait messages for ErrOnCooldown
const (
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)
