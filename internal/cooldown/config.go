package cooldown

import "time"

// Config holds spin rate limiter configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Interval is the minimum time between two spins by the same user
	Interval time.Duration
}

// GetInterval returns the configured interval or the default
func (c *Config) GetInterval() time.Duration {
	if c.Interval > 0 {
		return c.Interval
	}
	return DefaultSpinInterval
}
