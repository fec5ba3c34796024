package ledger

import "time"

// Account defaults
const (
	DefaultInitialBalance int64 = 1000
	DefaultBet            int64 = 10
	DefaultBonusMin       int64 = 50
	DefaultBonusMax       int64 = 200
	DefaultBonusInterval        = 24 * time.Hour
)

// Config holds the ledger's account defaults and bonus rules
type Config struct {
	InitialBalance int64
	DefaultBet     int64
	BonusMin       int64
	BonusMax       int64
	BonusInterval  time.Duration
}

// DefaultConfig returns the standard account rules
func DefaultConfig() Config {
	return Config{
		InitialBalance: DefaultInitialBalance,
		DefaultBet:     DefaultBet,
		BonusMin:       DefaultBonusMin,
		BonusMax:       DefaultBonusMax,
		BonusInterval:  DefaultBonusInterval,
	}
}
