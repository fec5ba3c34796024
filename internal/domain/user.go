package domain

import "time"

// SpinStats holds cumulative per-user gameplay totals
type SpinStats struct {
	Spins    int64 `json:"spins"`
	TotalBet int64 `json:"total_bet"`
	TotalWin int64 `json:"total_win"`
}

// UserSettings holds per-user preferences
type UserSettings struct {
	DefaultBet int64 `json:"default_bet"`
}

// Account is a point-in-time copy of a user's ledger entry.
// LastBonusClaim is the zero time when the bonus was never claimed.
type Account struct {
	UserID         int64
	Balance        int64
	LastBonusClaim time.Time
	Stats          SpinStats
	DisplayName    string
	Settings       UserSettings
}

// AccountRecord is the persisted form of an Account
type AccountRecord struct {
	Balance        int64        `json:"balance"`
	LastBonusClaim string       `json:"last_bonus_claim"`
	Stats          SpinStats    `json:"stats"`
	DisplayName    string       `json:"display_name"`
	Settings       UserSettings `json:"settings"`
}

// Snapshot maps user id to the persisted account record.
// The jackpot pool is intentionally not part of it.
type Snapshot map[int64]AccountRecord

// BonusTimeLayout is the ISO-8601 layout used for last_bonus_claim
const BonusTimeLayout = time.RFC3339Nano

// ToRecord converts the account into its persisted form
func (a Account) ToRecord() AccountRecord {
	rec := AccountRecord{
		Balance:     a.Balance,
		Stats:       a.Stats,
		DisplayName: a.DisplayName,
		Settings:    a.Settings,
	}
	if !a.LastBonusClaim.IsZero() {
		rec.LastBonusClaim = a.LastBonusClaim.Format(BonusTimeLayout)
	}
	return rec
}

// AccountFromRecord rebuilds an account from its persisted form.
// An empty or unparsable last_bonus_claim is read as "never".
func AccountFromRecord(userID int64, rec AccountRecord) Account {
	acc := Account{
		UserID:      userID,
		Balance:     rec.Balance,
		Stats:       rec.Stats,
		DisplayName: rec.DisplayName,
		Settings:    rec.Settings,
	}
	if rec.LastBonusClaim != "" {
		if t, err := time.Parse(BonusTimeLayout, rec.LastBonusClaim); err == nil {
			acc.LastBonusClaim = t
		}
	}
	return acc
}

// LeaderboardEntry is one row of the balance leaderboard
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	Balance     int64  `json:"balance"`
}

// BonusResult is the outcome of a daily bonus claim.
// When Granted is false, Wait holds the time until the next claim.
type BonusResult struct {
	UserID      int64         `json:"user_id"`
	Granted     bool          `json:"granted"`
	Amount      int64         `json:"amount"`
	NewBalance  int64         `json:"new_balance"`
	Wait        time.Duration `json:"-"`
	WaitSeconds int64         `json:"wait_seconds,omitempty"`
	NextClaimAt time.Time     `json:"next_claim_at"`
}

// AdjustResult is the outcome of an admin balance adjustment
type AdjustResult struct {
	UserID     int64 `json:"user_id"`
	OldBalance int64 `json:"old_balance"`
	NewBalance int64 `json:"new_balance"`
	Delta      int64 `json:"delta"`
}
