package stats

// Leaderboard and listing limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	AdminUserListLimit      = 50
	SystemStatsTopBalances  = 5
)
