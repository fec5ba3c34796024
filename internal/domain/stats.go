package domain

// BalanceSummary is the reply to a balance query
type BalanceSummary struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Balance     int64  `json:"balance"`
	Spins       int64  `json:"spins"`
	TotalBet    int64  `json:"total_bet"`
	TotalWin    int64  `json:"total_win"`
	DefaultBet  int64  `json:"default_bet"`
	JackpotPool int64  `json:"jackpot_pool"`
}

// UserSummary is one row of the admin user list
type UserSummary struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	Balance     int64  `json:"balance"`
	Spins       int64  `json:"spins"`
	TotalBet    int64  `json:"total_bet"`
	TotalWin    int64  `json:"total_win"`
}

// UserList is the admin view of the most active accounts
type UserList struct {
	TotalUsers int           `json:"total_users"`
	TotalSpins int64         `json:"total_spins"`
	Users      []UserSummary `json:"users"`
}

// SystemStats aggregates every account plus the jackpot pool
type SystemStats struct {
	TotalUsers   int                `json:"total_users"`
	ActiveUsers  int                `json:"active_users"`
	TotalBalance int64              `json:"total_balance"`
	TotalSpins   int64              `json:"total_spins"`
	TotalWagered int64              `json:"total_wagered"`
	TotalWon     int64              `json:"total_won"`
	HouseProfit  int64              `json:"house_profit"`
	JackpotPool  int64              `json:"jackpot_pool"`
	TopBalances  []LeaderboardEntry `json:"top_balances"`
}
