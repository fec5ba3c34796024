package economy

// AllowedDefaultBets are the bets a user may pick as their default
var AllowedDefaultBets = []int64{1, 5, 10, 25, 50, 100}

// Log messages
const (
	LogMsgBonusClaimed      = "Daily bonus claimed"
	LogMsgBonusNotAvailable = "Daily bonus not yet available"
	LogMsgBalanceAdjusted   = "Admin balance adjustment applied"
	LogMsgAdjustRejected    = "Admin balance adjustment rejected"
	LogMsgDefaultBetChanged = "Default bet changed"
)
