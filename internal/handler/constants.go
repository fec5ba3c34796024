package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidUserID      = "Invalid user ID"
	ErrMsgInvalidLimit       = "Invalid limit parameter"
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgSaveFailed         = "Failed to write snapshot"
)

// User-facing messages derived from domain errors
const (
	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgInvalidBetError        = "Bet must be a positive number of credits"
	ErrMsgNotEnoughCreditsError  = "Not enough credits for that bet"
	ErrMsgAlreadySpinningError   = "Your previous spin is still in progress"
	ErrMsgOnCooldownError        = "You're spinning too fast. Try again shortly"
	ErrMsgSettlementFailedError  = "The spin failed and your bet was refunded"
	ErrMsgInvalidDefaultBetError = "Default bet must be one of 1, 5, 10, 25, 50 or 100"
	ErrMsgInvalidAdjustmentError = "Invalid balance adjustment"
	ErrMsgUnavailableError       = "Server is shutting down. Please try again later."
	ErrMsgInvalidRequestError    = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgSettingsUpdated  = "Settings updated"
	MsgSnapshotWritten  = "Snapshot written"
	MsgBonusNotReadyFmt = "Daily bonus already claimed. Next claim in %s"
	MsgBonusGrantedFmt  = "You received %d credits!"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Invalid request"
	LogMsgSpinFailed       = "Spin failed"
	LogMsgAdjustFailed     = "Admin balance adjustment failed"
	LogMsgManualSaveFailed = "Manual save failed"
	LogMsgAdminAdjusted    = "Admin adjusted balance"
)

// Leaderboard query
const (
	QueryParamLimit = "limit"
	URLParamUserID  = "userID"
)

// HeaderRetryAfter tells clients when a rate-limited spin may be retried
const HeaderRetryAfter = "Retry-After"
