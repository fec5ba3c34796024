package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Wager errors
	ErrMsgInvalidBet        = "bet must be positive"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAlreadySpinning   = "previous spin is still in progress"
	ErrMsgSettlementFailed  = "spin settlement failed, bet refunded"
	ErrMsgInvalidDefaultBet = "unsupported default bet"
	ErrMsgInvalidAdjustment = "invalid balance adjustment"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrInvalidBet        = errors.New(ErrMsgInvalidBet)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAlreadySpinning   = errors.New(ErrMsgAlreadySpinning)
	ErrSettlementFailed  = errors.New(ErrMsgSettlementFailed)
	ErrInvalidDefaultBet = errors.New(ErrMsgInvalidDefaultBet)
	ErrInvalidAdjustment = errors.New(ErrMsgInvalidAdjustment)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// Rejection reasons reported to the transport layer
const (
	RejectTooSoon           = "too_soon"
	RejectAlreadySpinning   = "already_spinning"
	RejectInsufficientFunds = "insufficient_funds"
	RejectInvalidBet        = "invalid_bet"
)

// RejectionReason maps a spin error to its rejection reason.
// It returns "" for errors that are not rejections.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrOnCooldown):
		return RejectTooSoon
	case errors.Is(err, ErrAlreadySpinning):
		return RejectAlreadySpinning
	case errors.Is(err, ErrInsufficientFunds):
		return RejectInsufficientFunds
	case errors.Is(err, ErrInvalidBet):
		return RejectInvalidBet
	default:
		return ""
	}
}
