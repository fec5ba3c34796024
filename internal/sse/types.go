package sse

import (
	"github.com/google/uuid"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

// SpinPayload is the feed view of a settled spin
type SpinPayload struct {
	SpinID      uuid.UUID `json:"spin_id"`
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Rows        []string  `json:"rows"`
	Bet         int64     `json:"bet"`
	Win         int64     `json:"win"`
	Trigger     string    `json:"trigger"`
	JackpotPool int64     `json:"jackpot_pool"`
}

// JackpotPayload announces a jackpot hit
type JackpotPayload struct {
	SpinID      uuid.UUID `json:"spin_id"`
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Win         int64     `json:"win"`
}

func newSpinPayload(o *domain.SpinOutcome) SpinPayload {
	return SpinPayload{
		SpinID:      o.SpinID,
		UserID:      o.UserID,
		DisplayName: o.DisplayName,
		Rows:        o.Grid.Rows(),
		Bet:         o.Bet,
		Win:         o.WinAmount,
		Trigger:     o.TriggerType,
		JackpotPool: o.NewJackpotPool,
	}
}
