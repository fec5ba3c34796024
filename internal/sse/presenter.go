package sse

import (
	"context"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// Presenter publishes evaluated spins to the feed before they are credited
type Presenter struct {
	hub *Hub
}

// NewPresenter creates a presenter broadcasting on hub
func NewPresenter(hub *Hub) *Presenter {
	return &Presenter{hub: hub}
}

// Present broadcasts the spin, plus a jackpot announcement when it hit one.
// A full feed drops the event; the spin itself still settles.
func (p *Presenter) Present(ctx context.Context, outcome *domain.SpinOutcome) error {
	p.hub.Broadcast(EventTypeSpin, newSpinPayload(outcome))

	if outcome.Jackpot {
		p.hub.Broadcast(EventTypeJackpot, JackpotPayload{
			SpinID:      outcome.SpinID,
			UserID:      outcome.UserID,
			DisplayName: outcome.DisplayName,
			Win:         outcome.WinAmount,
		})
	}

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"spin_id", outcome.SpinID,
		"trigger", outcome.TriggerType,
		"clients", p.hub.ClientCount())
	return nil
}
