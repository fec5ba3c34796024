package metrics

import (
	"time"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

// RecordSpin records a settled spin
func RecordSpin(outcome *domain.SpinOutcome, elapsed time.Duration) {
	SpinsTotal.WithLabelValues(outcome.TriggerType).Inc()
	CreditsWagered.Add(float64(outcome.Bet))
	CreditsWon.Add(float64(outcome.WinAmount))
	if outcome.Jackpot {
		JackpotsPaid.Inc()
	}
	JackpotPool.Set(float64(outcome.NewJackpotPool))
	SpinDuration.Observe(elapsed.Seconds())
}

// RecordRejection records a spin rejected before settlement
func RecordRejection(reason string) {
	SpinRejections.WithLabelValues(reason).Inc()
}

// RecordBonusClaim records a daily bonus attempt
func RecordBonusClaim(granted bool) {
	if granted {
		BonusClaims.WithLabelValues(ResultSuccess).Inc()
		return
	}
	BonusClaims.WithLabelValues(ResultDenied).Inc()
}

// RecordSnapshotWrite records one persisted snapshot
func RecordSnapshotWrite(trigger, backend string, accounts int, elapsed time.Duration, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	SnapshotWrites.WithLabelValues(trigger, result).Inc()
	SnapshotDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
	Accounts.Set(float64(accounts))
}
