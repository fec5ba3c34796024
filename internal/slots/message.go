package slots

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

var printer = message.NewPrinter(language.English)

// headline upper-cases a trigger label. Casers are stateful, so one is made per call.
func headline(trigger string) string {
	return cases.Upper(language.English).String(strings.ReplaceAll(trigger, "_", " "))
}

// classify labels a settled spin
func classify(bet, win int64, jackpot bool) string {
	switch {
	case jackpot:
		return domain.TriggerJackpot
	case win > bet*BigWinMultiplier:
		return domain.TriggerBigWin
	case win > 0:
		return domain.TriggerWin
	default:
		return domain.TriggerLoss
	}
}

// formatMessage creates a user-facing message for the result, with amounts
// grouped by thousands
func formatMessage(outcome *domain.SpinOutcome) string {
	var sb strings.Builder
	for _, row := range outcome.Grid.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	switch outcome.TriggerType {
	case domain.TriggerJackpot:
		sb.WriteString(printer.Sprintf("💰 %s! 💰 You won %d credits!", headline(domain.TriggerJackpot), outcome.WinAmount))
	case domain.TriggerBigWin:
		sb.WriteString(printer.Sprintf("🎉 %s! You won %d credits!", headline(domain.TriggerBigWin), outcome.WinAmount))
	case domain.TriggerWin:
		sb.WriteString(printer.Sprintf("You won %d credits (net %+d).", outcome.WinAmount, outcome.WinAmount-outcome.Bet))
	default:
		sb.WriteString(printer.Sprintf("No luck! You lost %d credits.", outcome.Bet))
	}

	sb.WriteString(printer.Sprintf("\nBalance: %d · Jackpot: %d", outcome.NewBalance, outcome.NewJackpotPool))
	return sb.String()
}
