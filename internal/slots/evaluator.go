package slots

import "github.com/osse101/SlotsBot_Go/internal/domain"

// JackpotSource pays out the progressive pool and resets it to its floor
type JackpotSource interface {
	PayoutAndReset() int64
}

// Evaluation is the payout of one grid at one bet
type Evaluation struct {
	Win      int64
	LineWins []domain.LineWin
	Jackpot  bool
}

// Evaluate scores every payline independently and sums the wins.
// A full line of the jackpot symbol also pays the pool, which is reset.
// When several lines hit the jackpot in one spin, each pays whatever the
// pool holds at that moment.
func (p *Paytable) Evaluate(grid domain.Grid, bet int64, jackpot JackpotSource) Evaluation {
	var eval Evaluation

	for i, payline := range Paylines {
		symbol, run := longestRun(grid.Line(payline))
		if run < MinPayingRun {
			continue
		}

		mult, _ := p.Multiplier(symbol, run)
		isJackpot := symbol == p.jackpotSymbol && run == MaxPayingRun
		if mult == 0 && !isJackpot {
			continue
		}

		win := domain.LineWin{
			Line:       i,
			Symbol:     symbol,
			RunLength:  run,
			Multiplier: mult,
			Amount:     bet * mult,
		}

		if isJackpot {
			if jackpot != nil {
				win.Jackpot = jackpot.PayoutAndReset()
			}
			eval.Jackpot = true
		}

		eval.Win += win.Amount + win.Jackpot
		eval.LineWins = append(eval.LineWins, win)
	}

	return eval
}

// longestRun finds the longest run of consecutive equal symbols.
// The run may start anywhere on the line. On equal lengths the later run wins.
func longestRun(line [domain.ReelCount]domain.Symbol) (domain.Symbol, int) {
	best, current := 1, 1
	symbol := line[0]

	for i := 1; i < len(line); i++ {
		if line[i] == line[i-1] {
			current++
		} else {
			current = 1
		}
		if current >= best {
			best = current
			symbol = line[i]
		}
	}
	return symbol, best
}
