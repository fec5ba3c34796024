package slots

import "github.com/osse101/SlotsBot_Go/internal/domain"

// Symbol constants, ordered from most to least common
const (
	SymbolCherry  domain.Symbol = "🍒"
	SymbolLemon   domain.Symbol = "🍋"
	SymbolOrange  domain.Symbol = "🍊"
	SymbolGrape   domain.Symbol = "🍇"
	SymbolBanana  domain.Symbol = "🍌"
	SymbolStar    domain.Symbol = "⭐"
	SymbolDiamond domain.Symbol = "💎"
	SymbolSeven   domain.Symbol = "7️⃣"
	SymbolMoney   domain.Symbol = "💰"
)

// Run lengths that can pay on a payline
const (
	MinPayingRun = 3
	MaxPayingRun = domain.ReelCount
)

// BigWinMultiplier marks a win above bet*10 as a big win
const BigWinMultiplier = 10

// Paylines are the three rows plus the V and inverted-V diagonals
var Paylines = [...]domain.Payline{
	{0, 0, 0, 0, 0},
	{1, 1, 1, 1, 1},
	{2, 2, 2, 2, 2},
	{0, 1, 2, 1, 0},
	{2, 1, 0, 1, 2},
}

// defaultSymbols is the built-in symbol table.
// Weights are relative (they sum to 94, not 100).
var defaultSymbols = []SymbolSpec{
	{Symbol: SymbolCherry, Weight: 18, Payouts: map[int]int64{3: 2, 4: 5, 5: 10}},
	{Symbol: SymbolLemon, Weight: 16, Payouts: map[int]int64{3: 3, 4: 8, 5: 15}},
	{Symbol: SymbolOrange, Weight: 14, Payouts: map[int]int64{3: 4, 4: 10, 5: 20}},
	{Symbol: SymbolGrape, Weight: 12, Payouts: map[int]int64{3: 5, 4: 15, 5: 30}},
	{Symbol: SymbolBanana, Weight: 10, Payouts: map[int]int64{3: 8, 4: 20, 5: 50}},
	{Symbol: SymbolStar, Weight: 8, Payouts: map[int]int64{3: 10, 4: 25, 5: 75}},
	{Symbol: SymbolDiamond, Weight: 7, Payouts: map[int]int64{3: 15, 4: 40, 5: 100}},
	{Symbol: SymbolSeven, Weight: 6, Payouts: map[int]int64{3: 20, 4: 50, 5: 150}},
	{Symbol: SymbolMoney, Weight: 3, Payouts: map[int]int64{3: 50, 4: 200, 5: 1000}},
}

// Engagement/log constants
const (
	ActionSpin = "spin"

	LogMsgSpinRejected       = "Spin rejected"
	LogMsgSpinSettled        = "Spin settled"
	LogMsgSettlementFailed   = "Spin settlement failed, refunding bet"
	LogMsgJackpotPaid        = "Jackpot paid out"
	LogMsgPaytableLoaded     = "Paytable loaded"
	LogMsgServiceShutdown    = "Slots service shutting down"
	LogMsgShutdownIncomplete = "Slots service shutdown timed out with spins in flight"
)
