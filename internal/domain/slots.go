package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Grid dimensions
const (
	ReelCount   = 5
	RowsPerReel = 3
)

// Symbol is a single reel token, rendered as an emoji
type Symbol string

// Grid is a 5x3 reel matrix indexed as Grid[reel][row]
type Grid [ReelCount][RowsPerReel]Symbol

// Payline selects one row index per reel
type Payline [ReelCount]int

// Line extracts the symbols the payline passes through, left to right
func (g Grid) Line(p Payline) [ReelCount]Symbol {
	var line [ReelCount]Symbol
	for reel, row := range p {
		line[reel] = g[reel][row]
	}
	return line
}

// Rows renders the grid row by row, the way it is shown to players
func (g Grid) Rows() []string {
	rows := make([]string, RowsPerReel)
	for row := 0; row < RowsPerReel; row++ {
		var sb strings.Builder
		for reel := 0; reel < ReelCount; reel++ {
			if reel > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(string(g[reel][row]))
		}
		rows[row] = sb.String()
	}
	return rows
}

// Outcome trigger types
const (
	TriggerLoss    = "loss"
	TriggerWin     = "win"
	TriggerBigWin  = "big_win"
	TriggerJackpot = "jackpot"
)

// LineWin describes a payline that paid out
type LineWin struct {
	Line       int    `json:"line"`
	Symbol     Symbol `json:"symbol"`
	RunLength  int    `json:"run_length"`
	Multiplier int64  `json:"multiplier"`
	Amount     int64  `json:"amount"`
	Jackpot    int64  `json:"jackpot,omitempty"`
}

// SpinOutcome is the settled result of one spin lifecycle
type SpinOutcome struct {
	SpinID         uuid.UUID `json:"spin_id"`
	UserID         int64     `json:"user_id"`
	DisplayName    string    `json:"display_name"`
	Grid           Grid      `json:"grid"`
	Bet            int64     `json:"bet"`
	WinAmount      int64     `json:"win_amount"`
	LineWins       []LineWin `json:"line_wins,omitempty"`
	Jackpot        bool      `json:"jackpot"`
	NewBalance     int64     `json:"new_balance"`
	NewJackpotPool int64     `json:"new_jackpot_pool"`
	TriggerType    string    `json:"trigger_type"`
	Message        string    `json:"message"`
}
