package slots

import "github.com/osse101/SlotsBot_Go/internal/domain"

// Generator draws reel grids from a paytable's weight distribution
type Generator struct {
	paytable *Paytable
	rng      func(int) int // must be safe for concurrent use
}

// NewGenerator creates a reel generator. rng returns a value in [0, n).
func NewGenerator(paytable *Paytable, rng func(int) int) *Generator {
	return &Generator{paytable: paytable, rng: rng}
}

// Generate samples every cell independently, with replacement
func (g *Generator) Generate() domain.Grid {
	var grid domain.Grid
	for reel := 0; reel < domain.ReelCount; reel++ {
		for row := 0; row < domain.RowsPerReel; row++ {
			grid[reel][row] = g.selectWeightedSymbol()
		}
	}
	return grid
}

// selectWeightedSymbol performs weighted random selection of a symbol
func (g *Generator) selectWeightedSymbol() domain.Symbol {
	return g.paytable.symbolAt(g.rng(g.paytable.TotalWeight()))
}
