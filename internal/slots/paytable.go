package slots

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/validation"
)

// SymbolSpec is one symbol's selection weight and run-length payout table
type SymbolSpec struct {
	Symbol  domain.Symbol `yaml:"symbol"`
	Weight  int           `yaml:"weight"`
	Payouts map[int]int64 `yaml:"payouts"`
}

// Paytable is the immutable symbol table shared by the reel generator and
// the payline evaluator. Build it with DefaultPaytable or LoadPaytable.
type Paytable struct {
	symbols       []SymbolSpec
	jackpotSymbol domain.Symbol
	totalWeight   int
	index         map[domain.Symbol]int
}

type paytableFile struct {
	JackpotSymbol domain.Symbol `yaml:"jackpot_symbol"`
	Symbols       []SymbolSpec  `yaml:"symbols"`
}

// DefaultPaytable returns the built-in nine-symbol table with 💰 as the jackpot symbol
func DefaultPaytable() *Paytable {
	p, err := NewPaytable(defaultSymbols, SymbolMoney)
	if err != nil {
		panic(fmt.Sprintf("built-in paytable is invalid: %v", err))
	}
	return p
}

// LoadPaytable reads a YAML paytable override from disk
func LoadPaytable(path string) (*Paytable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read paytable %s: %w", path, err)
	}

	if err := validation.NewSchemaValidator().ValidateYAML(raw, validation.SchemaPaytable); err != nil {
		return nil, fmt.Errorf("%w: paytable %s: %v", domain.ErrInvalidInput, path, err)
	}

	var file paytableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse paytable %s: %w", path, err)
	}

	p, err := NewPaytable(file.Symbols, file.JackpotSymbol)
	if err != nil {
		return nil, fmt.Errorf("invalid paytable %s: %w", path, err)
	}
	return p, nil
}

// NewPaytable validates the symbol specs and builds a paytable.
// The jackpot symbol must pay on a full line.
func NewPaytable(specs []SymbolSpec, jackpotSymbol domain.Symbol) (*Paytable, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no symbols defined", domain.ErrInvalidInput)
	}

	p := &Paytable{
		symbols:       make([]SymbolSpec, 0, len(specs)),
		jackpotSymbol: jackpotSymbol,
		index:         make(map[domain.Symbol]int, len(specs)),
	}

	for _, spec := range specs {
		if spec.Symbol == "" {
			return nil, fmt.Errorf("%w: empty symbol", domain.ErrInvalidInput)
		}
		if _, dup := p.index[spec.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", domain.ErrInvalidInput, spec.Symbol)
		}
		if spec.Weight <= 0 {
			return nil, fmt.Errorf("%w: symbol %s has non-positive weight %d", domain.ErrInvalidInput, spec.Symbol, spec.Weight)
		}

		payouts := make(map[int]int64, len(spec.Payouts))
		for run, mult := range spec.Payouts {
			if run < MinPayingRun || run > MaxPayingRun {
				return nil, fmt.Errorf("%w: symbol %s pays on run %d, want %d-%d", domain.ErrInvalidInput, spec.Symbol, run, MinPayingRun, MaxPayingRun)
			}
			if mult < 0 {
				return nil, fmt.Errorf("%w: symbol %s has negative multiplier", domain.ErrInvalidInput, spec.Symbol)
			}
			payouts[run] = mult
		}

		p.index[spec.Symbol] = len(p.symbols)
		p.symbols = append(p.symbols, SymbolSpec{Symbol: spec.Symbol, Weight: spec.Weight, Payouts: payouts})
		p.totalWeight += spec.Weight
	}

	if _, ok := p.index[jackpotSymbol]; !ok {
		return nil, fmt.Errorf("%w: jackpot symbol %q is not in the symbol table", domain.ErrInvalidInput, jackpotSymbol)
	}
	return p, nil
}

// Multiplier returns the bet multiplier for a run of the given symbol
func (p *Paytable) Multiplier(symbol domain.Symbol, run int) (int64, bool) {
	i, ok := p.index[symbol]
	if !ok {
		return 0, false
	}
	mult, ok := p.symbols[i].Payouts[run]
	return mult, ok
}

// JackpotSymbol returns the top-tier symbol
func (p *Paytable) JackpotSymbol() domain.Symbol {
	return p.jackpotSymbol
}

// Symbols returns the symbols in table order
func (p *Paytable) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(p.symbols))
	for i, s := range p.symbols {
		out[i] = s.Symbol
	}
	return out
}

// TotalWeight is the sum of all symbol weights
func (p *Paytable) TotalWeight() int {
	return p.totalWeight
}

// Probability returns the normalized selection probability of a symbol
func (p *Paytable) Probability(symbol domain.Symbol) float64 {
	i, ok := p.index[symbol]
	if !ok || p.totalWeight == 0 {
		return 0
	}
	return float64(p.symbols[i].Weight) / float64(p.totalWeight)
}

// symbolAt maps a roll in [0, TotalWeight) to a symbol by cumulative weight
func (p *Paytable) symbolAt(roll int) domain.Symbol {
	cumulative := 0
	for _, s := range p.symbols {
		cumulative += s.Weight
		if roll < cumulative {
			return s.Symbol
		}
	}
	// Unreachable for rolls in range
	return p.symbols[len(p.symbols)-1].Symbol
}
