package domain

import (
	"sort"

	"papertrade/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

type Portfolio struct {
	Positions map[string]*Position
	Cash      decimal.Decimal
}

func NewPortfolio() *Portfolio {
	return &Portfolio{
		Positions: map[string]*Position{},
		Cash:      decimal.Zero,
	}
}

type Position struct {
	Symbol   string
	Quantity int64
	// LastPrice is the unit price of the most recent transaction touching
	// the symbol, not a live quote.
	LastPrice decimal.Decimal
}

func (p Position) MarketValue() decimal.Decimal {
	return p.LastPrice.Mul(decimal.NewFromInt(p.Quantity))
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (p Portfolio) TotalValue() decimal.Decimal {
	totalValue := p.Cash
	for _, position := range p.Positions {
		totalValue = totalValue.Add(position.MarketValue())
	}
	return totalValue
}

// PositionsFromTransactions derives net holdings from the transaction log.
// Transactions are expected most-recent-first, so the first price seen per
// symbol wins as LastPrice. Symbols that net out to zero are dropped.
func PositionsFromTransactions(transactions []model.LedgerTransaction) map[string]*Position {
	positions := map[string]*Position{}
	for _, t := range transactions {
		position, ok := positions[t.Symbol]
		if !ok {
			position = &Position{
				Symbol:    t.Symbol,
				LastPrice: t.Price,
			}
			positions[t.Symbol] = position
		}
		position.Quantity += t.Quantity
	}

	for symbol, position := range positions {
		if position.Quantity == 0 {
			delete(positions, symbol)
		}
	}

	return positions
}

// NetShares sums signed quantities for one symbol.
func NetShares(transactions []model.LedgerTransaction, symbol string) int64 {
	var net int64
	for _, t := range transactions {
		if t.Symbol == symbol {
			net += t.Quantity
		}
	}
	return net
}
