package domain

import "github.com/shopspring/decimal"

type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
	// Volatility is the sample stdev of daily returns over the trailing
	// month, as a percent. Nil when chart data was unavailable.
	Volatility *decimal.Decimal
}
