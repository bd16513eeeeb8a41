package integration_tests

import (
	"context"
	"fmt"

	"papertrade/internal/domain"
	"papertrade/internal/repository"

	"github.com/shopspring/decimal"
)

func NewMockQuoteRepositoryForTests(prices map[string]decimal.Decimal) repository.QuoteRepository {
	return mockQuoteForTestsHandler{prices: prices}
}

type mockQuoteForTestsHandler struct {
	prices map[string]decimal.Decimal
}

func (m mockQuoteForTestsHandler) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	price, ok := m.prices[symbol]
	if !ok {
		return nil, fmt.Errorf("no quote for %s: %w", symbol, domain.ErrUnknownSymbol)
	}
	return &domain.Quote{
		Symbol: symbol,
		Name:   symbol,
		Price:  price,
	}, nil
}

func (m mockQuoteForTestsHandler) TrailingVolatility(ctx context.Context, symbol string) (*decimal.Decimal, error) {
	return nil, fmt.Errorf("no chart data for %s: %w", symbol, domain.ErrLookupFailed)
}
