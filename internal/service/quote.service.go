package service

import (
	"context"

	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/repository"
)

type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}

type quoteServiceHandler struct {
	QuoteRepository repository.QuoteRepository
}

func NewQuoteService(quoteRepository repository.QuoteRepository) QuoteService {
	return quoteServiceHandler{QuoteRepository: quoteRepository}
}

func (h quoteServiceHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	quote, err := h.QuoteRepository.Lookup(lookupCtx, symbol)
	if err != nil {
		return nil, err
	}

	// Volatility is decoration; a chart failure never fails the quote.
	volatility, err := h.QuoteRepository.TrailingVolatility(lookupCtx, symbol)
	if err != nil {
		logger.FromContext(ctx).Debugw("no volatility for quote", "symbol", symbol, "err", err)
	} else {
		quote.Volatility = volatility
	}

	return quote, nil
}
