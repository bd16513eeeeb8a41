package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"papertrade/internal/domain"

	finance "github.com/piquette/finance-go"
	"github.com/stretchr/testify/require"
)

func overrideGetQuote(t *testing.T, fn func(symbol string) (*finance.Quote, error)) {
	original := getQuote
	getQuote = fn
	t.Cleanup(func() {
		getQuote = original
	})
}

func Test_Lookup(t *testing.T) {
	ctx := context.Background()
	handler := quoteRepositoryHandler{}

	t.Run("maps the provider quote", func(t *testing.T) {
		overrideGetQuote(t, func(symbol string) (*finance.Quote, error) {
			return &finance.Quote{
				Symbol:             symbol,
				ShortName:          "Apple Inc.",
				RegularMarketPrice: 190.52,
			}, nil
		})

		quote, err := handler.Lookup(ctx, "AAPL")
		require.NoError(t, err)
		require.Equal(t, "AAPL", quote.Symbol)
		require.Equal(t, "Apple Inc.", quote.Name)
		require.Equal(t, "190.52", quote.Price.String())
	})

	t.Run("falls back to the symbol when the name is blank", func(t *testing.T) {
		overrideGetQuote(t, func(symbol string) (*finance.Quote, error) {
			return &finance.Quote{Symbol: symbol, RegularMarketPrice: 12}, nil
		})

		quote, err := handler.Lookup(ctx, "BRK-B")
		require.NoError(t, err)
		require.Equal(t, "BRK-B", quote.Name)
	})

	t.Run("treats a nil quote as an unknown symbol", func(t *testing.T) {
		overrideGetQuote(t, func(symbol string) (*finance.Quote, error) {
			return nil, nil
		})

		_, err := handler.Lookup(ctx, "NOPE")
		require.ErrorIs(t, err, domain.ErrUnknownSymbol)
	})

	t.Run("treats a zero price as an unknown symbol", func(t *testing.T) {
		overrideGetQuote(t, func(symbol string) (*finance.Quote, error) {
			return &finance.Quote{Symbol: symbol}, nil
		})

		_, err := handler.Lookup(ctx, "NOPE")
		require.ErrorIs(t, err, domain.ErrUnknownSymbol)
	})

	t.Run("wraps provider errors as lookup failures", func(t *testing.T) {
		overrideGetQuote(t, func(symbol string) (*finance.Quote, error) {
			return nil, errors.New("connection reset")
		})

		_, err := handler.Lookup(ctx, "AAPL")
		require.ErrorIs(t, err, domain.ErrLookupFailed)
	})

	t.Run("gives up when the context expires", func(t *testing.T) {
		overrideGetQuote(t, func(symbol string) (*finance.Quote, error) {
			time.Sleep(time.Second)
			return &finance.Quote{Symbol: symbol, RegularMarketPrice: 1}, nil
		})

		timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := handler.Lookup(timeoutCtx, "AAPL")
		require.ErrorIs(t, err, domain.ErrLookupFailed)
	})
}

func Test_dailyReturns(t *testing.T) {
	t.Run("computes close-to-close percent moves", func(t *testing.T) {
		returns := dailyReturns([]float64{100, 110, 99})
		require.Len(t, returns, 2)
		require.InDelta(t, 10.0, returns[0], 1e-9)
		require.InDelta(t, -10.0, returns[1], 1e-9)
	})

	t.Run("skips zero closes", func(t *testing.T) {
		returns := dailyReturns([]float64{0, 100, 110})
		require.Len(t, returns, 1)
		require.InDelta(t, 10.0, returns[0], 1e-9)
	})

	t.Run("handles short series", func(t *testing.T) {
		require.Empty(t, dailyReturns(nil))
		require.Empty(t, dailyReturns([]float64{42}))
	})
}
