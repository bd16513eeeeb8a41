package service

import (
	"context"
	"errors"
	"testing"

	"papertrade/internal/domain"
	mock_repository "papertrade/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank symbols", func(t *testing.T) {
		handler := quoteServiceHandler{}
		_, err := handler.GetQuote(ctx, " ")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("attaches trailing volatility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)

		volatility := decimal.RequireFromString("1.8")
		quoteRepository.EXPECT().
			Lookup(gomock.Any(), "AAPL").
			Return(&domain.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.NewFromInt(190)}, nil)
		quoteRepository.EXPECT().
			TrailingVolatility(gomock.Any(), "AAPL").
			Return(&volatility, nil)

		handler := quoteServiceHandler{QuoteRepository: quoteRepository}
		quote, err := handler.GetQuote(ctx, "aapl")
		require.NoError(t, err)
		require.NotNil(t, quote.Volatility)
		require.True(t, volatility.Equal(*quote.Volatility))
	})

	t.Run("returns the quote even when the chart fetch fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)

		quoteRepository.EXPECT().
			Lookup(gomock.Any(), "AAPL").
			Return(&domain.Quote{Symbol: "AAPL", Price: decimal.NewFromInt(190)}, nil)
		quoteRepository.EXPECT().
			TrailingVolatility(gomock.Any(), "AAPL").
			Return(nil, errors.New("chart unavailable"))

		handler := quoteServiceHandler{QuoteRepository: quoteRepository}
		quote, err := handler.GetQuote(ctx, "AAPL")
		require.NoError(t, err)
		require.Nil(t, quote.Volatility)
	})

	t.Run("propagates unknown symbols", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)

		quoteRepository.EXPECT().
			Lookup(gomock.Any(), "NOPE").
			Return(nil, domain.ErrUnknownSymbol)

		handler := quoteServiceHandler{QuoteRepository: quoteRepository}
		_, err := handler.GetQuote(ctx, "NOPE")
		require.ErrorIs(t, err, domain.ErrUnknownSymbol)
	})
}
