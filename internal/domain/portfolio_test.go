package domain

import (
	"testing"

	"papertrade/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func transaction(symbol string, quantity int64, price string) model.LedgerTransaction {
	return model.LedgerTransaction{
		Symbol:   symbol,
		Quantity: quantity,
		Price:    decimal.RequireFromString(price),
	}
}

func Test_PositionsFromTransactions(t *testing.T) {
	t.Run("nets buys and sells per symbol", func(t *testing.T) {
		// most-recent-first, like the repository returns
		transactions := []model.LedgerTransaction{
			transaction("X", -4, "6.00"),
			transaction("X", 10, "5.00"),
			transaction("Y", 3, "20.00"),
		}

		positions := PositionsFromTransactions(transactions)
		require.Len(t, positions, 2)
		require.Equal(t, int64(6), positions["X"].Quantity)
		require.Equal(t, int64(3), positions["Y"].Quantity)
	})

	t.Run("drops zero-sum symbols", func(t *testing.T) {
		transactions := []model.LedgerTransaction{
			transaction("X", -10, "6.00"),
			transaction("X", 10, "5.00"),
		}

		positions := PositionsFromTransactions(transactions)
		require.Empty(t, positions)
	})

	t.Run("last-seen price is the most recent transaction's", func(t *testing.T) {
		transactions := []model.LedgerTransaction{
			transaction("X", 1, "7.50"),
			transaction("X", 1, "5.00"),
		}

		positions := PositionsFromTransactions(transactions)
		require.True(t, decimal.RequireFromString("7.50").Equal(positions["X"].LastPrice))
	})
}

func Test_NetShares(t *testing.T) {
	transactions := []model.LedgerTransaction{
		transaction("X", 10, "5.00"),
		transaction("Y", 2, "1.00"),
		transaction("X", -4, "6.00"),
	}

	require.Equal(t, int64(6), NetShares(transactions, "X"))
	require.Equal(t, int64(2), NetShares(transactions, "Y"))
	require.Equal(t, int64(0), NetShares(transactions, "Z"))
}

func Test_Portfolio_TotalValue(t *testing.T) {
	p := Portfolio{
		Cash: decimal.RequireFromString("50.00"),
		Positions: map[string]*Position{
			"X": {Symbol: "X", Quantity: 6, LastPrice: decimal.RequireFromString("7.50")},
		},
	}

	require.True(t, decimal.RequireFromString("95.00").Equal(p.TotalValue()))
}
