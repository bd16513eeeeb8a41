package api

import (
	"time"

	"papertrade/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

type HistoryResponse struct {
	Transactions []tradeResponse `json:"transactions"`
}

func (m ApiHandler) history(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	transactions, err := m.LedgerService.History(c.Request.Context(), userAccountID)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.JSON(200, historyResponseFromModels(transactions))
}

func historyResponseFromModels(in []model.LedgerTransaction) HistoryResponse {
	out := HistoryResponse{Transactions: []tradeResponse{}}
	for _, t := range in {
		out.Transactions = append(out.Transactions, tradeResponse{
			TransactionID: t.LedgerTransactionID.String(),
			Symbol:        t.Symbol,
			Shares:        t.Quantity,
			Price:         t.Price.InexactFloat64(),
			ExecutedAt:    t.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
