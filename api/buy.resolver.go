package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type tradeRequest struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}

type tradeResponse struct {
	TransactionID string  `json:"transactionID"`
	Symbol        string  `json:"symbol"`
	Shares        int64   `json:"shares"`
	Price         float64 `json:"price"`
	ExecutedAt    string  `json:"executedAt"`
}

func (m ApiHandler) buy(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	transaction, err := m.LedgerService.Buy(c.Request.Context(), userAccountID, requestBody.Symbol, requestBody.Shares)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.JSON(200, tradeResponse{
		TransactionID: transaction.LedgerTransactionID.String(),
		Symbol:        transaction.Symbol,
		Shares:        transaction.Quantity,
		Price:         transaction.Price.InexactFloat64(),
		ExecutedAt:    transaction.CreatedAt.Format(time.RFC3339),
	})
}
