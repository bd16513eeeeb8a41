package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) sell(c *gin.Context) {
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

	transaction, err := m.LedgerService.Sell(c.Request.Context(), userAccountID, requestBody.Symbol, requestBody.Shares)
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
