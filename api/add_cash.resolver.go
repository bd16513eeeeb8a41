package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addCashRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type addCashResponse struct {
	Cash float64 `json:"cash"`
}

func (m ApiHandler) addCash(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	var requestBody addCashRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	account, err := m.LedgerService.Deposit(c.Request.Context(), userAccountID, requestBody.Amount)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.JSON(200, addCashResponse{
		Cash: account.Cash.InexactFloat64(),
	})
}
