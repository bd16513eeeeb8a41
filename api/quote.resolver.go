package api

import (
	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	Symbol string `json:"symbol"`
}

type quoteResponse struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	// 30-day daily-return volatility, percent. Omitted when chart data
	// was unavailable.
	Volatility *float64 `json:"volatility,omitempty"`
}

func (m ApiHandler) quote(c *gin.Context) {
	var requestBody quoteRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	quote, err := m.QuoteService.GetQuote(c.Request.Context(), requestBody.Symbol)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	out := quoteResponse{
		Symbol: quote.Symbol,
		Name:   quote.Name,
		Price:  quote.Price.InexactFloat64(),
	}
	if quote.Volatility != nil {
		v := quote.Volatility.InexactFloat64()
		out.Volatility = &v
	}

	c.JSON(200, out)
}
