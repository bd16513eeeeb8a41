package api

import (
	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
)

type PortfolioResponse struct {
	Cash       float64    `json:"cash"`
	TotalValue float64    `json:"totalValue"`
	Holdings   []Holdings `json:"holdings"`
}

type Holdings struct {
	Symbol      string  `json:"symbol"`
	Shares      int64   `json:"shares"`
	LastPrice   float64 `json:"lastPrice"`
	MarketValue float64 `json:"marketValue"`
}

func (m ApiHandler) portfolio(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	portfolio, err := m.LedgerService.Portfolio(c.Request.Context(), userAccountID)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.JSON(200, portfolioResponseFromDomain(portfolio))
}

func portfolioResponseFromDomain(in *domain.Portfolio) PortfolioResponse {
	holdings := []Holdings{}
	for _, symbol := range in.HeldSymbols() {
		position := in.Positions[symbol]
		holdings = append(holdings, Holdings{
			Symbol:      position.Symbol,
			Shares:      position.Quantity,
			LastPrice:   position.LastPrice.InexactFloat64(),
			MarketValue: position.MarketValue().InexactFloat64(),
		})
	}

	return PortfolioResponse{
		Cash:       in.Cash.InexactFloat64(),
		TotalValue: in.TotalValue().InexactFloat64(),
		Holdings:   holdings,
	}
}
