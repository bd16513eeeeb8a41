package repository

import (
	"context"
	"fmt"
	"time"

	"papertrade/internal/domain"

	"github.com/montanaflynn/stats"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// QuoteRepository is the external price lookup collaborator. Unknown
// symbols surface as domain.ErrUnknownSymbol, transport failures as
// domain.ErrLookupFailed; callers never block past ctx's deadline.
type QuoteRepository interface {
	Lookup(ctx context.Context, symbol string) (*domain.Quote, error)
	TrailingVolatility(ctx context.Context, symbol string) (*decimal.Decimal, error)
}

type quoteRepositoryHandler struct{}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

// getQuote indirection for tests; the finance-go client has no injectable
// transport.
var getQuote = func(symbol string) (*finance.Quote, error) {
	return quote.Get(symbol)
}

func (h quoteRepositoryHandler) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	type result struct {
		q   *finance.Quote
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		q, err := getQuote(symbol)
		resultCh <- result{q: q, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("lookup for %s timed out: %w", symbol, domain.ErrLookupFailed)
	case r := <-resultCh:
		if r.err != nil {
			return nil, fmt.Errorf("lookup for %s: %w: %w", symbol, domain.ErrLookupFailed, r.err)
		}
		if r.q == nil || r.q.RegularMarketPrice <= 0 {
			return nil, fmt.Errorf("no quote for %s: %w", symbol, domain.ErrUnknownSymbol)
		}
		name := r.q.ShortName
		if name == "" {
			name = symbol
		}
		return &domain.Quote{
			Symbol: symbol,
			Name:   name,
			Price:  decimal.NewFromFloat(r.q.RegularMarketPrice),
		}, nil
	}
}

// TrailingVolatility computes the sample stdev of daily close-to-close
// returns over the trailing 30 days, in percent.
func (h quoteRepositoryHandler) TrailingVolatility(ctx context.Context, symbol string) (*decimal.Decimal, error) {
	type result struct {
		closes []float64
		err    error
	}
	resultCh := make(chan result, 1)
	go func() {
		start := time.Now().AddDate(0, 0, -30)
		now := time.Now()
		params := &chart.Params{
			Start:    datetime.New(&start),
			End:      datetime.New(&now),
			Symbol:   symbol,
			Interval: datetime.OneDay,
		}
		iter := chart.Get(params)

		closes := []float64{}
		for iter.Next() {
			closes = append(closes, iter.Bar().Close.InexactFloat64())
		}
		resultCh <- result{closes: closes, err: iter.Err()}
	}()

	var closes []float64
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("chart fetch for %s timed out: %w", symbol, domain.ErrLookupFailed)
	case r := <-resultCh:
		if r.err != nil {
			return nil, fmt.Errorf("chart fetch for %s: %w: %w", symbol, domain.ErrLookupFailed, r.err)
		}
		closes = r.closes
	}

	returns := dailyReturns(closes)
	if len(returns) < 2 {
		return nil, fmt.Errorf("not enough chart data for %s: %w", symbol, domain.ErrLookupFailed)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stdev for %s: %w", symbol, err)
	}

	out := decimal.NewFromFloat(stdev)
	return &out, nil
}

func dailyReturns(closes []float64) []float64 {
	returns := []float64{}
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, ((closes[i]-closes[i-1])/closes[i-1])*100)
	}
	return returns
}
