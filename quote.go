package reitfolio

import "context"

// Quote is the result of one market data fetch for a ticker. Pointer fields
// distinguish "provider did not return this field" from a legitimate zero;
// absent fields must not disturb previous observations.
type Quote struct {
	Ticker         string
	Name           string
	Price          *float64
	DividendYield  *float64 // percent
	AnnualDividend *float64 // per share per year
	Growth3Y       *float64 // dividend growth CAGR, percent
	Growth5Y       *float64
}

// Float is a convenience for building Quote fields.
func Float(v float64) *float64 { return &v }

// Quoter fetches market data for a single ticker.
type Quoter interface {
	Quote(ctx context.Context, ticker string) (Quote, error)
}

// Scorer fetches an externally computed quality score for a single ticker.
// A valid score is a positive integer.
type Scorer interface {
	Score(ctx context.Context, ticker string) (int, error)
}

// RateSource returns the conversion rate from one currency to another. It is
// a display-layer concern, the accounting engine never converts.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}
