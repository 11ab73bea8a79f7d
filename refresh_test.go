package reitfolio

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoterFunc func(ctx context.Context, ticker string) (Quote, error)

func (f quoterFunc) Quote(ctx context.Context, ticker string) (Quote, error) { return f(ctx, ticker) }

type scorerFunc func(ctx context.Context, ticker string) (int, error)

func (f scorerFunc) Score(ctx context.Context, ticker string) (int, error) { return f(ctx, ticker) }

func refreshPortfolio(t *testing.T, tickers ...string) *Portfolio {
	t.Helper()
	p := NewPortfolio()
	for _, ticker := range tickers {
		require.NoError(t, p.AddTransaction(NewBuy(day("2024-01-01"), ticker, Q(10), USD(40))))
	}
	return p
}

func TestRefresher_AppliesQuotes(t *testing.T) {
	p := refreshPortfolio(t, "O", "AMT")
	quoter := quoterFunc(func(_ context.Context, ticker string) (Quote, error) {
		return Quote{Ticker: ticker, Name: ticker + " Inc", Price: Float(50), DividendYield: Float(5)}, nil
	})
	r := NewRefresher(p, quoter, nil, zerolog.Nop())

	report := r.Refresh(context.Background(), "O", "AMT")

	assert.Equal(t, 2, report.Applied)
	assert.Empty(t, report.Errors)
	assert.Zero(t, report.Dropped)
	price, ok := p.Position("O").Price()
	require.True(t, ok)
	assert.True(t, price.Equal(USD(50)))
	assert.Equal(t, "O Inc", p.Position("O").Name())
}

func TestRefresher_ErrorKeepsPreviousValues(t *testing.T) {
	p := refreshPortfolio(t, "O")
	p.Position("O").ApplyQuote(Quote{Ticker: "O", Price: Float(48), DividendYield: Float(5.5)})

	quoter := quoterFunc(func(context.Context, string) (Quote, error) {
		return Quote{}, errors.New("upstream timeout")
	})
	r := NewRefresher(p, quoter, nil, zerolog.Nop())

	report := r.Refresh(context.Background(), "O")

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "upstream timeout")
	assert.Zero(t, report.Applied)
	price, ok := p.Position("O").Price()
	require.True(t, ok, "previous observation cleared by a failed fetch")
	assert.True(t, price.Equal(USD(48)))
	yield, ok := p.Position("O").DividendYield()
	require.True(t, ok)
	assert.Equal(t, 5.5, yield)
}

func TestRefresher_AppliesScores(t *testing.T) {
	p := refreshPortfolio(t, "O")
	quoter := quoterFunc(func(_ context.Context, ticker string) (Quote, error) {
		return Quote{Ticker: ticker, Price: Float(50)}, nil
	})
	scorer := scorerFunc(func(context.Context, string) (int, error) { return 88, nil })
	r := NewRefresher(p, quoter, scorer, zerolog.Nop())

	report := r.Refresh(context.Background(), "O")

	assert.Equal(t, 2, report.Applied)
	assert.True(t, report.ScoreSeen)
	assert.Equal(t, 88, p.Position("O").Score())
}

func TestRefresher_ScoreErrorDoesNotBlockQuote(t *testing.T) {
	p := refreshPortfolio(t, "O")
	quoter := quoterFunc(func(_ context.Context, ticker string) (Quote, error) {
		return Quote{Ticker: ticker, Price: Float(50)}, nil
	})
	scorer := scorerFunc(func(context.Context, string) (int, error) {
		return 0, errors.New("scrape failed")
	})
	r := NewRefresher(p, quoter, scorer, zerolog.Nop())

	report := r.Refresh(context.Background(), "O")

	assert.Equal(t, 1, report.Applied)
	assert.False(t, report.ScoreSeen)
	require.Len(t, report.Errors, 1)
	_, ok := p.Position("O").Price()
	assert.True(t, ok)
}

func TestRefresher_UnknownTickerDropped(t *testing.T) {
	p := refreshPortfolio(t, "O")
	quoter := quoterFunc(func(_ context.Context, ticker string) (Quote, error) {
		return Quote{Ticker: ticker, Price: Float(50)}, nil
	})
	r := NewRefresher(p, quoter, nil, zerolog.Nop())

	report := r.Refresh(context.Background(), "GHOST")

	assert.Zero(t, report.Applied)
	assert.Equal(t, 1, report.Dropped)
}

// A completion from a superseded round must never overwrite the result of a
// newer round, whatever order the fetches finish in.
func TestRefresher_DropsStaleCompletions(t *testing.T) {
	p := refreshPortfolio(t, "O")

	var calls atomic.Int64
	firstInFlight := make(chan struct{})
	release := make(chan struct{})
	quoter := quoterFunc(func(_ context.Context, ticker string) (Quote, error) {
		if calls.Add(1) == 1 {
			close(firstInFlight)
			<-release
			return Quote{Ticker: ticker, Price: Float(10)}, nil
		}
		return Quote{Ticker: ticker, Price: Float(20)}, nil
	})
	r := NewRefresher(p, quoter, nil, zerolog.Nop())

	firstDone := make(chan RefreshReport, 1)
	go func() { firstDone <- r.Refresh(context.Background(), "O") }()
	<-firstInFlight

	// Second round supersedes the first while its fetch is still in flight.
	second := r.Refresh(context.Background(), "O")
	close(release)
	first := <-firstDone

	assert.Equal(t, 1, second.Applied)
	assert.Equal(t, 1, first.Dropped)
	assert.Zero(t, first.Applied)
	price, ok := p.Position("O").Price()
	require.True(t, ok)
	assert.True(t, price.Equal(USD(20)), "stale completion overwrote the newer round, price = %s", price)
}
