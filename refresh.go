package reitfolio

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// completion is one finished fetch, tagged with the generation of the round
// that issued it.
type completion struct {
	ticker string
	gen    uint64
	quote  *Quote
	score  int
	err    error
}

// RefreshReport summarizes one refresh round.
type RefreshReport struct {
	Applied int      // completions merged into the portfolio
	Dropped int      // late completions from superseded rounds
	Errors  []string // fetch failures, the affected fields were left untouched
	// ScoreSeen reports whether any ticker returned a valid (>0) score this
	// round; the presentation layer uses it to decide whether to show the
	// score column.
	ScoreSeen bool
}

// Refresher fetches market data and quality scores concurrently, one unit of
// work per ticker, and applies completions to the portfolio one at a time.
//
// Each round bumps a per-ticker generation. A completion carrying a stale
// generation (its round was superseded by a newer one before it finished) is
// dropped, so out-of-order writes from an earlier round can never overwrite a
// later one. Fetch errors never clear previously applied values.
type Refresher struct {
	quoter Quoter
	scorer Scorer // optional
	log    zerolog.Logger

	mu        sync.Mutex
	portfolio *Portfolio
	gen       map[string]uint64
}

// NewRefresher creates a refresher applying fetch results to the given
// portfolio. scorer may be nil when no score provider is configured.
func NewRefresher(p *Portfolio, quoter Quoter, scorer Scorer, log zerolog.Logger) *Refresher {
	return &Refresher{
		quoter:    quoter,
		scorer:    scorer,
		log:       log,
		portfolio: p,
		gen:       make(map[string]uint64),
	}
}

// Refresh fetches quotes (and scores, when configured) for the given tickers
// and blocks until every fetch of this round completed or the context is
// done. Rounds may overlap: starting a new round for a ticker supersedes any
// outstanding fetches for it.
func (r *Refresher) Refresh(ctx context.Context, tickers ...string) RefreshReport {
	gens := r.begin(tickers)

	ch := make(chan completion, 2*len(tickers))
	var wg sync.WaitGroup
	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string, gen uint64) {
			defer wg.Done()
			q, err := r.quoter.Quote(ctx, ticker)
			c := completion{ticker: ticker, gen: gen, err: err}
			if err == nil {
				c.quote = &q
			}
			ch <- c
		}(ticker, gens[ticker])

		if r.scorer != nil {
			wg.Add(1)
			go func(ticker string, gen uint64) {
				defer wg.Done()
				score, err := r.scorer.Score(ctx, ticker)
				ch <- completion{ticker: ticker, gen: gen, score: score, err: err}
			}(ticker, gens[ticker])
		}
	}
	go func() {
		wg.Wait()
		close(ch)
	}()

	var report RefreshReport
	for c := range ch {
		r.apply(c, &report)
	}
	return report
}

// begin bumps the generation of every ticker in the round and returns the
// snapshot the round's fetches are tagged with.
func (r *Refresher) begin(tickers []string) map[string]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	gens := make(map[string]uint64, len(tickers))
	for _, ticker := range tickers {
		r.gen[ticker]++
		gens[ticker] = r.gen[ticker]
	}
	return gens
}

// apply merges one completion into the portfolio. All portfolio writes from
// refresh rounds are serialized here.
func (r *Refresher) apply(c completion, report *RefreshReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gen[c.ticker] != c.gen {
		report.Dropped++
		r.log.Debug().Str("ticker", c.ticker).Uint64("gen", c.gen).Msg("dropping stale fetch result")
		return
	}
	if c.err != nil {
		report.Errors = append(report.Errors, c.ticker+": "+c.err.Error())
		r.log.Warn().Str("ticker", c.ticker).Err(c.err).Msg("fetch failed, keeping previous values")
		return
	}

	pos := r.portfolio.Position(c.ticker)
	if pos == nil {
		report.Dropped++
		return
	}
	if c.quote != nil {
		pos.ApplyQuote(*c.quote)
		report.Applied++
		r.log.Info().Str("ticker", c.ticker).Msg("quote applied")
		return
	}
	if c.score > 0 {
		pos.SetScore(c.score)
		report.Applied++
		report.ScoreSeen = true
		r.log.Info().Str("ticker", c.ticker).Int("score", c.score).Msg("score applied")
	}
}
