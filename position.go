package reitfolio

import (
	"fmt"
	"sort"
)

// observed holds a market value together with whether it has ever been
// observed. It distinguishes "legitimately zero" from "never fetched".
type observed[T any] struct {
	value T
	ok    bool
}

func (o *observed[T]) set(v T)       { o.value, o.ok = v, true }
func (o observed[T]) get() (T, bool) { return o.value, o.ok }

// or returns the observed value, or the fallback when never observed.
func (o observed[T]) or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Position owns the ordered transaction list for one ticker, together with
// the externally supplied market attributes. All metrics are derived on
// demand with Metrics; nothing is cached.
type Position struct {
	ticker string
	name   string

	transactions []Transaction

	price          observed[Money]   // last market price per share
	dividendYield  observed[float64] // percent, not fraction
	annualDividend observed[Money]   // per share per year
	growth3Y       observed[float64] // dividend growth CAGR, percent
	growth5Y       observed[float64]

	score int   // quality score, 0 = unknown
	nav   Money // consensus NAV per share, zero = unset
}

// NewPosition creates an empty position for a ticker.
func NewPosition(ticker, name string) *Position {
	return &Position{ticker: ticker, name: name}
}

func (p *Position) Ticker() string { return p.ticker }
func (p *Position) Name() string   { return p.name }

func (p *Position) SetName(name string) {
	if name != "" {
		p.name = name
	}
}

// Transactions returns the position's transactions, sorted by date ascending.
// The returned slice is shared, callers must not mutate it.
func (p *Position) Transactions() []Transaction { return p.transactions }

// Add appends a transaction and keeps the list sorted by date. The sort is
// stable, transactions on the same day keep their insertion order.
func (p *Position) Add(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.Ticker != p.ticker {
		return fmt.Errorf("transaction ticker %q does not belong to position %q", tx.Ticker, p.ticker)
	}
	p.transactions = append(p.transactions, tx)
	p.stableSort()
	return nil
}

// Delete removes the transaction at the given index in date order.
func (p *Position) Delete(index int) error {
	if index < 0 || index >= len(p.transactions) {
		return fmt.Errorf("transaction index %d out of range for %q", index, p.ticker)
	}
	p.transactions = append(p.transactions[:index], p.transactions[index+1:]...)
	return nil
}

func (p *Position) stableSort() {
	sort.SliceStable(p.transactions, func(i, j int) bool {
		return p.transactions[i].Date.Before(p.transactions[j].Date)
	})
}

// Market attribute accessors. The boolean reports whether the value has ever
// been observed; a fetch failure leaves the previous observation untouched.

func (p *Position) Price() (Money, bool)           { return p.price.get() }
func (p *Position) DividendYield() (float64, bool) { return p.dividendYield.get() }
func (p *Position) AnnualDividend() (Money, bool)  { return p.annualDividend.get() }
func (p *Position) Growth3Y() (float64, bool)      { return p.growth3Y.get() }
func (p *Position) Growth5Y() (float64, bool)      { return p.growth5Y.get() }

// Score returns the externally sourced quality score, 0 when unknown.
func (p *Position) Score() int { return p.score }

func (p *Position) SetScore(score int) {
	if score > 0 {
		p.score = score
	}
}

// ConsensusNAV returns the consensus NAV per share, zero when unset.
func (p *Position) ConsensusNAV() Money { return p.nav }

func (p *Position) SetConsensusNAV(nav Money) { p.nav = nav }

// SetPrice records a market price observation directly. Mostly useful when
// restoring a persisted position or in tests; fetch results go through
// ApplyQuote.
func (p *Position) SetPrice(price Money) { p.price.set(price) }

// ApplyQuote merges a fetch result into the position. Only the fields present
// in the quote are overwritten, absent fields keep their previous
// observation. Last write wins per field.
func (p *Position) ApplyQuote(q Quote) {
	p.SetName(q.Name)
	if q.Price != nil {
		p.price.set(USD(*q.Price))
	}
	if q.DividendYield != nil {
		p.dividendYield.set(*q.DividendYield)
	}
	if q.AnnualDividend != nil {
		p.annualDividend.set(USD(*q.AnnualDividend))
	}
	if q.Growth3Y != nil {
		p.growth3Y.set(*q.Growth3Y)
	}
	if q.Growth5Y != nil {
		p.growth5Y.set(*q.Growth5Y)
	}
}

// Metrics holds the derived state of a position. All ratios are zero-guarded:
// a zero denominator yields zero, never a panic.
type Metrics struct {
	Shares          Quantity
	AverageCost     Money   // weighted average cost per currently-held share
	TotalCost       Money   // cost basis of currently-held shares
	YieldOnCost     float64 // percent, against average cost
	AnnualIncome    Money
	ProfitLoss      Money
	PositionValue   Money
	PremiumDiscount float64 // percent vs consensus NAV, positive = discount
}

// Metrics replays the transaction list through a FIFO lot queue and derives
// the position metrics. It is a pure computation, safe to call on every
// refresh.
func (p *Position) Metrics() Metrics {
	var queue lots
	for _, tx := range p.transactions {
		queue = queue.apply(tx)
	}

	shares := queue.shares()
	totalCost := queue.cost()

	var averageCost Money
	if shares.IsPositive() {
		averageCost = totalCost.Div(shares)
	}

	price := p.price.or(USD(0))

	// Resolve the per-share annual dividend once, and use it consistently for
	// both yield on cost and annual income.
	perShare := p.annualDividendPerShare(price)

	var yieldOnCost float64
	if averageCost.IsPositive() {
		yieldOnCost = perShare.DivPrice(averageCost).InexactFloat64() * 100
	}

	var premiumDiscount float64
	if p.nav.IsPositive() {
		premiumDiscount = (1 - price.DivPrice(p.nav).InexactFloat64()) * 100
	}

	return Metrics{
		Shares:          shares,
		AverageCost:     averageCost,
		TotalCost:       totalCost,
		YieldOnCost:     yieldOnCost,
		AnnualIncome:    perShare.Mul(shares),
		ProfitLoss:      price.Sub(averageCost).Mul(shares),
		PositionValue:   price.Mul(shares),
		PremiumDiscount: premiumDiscount,
	}
}

// annualDividendPerShare resolves the best available per-share annual
// dividend: the fetched annual dividend when present and positive, otherwise
// an estimate from the dividend yield and the current price.
func (p *Position) annualDividendPerShare(price Money) Money {
	if div, ok := p.annualDividend.get(); ok && div.IsPositive() {
		return div
	}
	if yield, ok := p.dividendYield.get(); ok && yield > 0 {
		return price.Scale(yield / 100)
	}
	return USD(0)
}

// adjustForSplit back-adjusts transactions predating the split date so that
// pre-split lots compare correctly against post-split prices. ratio scales
// shares, priceFactor scales per-share prices. The current price, when
// observed, is scaled too.
func (p *Position) adjustForSplit(splitDate Date, ratio Quantity, priceFactor float64) {
	for i := range p.transactions {
		if p.transactions[i].Date.Before(splitDate) {
			p.transactions[i].Shares = p.transactions[i].Shares.Mul(ratio)
			p.transactions[i].Price = p.transactions[i].Price.Scale(priceFactor)
		}
	}
	if price, ok := p.price.get(); ok && price.IsPositive() {
		p.price.set(price.Scale(priceFactor))
	}
}
