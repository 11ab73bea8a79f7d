package reitfolio

import (
	"errors"
	"fmt"
	"sort"
)

// ErrPositionNotFound is returned when an operation references a ticker with
// no position in the portfolio.
var ErrPositionNotFound = errors.New("position not found")

// Portfolio owns a collection of positions keyed by ticker. It is the sole
// unit of persistence. It is not safe for concurrent writers: the design
// assumes a single logical writer applying mutations serially (the Refresher
// serializes fetch completions for the same reason).
type Portfolio struct {
	positions map[string]*Position

	// navReportDate is the date of the NAV report the consensus values were
	// taken from. Persisted in its own legacy format, see ReportDateFormat.
	navReportDate Date
}

// NewPortfolio returns a new empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{positions: make(map[string]*Position)}
}

// Position returns the position for a ticker, or nil.
func (p *Portfolio) Position(ticker string) *Position { return p.positions[ticker] }

// AddPosition registers a position under its own ticker.
func (p *Portfolio) AddPosition(pos *Position) { p.positions[pos.ticker] = pos }

// RemovePosition deletes a position from the portfolio.
func (p *Portfolio) RemovePosition(ticker string) { delete(p.positions, ticker) }

// Tickers returns all tickers in alphabetical order.
func (p *Portfolio) Tickers() []string {
	tickers := make([]string, 0, len(p.positions))
	for ticker := range p.positions {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// Positions returns all positions in ticker order.
func (p *Portfolio) Positions() []*Position {
	out := make([]*Position, 0, len(p.positions))
	for _, ticker := range p.Tickers() {
		out = append(out, p.positions[ticker])
	}
	return out
}

// AddTransaction routes a transaction to the position for its ticker,
// creating the position on first sight.
func (p *Portfolio) AddTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	pos, ok := p.positions[tx.Ticker]
	if !ok {
		pos = NewPosition(tx.Ticker, "")
		p.positions[tx.Ticker] = pos
	}
	return pos.Add(tx)
}

// DeleteTransaction removes the transaction at the given index from a
// position. A position whose last transaction is deleted is removed from the
// portfolio.
func (p *Portfolio) DeleteTransaction(ticker string, index int) error {
	pos := p.positions[ticker]
	if pos == nil {
		return fmt.Errorf("delete transaction for %q: %w", ticker, ErrPositionNotFound)
	}
	if err := pos.Delete(index); err != nil {
		return err
	}
	if len(pos.transactions) == 0 {
		delete(p.positions, ticker)
	}
	return nil
}

// ApplySplit back-adjusts a position for a stock split. newShares/oldShares
// is the split ratio (a reverse split has newShares < oldShares); only
// transactions strictly before splitDate are rewritten.
func (p *Portfolio) ApplySplit(ticker string, newShares, oldShares int, splitDate Date) error {
	pos := p.positions[ticker]
	if pos == nil {
		return fmt.Errorf("apply split to %q: %w", ticker, ErrPositionNotFound)
	}
	if newShares <= 0 || oldShares <= 0 {
		return fmt.Errorf("invalid split ratio %d:%d", newShares, oldShares)
	}
	ratio := Q(newShares).Div(Q(oldShares))
	priceFactor := float64(oldShares) / float64(newShares)
	pos.adjustForSplit(splitDate, ratio, priceFactor)
	return nil
}

// SetNAV merges consensus NAV values into the matching positions. Tickers
// without a position are ignored.
func (p *Portfolio) SetNAV(values map[string]Money) {
	for ticker, nav := range values {
		if pos := p.positions[ticker]; pos != nil {
			pos.SetConsensusNAV(nav)
		}
	}
}

// NAVReportDate returns the date of the NAV report, zero when unset.
func (p *Portfolio) NAVReportDate() Date { return p.navReportDate }

func (p *Portfolio) SetNAVReportDate(d Date) { p.navReportDate = d }

// Summary holds the portfolio-wide aggregation over all positions with
// shares held.
type Summary struct {
	TotalCost         Money
	TotalValue        Money
	TotalAnnualIncome Money
	TotalProfitLoss   Money
	PositionValues    map[string]Money
	Yield             float64 // percent, income over market value
	YieldOnCost       float64 // percent, income over cost basis
	// Value-weighted dividend growth averages. Positions with unknown growth
	// keep their value weight and contribute zero growth, so a portfolio of
	// never-fetched positions averages to zero rather than being undefined.
	WeightedGrowth3Y  float64
	WeightedGrowth5Y  float64
}

// Summary aggregates metrics across all positions currently holding shares.
// It is a pure function of the portfolio state.
func (p *Portfolio) Summary() Summary {
	s := Summary{PositionValues: make(map[string]Money)}

	type weighted struct {
		value    Money
		growth3Y float64
		growth5Y float64
	}
	var held []weighted

	for _, pos := range p.positions {
		m := pos.Metrics()
		if !m.Shares.IsPositive() {
			continue
		}
		s.TotalCost = s.TotalCost.Add(m.TotalCost)
		s.TotalValue = s.TotalValue.Add(m.PositionValue)
		s.TotalAnnualIncome = s.TotalAnnualIncome.Add(m.AnnualIncome)
		s.TotalProfitLoss = s.TotalProfitLoss.Add(m.ProfitLoss)
		s.PositionValues[pos.ticker] = m.PositionValue
		held = append(held, weighted{
			value:    m.PositionValue,
			growth3Y: pos.growth3Y.or(0),
			growth5Y: pos.growth5Y.or(0),
		})
	}

	if s.TotalValue.IsPositive() {
		s.Yield = s.TotalAnnualIncome.DivPrice(s.TotalValue).InexactFloat64() * 100
		for _, h := range held {
			weight := h.value.DivPrice(s.TotalValue).InexactFloat64()
			s.WeightedGrowth3Y += h.growth3Y * weight
			s.WeightedGrowth5Y += h.growth5Y * weight
		}
	}
	if s.TotalCost.IsPositive() {
		s.YieldOnCost = s.TotalAnnualIncome.DivPrice(s.TotalCost).InexactFloat64() * 100
	}
	return s
}
