package reitfolio

import (
	"encoding/csv"
	"fmt"
	"io"
)

// csvHeader is the column layout of the exported report. It is a derived
// view, never read back.
var csvHeader = []string{
	"Ticker", "Shares", "Current Price", "Average Cost",
	"Profit/Loss", "Dividend Yield", "Yield on Cost", "Annual Income",
}

// ExportCSV writes one row per position currently holding shares, in ticker
// order.
func (p *Portfolio) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, pos := range p.Positions() {
		m := pos.Metrics()
		if !m.Shares.IsPositive() {
			continue
		}
		price, _ := pos.Price()
		row := []string{
			pos.Ticker(),
			fmt.Sprintf("%.2f", m.Shares.InexactFloat64()),
			fmt.Sprintf("%.2f", price.InexactFloat64()),
			fmt.Sprintf("%.2f", m.AverageCost.InexactFloat64()),
			fmt.Sprintf("%.2f", m.ProfitLoss.InexactFloat64()),
			fmt.Sprintf("%.2f", pos.dividendYield.or(0)),
			fmt.Sprintf("%.2f", m.YieldOnCost),
			fmt.Sprintf("%.2f", m.AnnualIncome.InexactFloat64()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", pos.Ticker(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
