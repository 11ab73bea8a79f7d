package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/etnz/reitfolio"
)

// SummaryMarkdown renders the portfolio-wide aggregation.
func SummaryMarkdown(p *reitfolio.Portfolio) string {
	s := p.Summary()

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	doc.PlainText(fmt.Sprintf("Total Market Value: %s", s.TotalValue))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Cost", s.TotalCost.String()},
			{"Total Value", s.TotalValue.String()},
			{"Profit/Loss", s.TotalProfitLoss.String()},
			{"Annual Income", s.TotalAnnualIncome.String()},
			{"Yield", fmt.Sprintf("%.2f%%", s.Yield)},
			{"Yield on Cost", fmt.Sprintf("%.2f%%", s.YieldOnCost)},
			{"Dividend Growth 3Y (weighted)", fmt.Sprintf("%.2f%%", s.WeightedGrowth3Y)},
			{"Dividend Growth 5Y (weighted)", fmt.Sprintf("%.2f%%", s.WeightedGrowth5Y)},
		},
	})

	if !p.NAVReportDate().IsZero() {
		doc.PlainText(fmt.Sprintf("Consensus NAV report: %s", p.NAVReportDate().ReportDate()))
	}
	return doc.String()
}

// SectorsMarkdown renders the market value allocation by REIT sector, largest
// first, with the share of the total.
func SectorsMarkdown(p *reitfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sector Allocation")

	alloc := p.SectorAllocation()
	if len(alloc) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}

	var total reitfolio.Money
	for _, v := range alloc {
		total = total.Add(v)
	}

	var rows [][]string
	for _, sector := range sortedByValue(alloc) {
		value := alloc[sector]
		share := 0.0
		if total.IsPositive() {
			share = value.DivPrice(total).InexactFloat64() * 100
		}
		rows = append(rows, []string{sector, value.String(), fmt.Sprintf("%.1f%%", share)})
	}
	doc.Table(md.TableSet{Header: []string{"Sector", "Value", "Share"}, Rows: rows})
	return doc.String()
}

func sortedByValue(alloc map[string]reitfolio.Money) []string {
	sectors := make([]string, 0, len(alloc))
	for sector := range alloc {
		sectors = append(sectors, sector)
	}
	// Largest allocation first, name as tie-breaker for a stable report.
	sort.Slice(sectors, func(i, j int) bool {
		vi, vj := alloc[sectors[i]], alloc[sectors[j]]
		if vi.Equal(vj) {
			return sectors[i] < sectors[j]
		}
		return vi.GreaterThan(vj)
	})
	return sectors
}
