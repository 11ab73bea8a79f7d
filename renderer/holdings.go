// Package renderer turns portfolio state into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/reitfolio"
)

// HoldingsMarkdown renders the holdings table, one row per position with
// shares held. The score column only appears when at least one position
// carries a score, sparing the width when the score provider is off.
func HoldingsMarkdown(p *reitfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")

	showScore := false
	for _, pos := range p.Positions() {
		if pos.Score() > 0 {
			showScore = true
			break
		}
	}

	header := []string{"Ticker", "Shares", "Avg Cost", "Price", "Value", "P/L", "Yield", "YoC", "Income"}
	if showScore {
		header = append(header, "Score")
	}

	var rows [][]string
	for _, pos := range p.Positions() {
		m := pos.Metrics()
		if !m.Shares.IsPositive() {
			continue
		}
		price, _ := pos.Price()
		row := []string{
			pos.Ticker(),
			m.Shares.String(),
			m.AverageCost.String(),
			price.String(),
			m.PositionValue.String(),
			m.ProfitLoss.String(),
			yieldCell(pos),
			fmt.Sprintf("%.2f%%", m.YieldOnCost),
			m.AnnualIncome.String(),
		}
		if showScore {
			score := "-"
			if pos.Score() > 0 {
				score = fmt.Sprintf("%d", pos.Score())
			}
			row = append(row, score)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}

func yieldCell(pos *reitfolio.Position) string {
	if yield, ok := pos.DividendYield(); ok {
		return fmt.Sprintf("%.2f%%", yield)
	}
	return "-"
}
