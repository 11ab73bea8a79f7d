package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/reitfolio"
)

// HistoryMarkdown renders the transaction history of one position. The index
// column is the argument the delete command takes.
func HistoryMarkdown(pos *reitfolio.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := pos.Ticker()
	if pos.Name() != "" {
		title = fmt.Sprintf("%s (%s)", pos.Ticker(), pos.Name())
	}
	doc.H1(fmt.Sprintf("Transactions for %s", title))

	txs := pos.Transactions()
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for i, tx := range txs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			tx.Date.String(),
			string(tx.Type),
			tx.Shares.String(),
			tx.Price.String(),
			tx.Price.Mul(tx.Shares).String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Date", "Type", "Shares", "Price", "Total"},
		Rows:   rows,
	})

	m := pos.Metrics()
	doc.PlainText(fmt.Sprintf("Currently held: %s shares, cost basis %s", m.Shares, m.TotalCost))
	return doc.String()
}

// NAVMarkdown renders the premium/discount analysis of every position with a
// consensus NAV on record.
func NAVMarkdown(p *reitfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("NAV Analysis")
	if !p.NAVReportDate().IsZero() {
		doc.PlainText(fmt.Sprintf("Report date: %s", p.NAVReportDate().ReportDate()))
	}

	var rows [][]string
	for _, pos := range p.Positions() {
		nav := pos.ConsensusNAV()
		if !nav.IsPositive() {
			continue
		}
		price, _ := pos.Price()
		m := pos.Metrics()
		verdict := "premium"
		if m.PremiumDiscount > 0 {
			verdict = "discount"
		}
		rows = append(rows, []string{
			pos.Ticker(),
			price.String(),
			nav.String(),
			fmt.Sprintf("%.2f%% %s", abs(m.PremiumDiscount), verdict),
		})
	}
	if len(rows) == 0 {
		doc.PlainText("No consensus NAV data.")
		return doc.String()
	}
	doc.Table(md.TableSet{Header: []string{"Ticker", "Price", "NAV", "Premium/Discount"}, Rows: rows})
	return doc.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
