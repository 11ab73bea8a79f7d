package reitfolio

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestPortfolio_ExportCSV(t *testing.T) {
	p := NewPortfolio()
	if err := p.AddTransaction(NewBuy(day("2024-01-01"), "O", Q(10), USD(40))); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTransaction(NewBuy(day("2024-01-01"), "AMT", Q(2), USD(180))); err != nil {
		t.Fatal(err)
	}
	// Sold out, must not appear.
	if err := p.AddTransaction(NewBuy(day("2024-01-01"), "SPG", Q(1), USD(100))); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTransaction(NewSell(day("2024-02-01"), "SPG", Q(1), USD(110))); err != nil {
		t.Fatal(err)
	}
	p.Position("O").ApplyQuote(Quote{Ticker: "O", Price: Float(50), DividendYield: Float(6.0)})
	p.Position("AMT").SetPrice(USD(200))

	var buf bytes.Buffer
	if err := p.ExportCSV(&buf); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 positions", len(rows))
	}
	if rows[0][0] != "Ticker" || rows[0][7] != "Annual Income" {
		t.Errorf("header = %v", rows[0])
	}
	// Ticker order.
	if rows[1][0] != "AMT" || rows[2][0] != "O" {
		t.Errorf("row order = %q, %q", rows[1][0], rows[2][0])
	}
	o := rows[2]
	if o[1] != "10.00" {
		t.Errorf("shares = %q, want 10.00", o[1])
	}
	if o[2] != "50.00" {
		t.Errorf("price = %q, want 50.00", o[2])
	}
	if o[6] != "7.50" {
		t.Errorf("yield on cost = %q, want 7.50", o[6])
	}
	if o[7] != "30.00" {
		t.Errorf("annual income = %q, want 30.00", o[7])
	}
}

func TestPortfolio_ExportCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPortfolio().ExportCSV(&buf); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("empty portfolio exported %d rows, want header only", len(rows))
	}
}
