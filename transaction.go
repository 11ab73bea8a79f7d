package reitfolio

import (
	"encoding/json"
	"fmt"
)

// TxType identifies the kind of event recorded by a transaction.
type TxType string

// Transaction types, as stored in the portfolio document.
const (
	Buy    TxType = "BUY"
	Sell   TxType = "SELL"
	NoCost TxType = "NO_COST" // shares received without a purchase price (spin-off, grant)
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Buy, Sell, NoCost:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is one event affecting a position's share count and cost basis.
// It is immutable after construction, with a single exception: a stock split
// rewrites Shares and Price in place for transactions predating the split.
type Transaction struct {
	Date   Date
	Type   TxType
	Ticker string
	Shares Quantity
	Price  Money // per share; always zero for NO_COST
}

// NewBuy records a purchase of shares at a per-share price.
func NewBuy(day Date, ticker string, shares Quantity, price Money) Transaction {
	return Transaction{Date: day, Type: Buy, Ticker: ticker, Shares: shares, Price: price}
}

// NewSell records a sale of shares at a per-share price.
func NewSell(day Date, ticker string, shares Quantity, price Money) Transaction {
	return Transaction{Date: day, Type: Sell, Ticker: ticker, Shares: shares, Price: price}
}

// NewNoCost records shares acquired without a purchase price. The price is
// zero by construction, diluting the average cost.
func NewNoCost(day Date, ticker string, shares Quantity) Transaction {
	return Transaction{Date: day, Type: NoCost, Ticker: ticker, Shares: shares, Price: USD(0)}
}

// Validate checks the transaction fields. It sets the date to today if zero.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Ticker == "" {
		return fmt.Errorf("transaction ticker is missing")
	}
	if _, err := ParseTxType(string(t.Type)); err != nil {
		return err
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("transaction shares must be positive, got %s", t.Shares)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction price must not be negative, got %s", t.Price)
	}
	if t.Type == NoCost && !t.Price.IsZero() {
		return fmt.Errorf("no-cost transaction must have a zero price, got %s", t.Price)
	}
	return nil
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date && t.Type == o.Type && t.Ticker == o.Ticker &&
		t.Shares.Equal(o.Shares) && t.Price.Equal(o.Price)
}

// MarshalJSON writes the transaction in the document field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("ticker", t.Ticker)
	w.Append("shares", t.Shares)
	w.Append("price", t.Price)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the flat document representation.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date   Date     `json:"date"`
		Type   string   `json:"type"`
		Ticker string   `json:"ticker"`
		Shares Quantity `json:"shares"`
		Price  Money    `json:"price"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	kind, err := ParseTxType(temp.Type)
	if err != nil {
		return err
	}
	t.Date = temp.Date
	t.Type = kind
	t.Ticker = temp.Ticker
	t.Shares = temp.Shares
	t.Price = temp.Price
	return nil
}

var _ json.Marshaler = (*Transaction)(nil)
var _ json.Unmarshaler = (*Transaction)(nil)
