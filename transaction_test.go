package reitfolio

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		ok   bool
	}{
		{"buy", NewBuy(day("2024-01-01"), "O", Q(10), USD(50)), true},
		{"sell", NewSell(day("2024-01-01"), "O", Q(10), USD(50)), true},
		{"no cost", NewNoCost(day("2024-01-01"), "O", Q(10)), true},
		{"missing ticker", NewBuy(day("2024-01-01"), "", Q(10), USD(50)), false},
		{"zero shares", NewBuy(day("2024-01-01"), "O", Q(0), USD(50)), false},
		{"negative shares", NewBuy(day("2024-01-01"), "O", Q(-1), USD(50)), false},
		{"negative price", NewBuy(day("2024-01-01"), "O", Q(10), USD(-1)), false},
		{"priced no cost", Transaction{Date: day("2024-01-01"), Type: NoCost, Ticker: "O", Shares: Q(1), Price: USD(5)}, false},
		{"unknown type", Transaction{Date: day("2024-01-01"), Type: "DIVIDEND", Ticker: "O", Shares: Q(1)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tx.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestTransaction_ValidateDefaultsDateToToday(t *testing.T) {
	tx := NewBuy(Date{}, "O", Q(1), USD(10))
	if err := tx.Validate(); err != nil {
		t.Fatal(err)
	}
	if tx.Date.IsZero() {
		t.Error("zero date not defaulted")
	}
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	tx := NewBuy(day("2024-01-15"), "O", Q(10.5), USD(55.25))
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !tx.Equal(back) {
		t.Errorf("round trip: got %+v, want %+v", back, tx)
	}
	// Field order matters for document diffs.
	s := string(data)
	if !strings.HasPrefix(s, `{"date":"2024-01-15","type":"BUY"`) {
		t.Errorf("unexpected field order: %s", s)
	}
}

func TestTransaction_UnmarshalRejectsUnknownType(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal([]byte(`{"date":"2024-01-01","type":"SPLIT","ticker":"O","shares":1,"price":0}`), &tx)
	if err == nil {
		t.Error("unknown transaction type accepted")
	}
}
