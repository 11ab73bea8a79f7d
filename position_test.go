package reitfolio

import (
	"math"
	"testing"
)

func almost(got, want float64) bool { return math.Abs(got-want) < 1e-9 }

func TestPosition_YieldFallsBackToDividendYield(t *testing.T) {
	pos := NewPosition("O", "Realty Income")
	if err := pos.Add(NewBuy(day("2024-01-01"), "O", Q(10), USD(40))); err != nil {
		t.Fatal(err)
	}
	// No annual dividend from the provider, only a yield and a price: the
	// per-share dividend is estimated as yield * price.
	pos.ApplyQuote(Quote{Ticker: "O", Price: Float(50), DividendYield: Float(6.0)})

	m := pos.Metrics()
	if !almost(m.YieldOnCost, 7.5) {
		t.Errorf("YieldOnCost = %v, want 7.5", m.YieldOnCost)
	}
	if got, want := m.AnnualIncome, USD(30); !got.Equal(want) {
		t.Errorf("AnnualIncome = %s, want %s", got, want)
	}
}

func TestPosition_YieldPrefersFetchedAnnualDividend(t *testing.T) {
	pos := NewPosition("O", "Realty Income")
	if err := pos.Add(NewBuy(day("2024-01-01"), "O", Q(10), USD(40))); err != nil {
		t.Fatal(err)
	}
	pos.ApplyQuote(Quote{Ticker: "O", Price: Float(50), DividendYield: Float(6.0), AnnualDividend: Float(2.4)})

	m := pos.Metrics()
	if !almost(m.YieldOnCost, 6.0) {
		t.Errorf("YieldOnCost = %v, want 6.0", m.YieldOnCost)
	}
	if got, want := m.AnnualIncome, USD(24); !got.Equal(want) {
		t.Errorf("AnnualIncome = %s, want %s", got, want)
	}
}

func TestPosition_MetricsEmptyPosition(t *testing.T) {
	pos := NewPosition("O", "")
	m := pos.Metrics()
	if !m.Shares.IsZero() || !m.AverageCost.IsZero() || m.YieldOnCost != 0 {
		t.Errorf("empty position metrics = %+v, want all zero", m)
	}
}

func TestPosition_AverageCostAndProfitLoss(t *testing.T) {
	pos := NewPosition("O", "")
	if err := pos.Add(NewBuy(day("2024-01-01"), "O", Q(10), USD(40))); err != nil {
		t.Fatal(err)
	}
	if err := pos.Add(NewBuy(day("2024-02-01"), "O", Q(10), USD(60))); err != nil {
		t.Fatal(err)
	}
	pos.SetPrice(USD(55))

	m := pos.Metrics()
	if got, want := m.AverageCost, USD(50); !got.Equal(want) {
		t.Errorf("AverageCost = %s, want %s", got, want)
	}
	if got, want := m.ProfitLoss, USD(100); !got.Equal(want) {
		t.Errorf("ProfitLoss = %s, want %s", got, want)
	}
	if got, want := m.PositionValue, USD(1100); !got.Equal(want) {
		t.Errorf("PositionValue = %s, want %s", got, want)
	}
}

func TestPosition_PremiumDiscountToNAV(t *testing.T) {
	pos := NewPosition("O", "")
	if err := pos.Add(NewBuy(day("2024-01-01"), "O", Q(1), USD(80))); err != nil {
		t.Fatal(err)
	}
	pos.SetPrice(USD(80))
	pos.SetConsensusNAV(USD(100))

	m := pos.Metrics()
	if !almost(m.PremiumDiscount, 20) {
		t.Errorf("PremiumDiscount = %v, want 20 (trading at a discount)", m.PremiumDiscount)
	}
}

func TestPosition_ApplyQuoteKeepsAbsentFields(t *testing.T) {
	pos := NewPosition("O", "")
	pos.ApplyQuote(Quote{Ticker: "O", Price: Float(50), DividendYield: Float(6.0)})
	// A later quote carrying only a price must not clear the yield.
	pos.ApplyQuote(Quote{Ticker: "O", Price: Float(52)})

	price, ok := pos.Price()
	if !ok || !price.Equal(USD(52)) {
		t.Errorf("Price = %s, %v, want 52, true", price, ok)
	}
	yield, ok := pos.DividendYield()
	if !ok || yield != 6.0 {
		t.Errorf("DividendYield = %v, %v, want 6.0, true", yield, ok)
	}
}

func TestPosition_NeverFetchedReadsAsUnknown(t *testing.T) {
	pos := NewPosition("O", "")
	if _, ok := pos.Price(); ok {
		t.Error("Price reported observed on a fresh position")
	}
	if _, ok := pos.DividendYield(); ok {
		t.Error("DividendYield reported observed on a fresh position")
	}
}

func TestPosition_AddRejectsForeignTicker(t *testing.T) {
	pos := NewPosition("O", "")
	if err := pos.Add(NewBuy(day("2024-01-01"), "SPG", Q(1), USD(10))); err == nil {
		t.Error("Add accepted a transaction for another ticker")
	}
}

func TestPosition_TransactionsSortedByDate(t *testing.T) {
	pos := NewPosition("O", "")
	for _, tx := range []Transaction{
		NewBuy(day("2024-03-01"), "O", Q(1), USD(10)),
		NewBuy(day("2024-01-01"), "O", Q(2), USD(10)),
		NewBuy(day("2024-02-01"), "O", Q(3), USD(10)),
	} {
		if err := pos.Add(tx); err != nil {
			t.Fatal(err)
		}
	}
	txs := pos.Transactions()
	for i := 1; i < len(txs); i++ {
		if txs[i].Date.Before(txs[i-1].Date) {
			t.Fatalf("transactions out of order: %s before %s", txs[i].Date, txs[i-1].Date)
		}
	}
	if !txs[0].Shares.Equal(Q(2)) {
		t.Errorf("first transaction shares = %s, want 2", txs[0].Shares)
	}
}

func TestPosition_DeleteOutOfRange(t *testing.T) {
	pos := NewPosition("O", "")
	if err := pos.Delete(0); err == nil {
		t.Error("Delete on an empty position did not fail")
	}
}

func TestPosition_ScoreIgnoresNonPositive(t *testing.T) {
	pos := NewPosition("O", "")
	pos.SetScore(85)
	pos.SetScore(0)
	pos.SetScore(-1)
	if pos.Score() != 85 {
		t.Errorf("Score = %d, want 85", pos.Score())
	}
}
