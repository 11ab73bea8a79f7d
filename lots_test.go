package reitfolio

import "testing"

func day(s string) Date { return MustParseDate(s) }

func replay(txs ...Transaction) lots {
	var queue lots
	for _, tx := range txs {
		queue = queue.apply(tx)
	}
	return queue
}

func TestLots_FIFOOrdering(t *testing.T) {
	queue := replay(
		NewBuy(day("2024-01-01"), "O", Q(10), USD(10)),
		NewBuy(day("2024-02-01"), "O", Q(10), USD(20)),
		NewSell(day("2024-03-01"), "O", Q(15), USD(25)),
	)

	if len(queue) != 1 {
		t.Fatalf("remaining lots = %d, want 1", len(queue))
	}
	if got, want := queue[0].Shares, Q(5); !got.Equal(want) {
		t.Errorf("remaining lot shares = %s, want %s", got, want)
	}
	if got, want := queue[0].Price, USD(20); !got.Equal(want) {
		t.Errorf("remaining lot price = %s, want %s", got, want)
	}
	if got, want := queue.shares(), Q(5); !got.Equal(want) {
		t.Errorf("shares() = %s, want %s", got, want)
	}
	if got, want := queue.cost(), USD(100); !got.Equal(want) {
		t.Errorf("cost() = %s, want %s", got, want)
	}
}

func TestLots_NoCostDilutesAverage(t *testing.T) {
	queue := replay(
		NewBuy(day("2024-01-01"), "O", Q(10), USD(10)),
		NewNoCost(day("2024-02-01"), "O", Q(10)),
	)

	if got, want := queue.shares(), Q(20); !got.Equal(want) {
		t.Errorf("shares() = %s, want %s", got, want)
	}
	// The grant adds shares but no cost.
	if got, want := queue.cost(), USD(100); !got.Equal(want) {
		t.Errorf("cost() = %s, want %s", got, want)
	}
}

// Selling more shares than held empties the queue without error. This floor
// is deliberate: bad data is clamped, not rejected.
func TestLots_OversellFloorsAtZero(t *testing.T) {
	queue := replay(
		NewBuy(day("2024-01-01"), "O", Q(5), USD(10)),
		NewSell(day("2024-02-01"), "O", Q(10), USD(12)),
	)

	if len(queue) != 0 {
		t.Fatalf("remaining lots = %d, want 0", len(queue))
	}
	if !queue.shares().IsZero() {
		t.Errorf("shares() = %s, want 0", queue.shares())
	}
	if !queue.cost().IsZero() {
		t.Errorf("cost() = %s, want 0", queue.cost())
	}
}

func TestLots_PartialHeadLotConsumption(t *testing.T) {
	queue := replay(
		NewBuy(day("2024-01-01"), "O", Q(10), USD(10)),
		NewBuy(day("2024-02-01"), "O", Q(10), USD(20)),
		NewSell(day("2024-03-01"), "O", Q(4), USD(25)),
	)

	if len(queue) != 2 {
		t.Fatalf("remaining lots = %d, want 2", len(queue))
	}
	if got, want := queue[0].Shares, Q(6); !got.Equal(want) {
		t.Errorf("head lot shares = %s, want %s", got, want)
	}
	if got, want := queue.cost(), USD(260); !got.Equal(want) {
		t.Errorf("cost() = %s, want %s", got, want)
	}
}
