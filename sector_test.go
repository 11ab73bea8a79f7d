package reitfolio

import "testing"

func TestSector(t *testing.T) {
	tests := []struct {
		ticker string
		name   string
		want   string
	}{
		{"O", "Realty Income", "Triple Net"},
		{"AMT", "American Tower", "Infrastructure"},
		{"PSA", "Public Storage", "Storage"},
		{"XYZ", "Acme Apartment Communities", "Residential"},
		{"XYZ", "Acme Data Center Trust", "Data Centers"},
		{"XYZ", "Acme Lodging & Resorts", "Hotel"},
		{"XYZ", "Totally Unclassifiable", "Other"},
	}
	for _, tc := range tests {
		if got := Sector(tc.ticker, tc.name); got != tc.want {
			t.Errorf("Sector(%q, %q) = %q, want %q", tc.ticker, tc.name, got, tc.want)
		}
	}
}

func TestSector_TickerTableWinsOverKeywords(t *testing.T) {
	// EQIX is in the table; the name keyword "tower" must not override it.
	if got := Sector("EQIX", "Equinix Tower"); got != "Data Centers" {
		t.Errorf("Sector = %q, want Data Centers", got)
	}
}

func TestPortfolio_SectorAllocation(t *testing.T) {
	p := NewPortfolio()
	for _, tx := range []Transaction{
		NewBuy(day("2024-01-01"), "O", Q(10), USD(50)),
		NewBuy(day("2024-01-01"), "WPC", Q(10), USD(60)),
		NewBuy(day("2024-01-01"), "AMT", Q(5), USD(200)),
	} {
		if err := p.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	p.Position("O").SetPrice(USD(50))
	p.Position("WPC").SetPrice(USD(60))
	p.Position("AMT").SetPrice(USD(200))

	alloc := p.SectorAllocation()
	if got, want := alloc["Triple Net"], USD(1100); !got.Equal(want) {
		t.Errorf("Triple Net = %s, want %s", got, want)
	}
	if got, want := alloc["Infrastructure"], USD(1000); !got.Equal(want) {
		t.Errorf("Infrastructure = %s, want %s", got, want)
	}
}

func TestPortfolio_SectorAllocationSkipsSoldOut(t *testing.T) {
	p := NewPortfolio()
	if err := p.AddTransaction(NewBuy(day("2024-01-01"), "O", Q(10), USD(50))); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTransaction(NewSell(day("2024-02-01"), "O", Q(10), USD(55))); err != nil {
		t.Fatal(err)
	}
	if alloc := p.SectorAllocation(); len(alloc) != 0 {
		t.Errorf("sold-out position allocated: %v", alloc)
	}
}
