package reitfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store persists a portfolio as a single JSON document at an explicit path.
// The accounting engine itself never knows the storage location.
//
// The document carries a NAV side-channel (nav_data, nav_report_date) written
// by older tools. Consensus NAV is first-class on Position in memory; the
// store flattens it back into the side-channel on save and merges any
// file-only entries so a save never loses NAV values for tickers absent from
// the in-memory portfolio.
type Store struct {
	Path string
}

// NewStore returns a store reading and writing the given document path.
func NewStore(path string) *Store { return &Store{Path: path} }

// positionDoc is the document representation of a position.
type positionDoc struct {
	Ticker           string        `json:"ticker"`
	Name             string        `json:"name"`
	Transactions     []Transaction `json:"transactions"`
	CurrentPrice     float64       `json:"current_price"`
	DividendYield    float64       `json:"dividend_yield"`
	AnnualDividend   float64       `json:"annual_dividend"`
	AlreitsScore     int           `json:"alreits_score"`
	ConsensusNAV     float64       `json:"consensus_nav"`
	DividendGrowth3Y float64       `json:"dividend_growth_3y"`
	DividendGrowth5Y float64       `json:"dividend_growth_5y"`
}

// MarshalJSON writes the position in the historical document field order.
func (d positionDoc) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", d.Ticker)
	w.Append("name", d.Name)
	w.Append("transactions", d.Transactions)
	w.Append("current_price", d.CurrentPrice)
	w.Append("dividend_yield", d.DividendYield)
	w.Append("annual_dividend", d.AnnualDividend)
	w.Append("alreits_score", d.AlreitsScore)
	w.Append("consensus_nav", d.ConsensusNAV)
	w.Append("dividend_growth_3y", d.DividendGrowth3Y)
	w.Append("dividend_growth_5y", d.DividendGrowth5Y)
	return w.MarshalJSON()
}

// document is the top-level persisted structure.
type document struct {
	Positions     map[string]positionDoc `json:"positions"`
	NavData       map[string]float64     `json:"nav_data"`
	NavReportDate string                 `json:"nav_report_date"`
}

// MarshalJSON writes positions and nav_data with sorted keys for a stable,
// diffable document.
func (d document) MarshalJSON() ([]byte, error) {
	var positions jsonObjectWriter
	for _, ticker := range sortedKeys(d.Positions) {
		positions.Append(ticker, d.Positions[ticker])
	}
	var w jsonObjectWriter
	w.Append("positions", &positions)
	if len(d.NavData) > 0 {
		var nav jsonObjectWriter
		for _, ticker := range sortedKeys(d.NavData) {
			nav.Append(ticker, d.NavData[ticker])
		}
		w.Append("nav_data", &nav)
	}
	w.Optional("nav_report_date", d.NavReportDate)
	return w.MarshalJSON()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// encodePosition flattens a position into its document form. Unknown market
// fields are written as zero, matching the historical format.
func encodePosition(p *Position) positionDoc {
	price, _ := p.Price()
	annual, _ := p.AnnualDividend()
	return positionDoc{
		Ticker:           p.Ticker(),
		Name:             p.Name(),
		Transactions:     p.Transactions(),
		CurrentPrice:     price.InexactFloat64(),
		DividendYield:    p.dividendYield.or(0),
		AnnualDividend:   annual.InexactFloat64(),
		AlreitsScore:     p.Score(),
		ConsensusNAV:     p.ConsensusNAV().InexactFloat64(),
		DividendGrowth3Y: p.growth3Y.or(0),
		DividendGrowth5Y: p.growth5Y.or(0),
	}
}

// decodePosition rebuilds a position from its document form. A zero in the
// document reads back as "never observed": the historical format cannot tell
// the two apart.
func decodePosition(ticker string, d positionDoc) (*Position, error) {
	if d.Ticker == "" {
		d.Ticker = ticker
	}
	if d.Ticker != ticker {
		return nil, fmt.Errorf("position keyed %q declares ticker %q", ticker, d.Ticker)
	}
	pos := NewPosition(d.Ticker, d.Name)
	for _, tx := range d.Transactions {
		if err := pos.Add(tx); err != nil {
			return nil, fmt.Errorf("position %q: %w", ticker, err)
		}
	}
	if d.CurrentPrice > 0 {
		pos.price.set(USD(d.CurrentPrice))
	}
	if d.DividendYield > 0 {
		pos.dividendYield.set(d.DividendYield)
	}
	if d.AnnualDividend > 0 {
		pos.annualDividend.set(USD(d.AnnualDividend))
	}
	if d.DividendGrowth3Y != 0 {
		pos.growth3Y.set(d.DividendGrowth3Y)
	}
	if d.DividendGrowth5Y != 0 {
		pos.growth5Y.set(d.DividendGrowth5Y)
	}
	pos.score = d.AlreitsScore
	if d.ConsensusNAV > 0 {
		pos.nav = USD(d.ConsensusNAV)
	}
	return pos, nil
}

// Decode rebuilds a portfolio from a persisted document.
func Decode(data []byte) (*Portfolio, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing portfolio document: %w", err)
	}
	p := NewPortfolio()
	for ticker, pd := range doc.Positions {
		pos, err := decodePosition(ticker, pd)
		if err != nil {
			return nil, err
		}
		p.AddPosition(pos)
	}
	// The side-channel is authoritative for consensus NAV on load.
	for ticker, nav := range doc.NavData {
		if pos := p.Position(ticker); pos != nil && nav > 0 {
			pos.SetConsensusNAV(USD(nav))
		}
	}
	if doc.NavReportDate != "" {
		if on, err := ParseReportDate(doc.NavReportDate); err == nil {
			p.SetNAVReportDate(on)
		}
	}
	return p, nil
}

// Encode serializes a portfolio into the persisted document. existing, when
// non-nil, is the previously persisted document whose NAV side-channel is
// merged in: file-only tickers are preserved, in-memory values win.
func Encode(p *Portfolio, existing *document) ([]byte, error) {
	doc := document{Positions: make(map[string]positionDoc)}
	navData := make(map[string]float64)
	if existing != nil {
		for ticker, nav := range existing.NavData {
			navData[ticker] = nav
		}
		doc.NavReportDate = existing.NavReportDate
	}
	for ticker, pos := range p.positions {
		doc.Positions[ticker] = encodePosition(pos)
		if nav := pos.ConsensusNAV(); nav.IsPositive() {
			navData[ticker] = nav.InexactFloat64()
		}
	}
	doc.NavData = navData
	if !p.navReportDate.IsZero() {
		doc.NavReportDate = p.navReportDate.ReportDate()
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Load reads the portfolio document. A missing file yields an empty
// portfolio. A corrupted file is renamed aside with a .bak suffix and an
// empty portfolio is substituted; the returned error describes the backup so
// the caller can report it, but the portfolio is always usable.
func (s *Store) Load() (*Portfolio, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return NewPortfolio(), fmt.Errorf("reading portfolio file: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		backup := s.Path + ".bak"
		if renameErr := os.Rename(s.Path, backup); renameErr == nil {
			return NewPortfolio(), fmt.Errorf("corrupted portfolio file backed up as %q: %w", backup, err)
		}
		return NewPortfolio(), fmt.Errorf("corrupted portfolio file %q: %w", s.Path, err)
	}
	return p, nil
}

// Save writes the portfolio document, merging the NAV side-channel of any
// existing document first. The write is atomic: a temp file in the same
// directory is renamed over the target, so a concurrent reader never sees a
// torn document.
func (s *Store) Save(p *Portfolio) error {
	var existing *document
	if data, err := os.ReadFile(s.Path); err == nil {
		var doc document
		if err := json.Unmarshal(data, &doc); err == nil {
			existing = &doc
		}
	}

	out, err := Encode(p, existing)
	if err != nil {
		return fmt.Errorf("encoding portfolio: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp portfolio file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("writing portfolio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}
