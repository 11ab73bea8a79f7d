package reitfolio

import "strings"

// reitSectors classifies well-known REIT tickers.
var reitSectors = map[string]string{
	// Cell tower and data center REITs
	"AMT":  "Infrastructure",
	"CCI":  "Infrastructure",
	"EQIX": "Data Centers",
	"DLR":  "Data Centers",
	"CONE": "Data Centers",

	// Residential REITs
	"EQR": "Residential",
	"AVB": "Residential",
	"ESS": "Residential",
	"MAA": "Residential",
	"UDR": "Residential",
	"CPT": "Residential",

	// Healthcare REITs
	"VTR":  "Healthcare",
	"WELL": "Healthcare",
	"HCP":  "Healthcare",
	"OHI":  "Healthcare",
	"HR":   "Healthcare",

	// Industrial REITs
	"PLD":  "Industrial",
	"DRE":  "Industrial",
	"EGP":  "Industrial",
	"FR":   "Industrial",
	"STAG": "Industrial",
	"TRNO": "Industrial",

	// Retail REITs
	"SPG": "Retail",
	"REG": "Retail",
	"FRT": "Retail",
	"KIM": "Retail",
	"BRX": "Retail",

	// Office REITs
	"BXP":  "Office",
	"VNO":  "Office",
	"SLG":  "Office",
	"PGRE": "Office",
	"HIW":  "Office",

	// Mortgage REITs
	"NLY":  "Mortgage",
	"AGNC": "Mortgage",
	"STWD": "Mortgage",

	// Triple net lease REITs
	"O":    "Triple Net",
	"WPC":  "Triple Net",
	"EPRT": "Triple Net",
	"NNN":  "Triple Net",

	// Storage REITs
	"PSA":  "Storage",
	"EXR":  "Storage",
	"CUBE": "Storage",
	"LSI":  "Storage",
}

// sectorKeywords maps a sector to the words that suggest it in a company
// name, used as a fallback for tickers missing from the table.
var sectorKeywords = []struct {
	sector   string
	keywords []string
}{
	{"Residential", []string{"apartment", "residential", "housing", "home", "multifamily"}},
	{"Office", []string{"office", "workplace", "corporate"}},
	{"Retail", []string{"retail", "mall", "shopping", "store", "outlet"}},
	{"Industrial", []string{"industrial", "logistic", "warehouse", "manufacturing"}},
	{"Healthcare", []string{"healthcare", "medical", "hospital", "senior", "care", "clinic"}},
	{"Hotel", []string{"hotel", "resort", "lodging", "hospitality"}},
	{"Storage", []string{"storage", "self storage", "self-storage"}},
	{"Data Centers", []string{"data center", "datacenter", "server", "computing", "digital"}},
	{"Infrastructure", []string{"infrastructure", "tower", "communication", "telecom", "utility"}},
	{"Triple Net", []string{"triple", "net lease", "freestanding", "income"}},
	{"Mortgage", []string{"mortgage", "loan", "debt", "finance"}},
}

// Sector classifies a position: known tickers first, then keywords in the
// company name, then "Other".
func Sector(ticker, name string) string {
	if sector, ok := reitSectors[ticker]; ok {
		return sector
	}
	name = strings.ToLower(name)
	for _, entry := range sectorKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(name, keyword) {
				return entry.sector
			}
		}
	}
	return "Other"
}

// SectorAllocation sums position market values by sector over all positions
// currently holding shares.
func (p *Portfolio) SectorAllocation() map[string]Money {
	allocation := make(map[string]Money)
	for _, pos := range p.positions {
		m := pos.Metrics()
		if !m.Shares.IsPositive() {
			continue
		}
		sector := Sector(pos.ticker, pos.name)
		allocation[sector] = allocation[sector].Add(m.PositionValue)
	}
	return allocation
}
