package yahoo

import (
	"math"
	"sort"
	"time"
)

// dividend is a single per-share distribution.
type dividend struct {
	when   time.Time
	amount float64
}

// trailingAnnual sums the distributions of the last 365 days, the per-share
// annual dividend at the current payout rate.
func trailingAnnual(divs []dividend, now time.Time) float64 {
	cutoff := now.AddDate(-1, 0, 0)
	var sum float64
	for _, d := range divs {
		if d.when.After(cutoff) && !d.when.After(now) {
			sum += d.amount
		}
	}
	return sum
}

// dividendGrowth derives the 3 and 5 year dividend CAGR from the distribution
// history. It needs at least a year's worth of payments (12) to detect the
// payout frequency; with less history it reports ok=false and growth stays
// unknown rather than zero.
//
// The current calendar year is usually incomplete, so its total is annualized
// by payout frequency: a monthly payer (10+ distinct months in the trailing
// year) scales by 12/months-paid, anything else is treated as quarterly and
// scales by 4/months-paid. The CAGR for a horizon is only computed when the
// base year has payments on record.
func dividendGrowth(divs []dividend) (g3, g5 float64, ok bool) {
	if len(divs) < 12 {
		return 0, 0, false
	}
	sorted := make([]dividend, len(divs))
	copy(sorted, divs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].when.Before(sorted[j].when) })

	byYear := make(map[int]float64)
	monthsByYear := make(map[int]map[time.Month]bool)
	for _, d := range sorted {
		y := d.when.Year()
		byYear[y] += d.amount
		if monthsByYear[y] == nil {
			monthsByYear[y] = make(map[time.Month]bool)
		}
		monthsByYear[y][d.when.Month()] = true
	}

	last := sorted[len(sorted)-1].when
	trailingMonths := make(map[time.Month]bool)
	for _, d := range sorted {
		if d.when.After(last.AddDate(-1, 0, 0)) {
			trailingMonths[d.when.Month()] = true
		}
	}
	monthly := len(trailingMonths) >= 10

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	currentYear := years[len(years)-1]
	current := byYear[currentYear]
	if paid := len(monthsByYear[currentYear]); paid > 0 {
		if monthly && paid < 12 {
			current *= 12 / float64(paid)
		} else if !monthly && paid < 4 {
			current *= 4 / float64(paid)
		}
	}

	if len(years) >= 3 {
		if base, found := byYear[currentYear-3]; found && base > 0 {
			g3 = (math.Pow(current/base, 1.0/3) - 1) * 100
		}
	}
	if len(years) >= 5 {
		if base, found := byYear[currentYear-5]; found && base > 0 {
			g5 = (math.Pow(current/base, 1.0/5) - 1) * 100
		}
	}
	return g3, g5, true
}
