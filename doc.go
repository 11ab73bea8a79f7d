// Package reitfolio implements a portfolio tracker for Real Estate
// Investment Trusts.
//
// The core is the position accounting engine: a FIFO lot queue turns the
// ordered list of transactions of a security (buys, sells, no-cost share
// grants, stock splits) into derived metrics: shares held, average cost,
// yield on cost, annual income, profit/loss, premium/discount to consensus
// NAV. The Portfolio aggregates those metrics across positions with
// value-weighted yields and dividend-growth averages, and round-trips through
// a single JSON document that keeps a legacy NAV side-channel intact.
//
// Market data (price, dividends, growth), quality scores and FX rates come
// from external providers behind the Quoter, Scorer and RateSource
// interfaces; the Refresher fetches them concurrently and applies results
// with per-ticker generations so a superseded fetch round can never
// overwrite a newer one.
package reitfolio
