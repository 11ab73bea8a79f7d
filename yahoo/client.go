// Package yahoo fetches market data from the Yahoo Finance v8 chart API.
package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"

	"github.com/etnz/reitfolio"
)

// DefaultBaseURL is the public Yahoo Finance query endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches quotes and FX rates. It implements reitfolio.Quoter and
// reitfolio.RateSource.
type Client struct {
	// BaseURL can be pointed at a test server. Defaults to DefaultBaseURL.
	BaseURL string

	http *http.Client
	log  zerolog.Logger
}

// New returns a client with a sane request timeout.
func New(log zerolog.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log.With().Str("client", "yahoo").Logger(),
	}
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

// Quote fetches one ticker from the chart endpoint: the current price and name
// from the chart meta, and five years of dividend events to derive the annual
// dividend, the yield and the dividend growth rates.
func (c *Client) Quote(ctx context.Context, ticker string) (reitfolio.Quote, error) {
	jobj, err := c.chart(ctx, ticker, "5y")
	if err != nil {
		return reitfolio.Quote{}, fmt.Errorf("fetching %q: %w", ticker, err)
	}

	q := reitfolio.Quote{Ticker: ticker}

	price, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return reitfolio.Quote{}, fmt.Errorf("no price for %q: %w", ticker, err)
	}
	q.Price = reitfolio.Float(price)

	if name, err := jstring(jobj, "$.chart.result[0].meta.shortName"); err == nil {
		q.Name = name
	} else if name, err := jstring(jobj, "$.chart.result[0].meta.longName"); err == nil {
		q.Name = name
	}

	divs := dividendEvents(jobj)
	c.log.Debug().Str("ticker", ticker).Int("dividends", len(divs)).Msg("chart fetched")

	if annual := trailingAnnual(divs, time.Now()); annual > 0 {
		q.AnnualDividend = reitfolio.Float(annual)
		if price > 0 {
			q.DividendYield = reitfolio.Float(annual / price * 100)
		}
	}
	g3, g5, ok := dividendGrowth(divs)
	if ok {
		q.Growth3Y = reitfolio.Float(g3)
		q.Growth5Y = reitfolio.Float(g5)
	}
	return q, nil
}

// Rate returns the latest conversion rate from one currency to another, using
// the chart meta of the FX pair symbol (for instance "EURUSD=X").
func (c *Client) Rate(ctx context.Context, from, to string) (float64, error) {
	if from == to {
		return 1, nil
	}
	pair := from + to + "=X"
	jobj, err := c.chart(ctx, pair, "1d")
	if err != nil {
		return 0, fmt.Errorf("fetching rate %s/%s: %w", from, to, err)
	}
	rate, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil || rate <= 0 {
		return 0, fmt.Errorf("no rate for %s/%s", from, to)
	}
	return rate, nil
}

// chart GETs the v8 chart document for a symbol.
func (c *Client) chart(ctx context.Context, symbol, span string) (any, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s&events=div",
		c.base(), url.PathEscape(symbol), span)

	var jobj any
	if err := c.jwget(ctx, addr, &jobj); err != nil {
		return nil, err
	}
	if jerr, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && jerr != nil {
		return nil, fmt.Errorf("chart api: %v", jerr)
	}
	return jobj, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the
// provided data structure.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// Yahoo rejects requests without a browser-looking agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// jfloat extracts a float value at a jsonpath.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list, keep the first.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("parsing %q: not a float: %v", path, jval)
	}
	return val, nil
}

// jstring extracts a string value at a jsonpath.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(string)
	if !ok || val == "" {
		return "", fmt.Errorf("parsing %q: not a string: %v", path, jval)
	}
	return val, nil
}

// dividendEvents extracts the dividend event list from a chart document. A
// missing events section is not an error, plenty of symbols pay nothing.
func dividendEvents(jobj any) []dividend {
	jval, err := jsonpath.Get("$.chart.result[0].events.dividends", jobj)
	if err != nil {
		return nil
	}
	events, ok := jval.(map[string]any)
	if !ok {
		return nil
	}
	divs := make([]dividend, 0, len(events))
	for _, jev := range events {
		ev, ok := jev.(map[string]any)
		if !ok {
			continue
		}
		amount, _ := ev["amount"].(float64)
		ts, _ := ev["date"].(float64)
		if amount <= 0 || ts <= 0 {
			continue
		}
		divs = append(divs, dividend{when: time.Unix(int64(ts), 0).UTC(), amount: amount})
	}
	return divs
}
