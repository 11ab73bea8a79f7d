// Package alreits scrapes REIT quality scores from alreits.com.
package alreits

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public alreits site.
const DefaultBaseURL = "https://alreits.com"

// scorePattern matches the rendered score element. The site is a React app,
// the class name is generated but its ScoreTotal__Score prefix is stable.
var scorePattern = regexp.MustCompile(`ScoreTotal__Score[^>]*>\s*(\d+)\s*<`)

// Client fetches quality scores. It implements reitfolio.Scorer. A valid
// score is a positive integer; anything else is an error so a failed scrape
// never clears a previously known score.
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
		log:  log.With().Str("client", "alreits").Logger(),
	}
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

// Score fetches the REIT page and extracts the total score from the HTML.
func (c *Client) Score(ctx context.Context, ticker string) (int, error) {
	addr := c.base() + "/reits/" + ticker

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching score for %q: %w", ticker, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading score page for %q: %w", ticker, err)
	}

	m := scorePattern.FindSubmatch(body)
	if m == nil {
		return 0, fmt.Errorf("no score found on page for %q", ticker)
	}
	score, err := strconv.Atoi(string(m[1]))
	if err != nil || score <= 0 {
		return 0, fmt.Errorf("invalid score %q for %q", m[1], ticker)
	}
	c.log.Debug().Str("ticker", ticker).Int("score", score).Msg("score scraped")
	return score, nil
}
