package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const Layout = "2006-01-02"

const (
	alphaVantageURL = "https://www.alphavantage.co"
	fredURL         = "https://api.stlouisfed.org"
	constituentsURL = "https://datahub.io/core/s-and-p-500-companies/r/constituents.csv"
)

// Client fetches daily closes from Alpha Vantage and the short-term treasury
// yield from FRED, and converts both into the strict types the pricing
// pipeline consumes.
type Client struct {
	alphaURL string
	fredURL  string
	listURL  string
	alphaKey string
	fredKey  string
	limiter  *rate.Limiter
	http     *http.Client
}

func NewClient(alphaKey, fredKey string) *Client {
	return &Client{
		alphaURL: alphaVantageURL,
		fredURL:  fredURL,
		listURL:  constituentsURL,
		alphaKey: alphaKey,
		fredKey:  fredKey,
		// Alpha Vantage throttles free keys; space requests out rather than
		// sleeping between them.
		limiter: rate.NewLimiter(rate.Every(800*time.Millisecond), 1),
		http:    http.DefaultClient,
	}
}

// helper function to run a GET request and decode the JSON body into target
func get[DataType AlphaData | FredData](c *Client, ctx context.Context, url string, target DataType) (result DataType, err error) {
	if err = c.limiter.Wait(ctx); err != nil {
		return target, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return target, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return target, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return target, fmt.Errorf("unexpected status %v from %v", resp.Status, req.URL.Host)
	}

	err = json.NewDecoder(resp.Body).Decode(&target)
	if err != nil {
		return
	}
	result = target
	return result, nil
}
