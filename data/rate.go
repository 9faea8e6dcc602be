package data

import (
	"context"
	"fmt"
	"strconv"
)

// FallbackRate is used when FRED is unreachable or the series is empty.
const FallbackRate = 0.05

// RiskFreeRate returns the latest one-month treasury yield (FRED series
// DGS1MO) as a decimal. FRED reports market holidays as ".", so the scan
// walks back to the most recent numeric observation.
func (c *Client) RiskFreeRate(ctx context.Context) float64 {
	url := fmt.Sprintf("%v/fred/series/observations?series_id=DGS1MO&api_key=%v&file_type=json", c.fredURL, c.fredKey)
	data, err := get(c, ctx, url, FredData{})
	if err != nil {
		return FallbackRate
	}
	for i := len(data.Observations) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(data.Observations[i].Value, 64)
		if err == nil {
			return v / 100
		}
	}
	return FallbackRate
}
