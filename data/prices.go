package data

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// DailyCloses returns the last days adjusted closes for a symbol in
// chronological order. Alpha Vantage keys the series by date string, so
// observations are parsed, sorted and truncated here; malformed rows are
// skipped rather than failing the whole series.
func (c *Client) DailyCloses(ctx context.Context, symbol string, days int) (PriceSeries, error) {
	url := fmt.Sprintf("%v/query?function=TIME_SERIES_DAILY_ADJUSTED&symbol=%v&outputsize=compact&apikey=%v", c.alphaURL, symbol, c.alphaKey)
	px, err := get(c, ctx, url, AlphaData{})
	if err != nil {
		return nil, err
	}
	if len(px.Hist) == 0 {
		return nil, fmt.Errorf("no daily series for %v", symbol)
	}

	series := make(PriceSeries, 0, len(px.Hist))
	for d, h := range px.Hist {
		t, err := time.Parse(Layout, d)
		if err != nil {
			continue
		}
		p, err := strconv.ParseFloat(h.AdjClose, 64)
		if err != nil || p <= 0 {
			continue
		}
		series = append(series, Point{Date: t, AdjClose: p})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })

	if days > 0 && len(series) > days {
		series = series[len(series)-days:]
	}
	return series, nil
}
