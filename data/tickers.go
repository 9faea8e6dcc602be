package data

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
)

// Constituents downloads the S&P 500 membership list and returns the symbols
// in index order.
func (c *Client) Constituents(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %v from %v", resp.Status, req.URL.Host)
	}

	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("constituents list is empty")
	}

	col := -1
	for i, name := range records[0] {
		if name == "Symbol" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("constituents list has no Symbol column")
	}

	var symbols []string
	for _, row := range records[1:] {
		if col < len(row) && row[col] != "" {
			symbols = append(symbols, row[col])
		}
	}
	return symbols, nil
}
