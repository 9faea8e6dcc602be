package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const alphaPayload = `{
	"Meta Data": {"2. Symbol": "IBM"},
	"Time Series (Daily)": {
		"2024-01-04": {"1. open": "101.0", "5. adjusted close": "100.5"},
		"2024-01-02": {"1. open": "99.0", "5. adjusted close": "100.0"},
		"2024-01-03": {"1. open": "100.0", "5. adjusted close": "101.0"},
		"2024-01-05": {"1. open": "100.0", "5. adjusted close": "bogus"}
	}
}`

const fredPayload = `{
	"observations": [
		{"date": "2024-01-02", "value": "5.49"},
		{"date": "2024-01-03", "value": "5.51"},
		{"date": "2024-01-04", "value": "."}
	]
}`

const constituentsPayload = "Symbol,Name,Sector\nAAPL,Apple Inc.,Information Technology\nMMM,3M,Industrials\nABT,Abbott,Health Care\n"

func testClient(url string) *Client {
	c := NewClient("demo", "demo")
	c.alphaURL = url
	c.fredURL = url
	c.listURL = url
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestDailyCloses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "TIME_SERIES_DAILY_ADJUSTED", r.URL.Query().Get("function"))
		require.Equal(t, "IBM", r.URL.Query().Get("symbol"))
		w.Write([]byte(alphaPayload))
	}))
	defer srv.Close()

	series, err := testClient(srv.URL).DailyCloses(context.Background(), "IBM", 30)
	require.NoError(t, err)

	// The bogus row is skipped, the rest come back chronological.
	require.Len(t, series, 3)
	require.Equal(t, []float64{100.0, 101.0, 100.5}, series.Closes())
	require.True(t, series[0].Date.Before(series[1].Date))
	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), series[0].Date)
}

func TestDailyClosesWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(alphaPayload))
	}))
	defer srv.Close()

	series, err := testClient(srv.URL).DailyCloses(context.Background(), "IBM", 2)
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Equal(t, []float64{101.0, 100.5}, series.Closes())
}

func TestDailyClosesMissingSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "rate limit exceeded"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).DailyCloses(context.Background(), "IBM", 30)
	require.Error(t, err)
}

func TestDailyClosesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).DailyCloses(context.Background(), "IBM", 30)
	require.Error(t, err)
}

func TestRiskFreeRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "DGS1MO", r.URL.Query().Get("series_id"))
		w.Write([]byte(fredPayload))
	}))
	defer srv.Close()

	// The latest observation is the "." holiday marker, so the rate comes
	// from the one before it.
	r := testClient(srv.URL).RiskFreeRate(context.Background())
	require.InDelta(t, 0.0551, r, 1e-12)
}

func TestRiskFreeRateFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	require.InDelta(t, FallbackRate, testClient(srv.URL).RiskFreeRate(context.Background()), 1e-12)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"observations": []}`))
	}))
	defer empty.Close()

	require.InDelta(t, FallbackRate, testClient(empty.URL).RiskFreeRate(context.Background()), 1e-12)
}

func TestConstituents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(constituentsPayload))
	}))
	defer srv.Close()

	symbols, err := testClient(srv.URL).Constituents(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "MMM", "ABT"}, symbols)
}

func TestConstituentsNoSymbolColumn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Name,Sector\nApple,Tech\n"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Constituents(context.Background())
	require.Error(t, err)
}
