package rank

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/quantlabs/atmrank/bs"
	"github.com/quantlabs/atmrank/data"
	"github.com/quantlabs/atmrank/vol"
)

// Model constants shared by every ranking run.
const (
	ContractSize = 100 // shares per option contract
	MaturityDays = 30  // fixed option tenor in days
	TopN         = 25  // size of the ranked table
)

// TimeToExpiry is the fixed 30-day tenor expressed in years.
const TimeToExpiry = float64(MaturityDays) / 365.0

// PriceSource returns the chronological adjusted closes for a symbol.
type PriceSource interface {
	DailyCloses(ctx context.Context, symbol string, days int) (data.PriceSeries, error)
}

// TickerRecord is one row of the ranked table.
type TickerRecord struct {
	Ticker     string  `json:"ticker"`
	Spot       float64 `json:"spot"`
	Volatility float64 `json:"volatility"`
	CallPrice  float64 `json:"call_price"`
	Delta      float64 `json:"delta"`
	Vega       float64 `json:"vega"`
	Contracts  int     `json:"contracts_affordable"`
}

type Config struct {
	Window     int // days of history fetched per ticker
	MinHistory int // observations required before a ticker is priced
	// Progress, when set, is called once per ticker as soon as its pipeline
	// completes, whatever the outcome.
	Progress func(symbol string)
}

type Ranker struct {
	src PriceSource
	cfg Config
}

func New(src PriceSource, cfg Config) *Ranker {
	if cfg.Window <= 0 {
		cfg.Window = MaturityDays
	}
	if cfg.MinHistory < 2 {
		cfg.MinHistory = 2
	}
	return &Ranker{src: src, cfg: cfg}
}

// ComputeRankedTable runs the per-ticker pipeline (fetch, log returns,
// volatility, price, affordability) for every ticker, sorts the survivors
// by theoretical call value descending and truncates to the top 25. Tickers
// that fail upstream are dropped from the table and reported in the second
// return value so the caller can log them; one ticker's failure never fails
// the batch, and an empty table is a valid outcome.
func (r *Ranker) ComputeRankedTable(ctx context.Context, tickers []string, riskFreeRate, totalCapital float64) ([]TickerRecord, map[string]error) {
	type outcome struct {
		idx int
		rec TickerRecord
		err error
	}

	ch := make(chan outcome, len(tickers))
	for i := range tickers {
		go func(idx int, symbol string) {
			rec, err := r.one(ctx, symbol, riskFreeRate, totalCapital)
			ch <- outcome{idx: idx, rec: rec, err: err}
		}(i, tickers[i])
	}

	failures := map[string]error{}
	results := make([]outcome, 0, len(tickers))
	for range tickers {
		out := <-ch
		if r.cfg.Progress != nil {
			r.cfg.Progress(tickers[out.idx])
		}
		if out.err != nil {
			failures[tickers[out.idx]] = out.err
			continue
		}
		results = append(results, out)
	}

	// Restore submission order so equal call prices rank deterministically.
	sort.Slice(results, func(i, j int) bool { return results[i].idx < results[j].idx })

	records := make([]TickerRecord, len(results))
	for i := range results {
		records[i] = results[i].rec
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].CallPrice > records[j].CallPrice })

	if len(records) > TopN {
		records = records[:TopN]
	}
	return records, failures
}

func (r *Ranker) one(ctx context.Context, symbol string, riskFreeRate, totalCapital float64) (TickerRecord, error) {
	series, err := r.src.DailyCloses(ctx, symbol, r.cfg.Window)
	if err != nil {
		return TickerRecord{}, fmt.Errorf("fetch %v: %w", symbol, err)
	}
	if len(series) < r.cfg.MinHistory {
		return TickerRecord{}, fmt.Errorf("%v has %v of %v required observations: %w", symbol, len(series), r.cfg.MinHistory, vol.ErrInsufficientData)
	}

	returns, err := vol.LogReturns(series.Closes())
	if err != nil {
		return TickerRecord{}, fmt.Errorf("%v returns: %w", symbol, err)
	}
	sigma, err := vol.Annualized(returns)
	if err != nil {
		return TickerRecord{}, fmt.Errorf("%v volatility: %w", symbol, err)
	}

	// At-the-money 30-day call on the latest close.
	spot := series[len(series)-1].AdjClose
	out, err := bs.Call(bs.Inputs{Spot: spot, Strike: spot, Vol: sigma, Rate: riskFreeRate, Expiry: TimeToExpiry})
	if err != nil {
		return TickerRecord{}, fmt.Errorf("%v pricing: %w", symbol, err)
	}

	return TickerRecord{
		Ticker:     symbol,
		Spot:       spot,
		Volatility: sigma,
		CallPrice:  out.Call,
		Delta:      out.Delta,
		Vega:       out.Vega,
		Contracts:  Contracts(totalCapital, spot),
	}, nil
}

// Contracts is the number of whole option contracts a capital amount covers
// at the spot-times-100 contract notional. Never negative.
func Contracts(totalCapital, spot float64) int {
	if totalCapital <= 0 || spot <= 0 {
		return 0
	}
	return int(math.Floor(totalCapital / (spot * ContractSize)))
}
