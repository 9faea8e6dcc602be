package vol

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDays is the number of trading days per year used to annualize daily
// volatility. A fixed constant of the model, not configurable.
const TradingDays = 252

var ErrInsufficientData = errors.New("not enough observations")

// LogReturns converts chronological prices into daily log returns,
// ln(p[i]/p[i-1]). Requires at least two prices.
func LogReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, ErrInsufficientData
	}
	rt := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		rt[i-1] = math.Log(prices[i] / prices[i-1])
	}
	return rt, nil
}

// Annualized estimates annualized volatility as the unbiased sample standard
// deviation of the returns scaled by sqrt(252). The sample estimator needs at
// least two returns.
func Annualized(returns []float64) (float64, error) {
	if len(returns) < 2 {
		return 0, ErrInsufficientData
	}
	return stat.StdDev(returns, nil) * math.Sqrt(TradingDays), nil
}
