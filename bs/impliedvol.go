package bs

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ImpliedVol recovers the volatility that reproduces an observed call price
// by minimizing the squared pricing error with Nelder-Mead. The search runs
// in log space to keep volatility positive.
func ImpliedVol(price, spot, strike, rate, expiry float64) (float64, error) {
	if price <= 0 || spot <= 0 || strike <= 0 || expiry <= 0 {
		return 0, ErrInvalidInput
	}
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			out, err := Call(Inputs{Spot: spot, Strike: strike, Vol: math.Exp(par[0]), Rate: rate, Expiry: expiry})
			if err != nil {
				return math.Inf(1)
			}
			return math.Pow(price-out.Call, 2)
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(0.5)}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, err
	}
	return math.Exp(res.X[0]), nil
}
