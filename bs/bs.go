package bs

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidInput = errors.New("invalid pricing input")

// Inputs are the point estimates fed to the closed-form pricer.
type Inputs struct {
	Spot   float64 // current underlying price, > 0
	Strike float64 // strike price, > 0
	Vol    float64 // annualized volatility, >= 0
	Rate   float64 // risk-free rate, may be negative
	Expiry float64 // time to expiry in years, >= 0
}

// Result holds the theoretical call value and its first-order greeks.
type Result struct {
	Call  float64 `json:"call_price"`
	Delta float64 `json:"delta"`
	Vega  float64 `json:"vega"`
}

var stdNormal = distuv.Normal{Mu: 0.0, Sigma: 1.0}

// Call prices a European call under the Black-Scholes model:
// S*N(d1) - K*exp(-rT)*N(d2), with delta N(d1) and vega S*phi(d1)*sqrt(T).
// Zero volatility or zero expiry leaves no optionality, so the call collapses
// to its intrinsic value against the discounted strike rather than a
// division by zero.
func Call(in Inputs) (Result, error) {
	if in.Spot <= 0 || in.Strike <= 0 || in.Vol < 0 || in.Expiry < 0 {
		return Result{}, ErrInvalidInput
	}

	disc := in.Strike * math.Exp(-in.Rate*in.Expiry)
	x := in.Vol * math.Sqrt(in.Expiry)
	if x == 0 {
		out := Result{Call: math.Max(in.Spot-disc, 0)}
		if in.Spot > disc {
			out.Delta = 1
		}
		return out, nil
	}

	d1 := (math.Log(in.Spot/in.Strike) + (in.Rate+0.5*in.Vol*in.Vol)*in.Expiry) / x
	d2 := d1 - x
	return Result{
		Call:  in.Spot*stdNormal.CDF(d1) - disc*stdNormal.CDF(d2),
		Delta: stdNormal.CDF(d1),
		Vega:  in.Spot * stdNormal.Prob(d1) * math.Sqrt(in.Expiry),
	}, nil
}
