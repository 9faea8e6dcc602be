package util

import (
	"math"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomTicker generates a random 4-letter ticker symbol
func RandomTicker(src rand.Source) string {
	r := rand.New(src)
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < 4; i++ {
		sb.WriteByte(alphabet[r.Intn(k)])
	}

	return sb.String()
}

// RandomPrices generates a synthetic daily close series as a geometric random
// walk starting at px0 with annualized volatility sigma.
func RandomPrices(n int, px0, sigma float64, src rand.Source) []float64 {
	z := distuv.Normal{Mu: 0.0, Sigma: sigma / math.Sqrt(252), Src: src}
	px := make([]float64, n)
	px[0] = px0
	for i := 1; i < n; i++ {
		px[i] = px[i-1] * math.Exp(z.Rand())
	}
	return px
}
