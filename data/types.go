package data

import "time"

// Point is one daily observation of a ticker's adjusted close.
type Point struct {
	Date     time.Time
	AdjClose float64
}

// PriceSeries is a chronological run of adjusted closes for one ticker.
type PriceSeries []Point

// Closes returns the adjusted closes in chronological order.
func (s PriceSeries) Closes() []float64 {
	px := make([]float64, len(s))
	for i := range s {
		px[i] = s[i].AdjClose
	}
	return px
}

type Hist struct {
	AdjClose string `json:"5. adjusted close"`
}

type AlphaData struct {
	Hist map[string]Hist `json:"Time Series (Daily)"`
}

type Observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type FredData struct {
	Observations []Observation `json:"observations"`
}
