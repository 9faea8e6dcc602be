package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quantlabs/atmrank/api"
	"github.com/quantlabs/atmrank/config"
	"github.com/quantlabs/atmrank/data"
	"github.com/quantlabs/atmrank/rank"
	"github.com/schollz/progressbar/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	client := data.NewClient(cfg.AlphaVantageKey, cfg.FredKey)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		ranker := rank.New(client, rank.Config{MinHistory: cfg.MinHistory})
		server := api.NewServer(cfg, ranker, client)
		if err := server.Start(cfg.ServerAddr); err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		return
	}

	ctx := context.Background()

	tickers, err := client.Constituents(ctx)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	if len(tickers) > cfg.MaxTickers {
		tickers = tickers[:cfg.MaxTickers]
	}

	riskFreeRate := client.RiskFreeRate(ctx)

	bar := progressBar(len(tickers))
	ranker := rank.New(client, rank.Config{
		MinHistory: cfg.MinHistory,
		Progress: func(symbol string) {
			bar.Describe(fmt.Sprintf("Processing %v\t", symbol))
			bar.Add(1)
		},
	})

	start := time.Now()
	table, failures := ranker.ComputeRankedTable(ctx, tickers, riskFreeRate, cfg.Capital)
	fmt.Printf("[%9.5fs] priced %v of %v ticker(s), r=%.4f\n", time.Since(start).Seconds(), len(table), len(tickers), riskFreeRate)
	for symbol, err := range failures {
		fmt.Printf("skipped %v: %v\n", symbol, err)
	}

	fmt.Printf("%-8s %10s %10s %10s %8s %10s %10s\n", "Ticker", "Price", "Vol", "Call", "Delta", "Vega", "Contracts")
	for _, rec := range table {
		fmt.Printf("%-8s %10.2f %10.4f %10.2f %8.4f %10.4f %10d\n", rec.Ticker, rec.Spot, rec.Volatility, rec.CallPrice, rec.Delta, rec.Vega, rec.Contracts)
	}
}

// progress bar initialization
func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
