package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process-wide configuration, loaded once at startup and passed
// down explicitly.
type Config struct {
	AlphaVantageKey string  `envconfig:"ALPHAVANTAGE_API_KEY" required:"true"`
	FredKey         string  `envconfig:"FRED_API_KEY" required:"true"`
	Capital         float64 `envconfig:"TRADING_CAPITAL" default:"1000"`
	MaxTickers      int     `envconfig:"MAX_TICKERS" default:"50"`
	MinHistory      int     `envconfig:"MIN_HISTORY" default:"30"`
	ServerAddr      string  `envconfig:"SERVER_ADDR" default:":8080"`
	// APIKeyHash is the bcrypt hash clients must match to call the HTTP API.
	APIKeyHash string `envconfig:"API_KEY_HASH"`
}

// Load reads the optional .env file and maps environment variables onto the
// config struct. A missing .env is fine in deployed environments.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
