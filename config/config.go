// Package config loads the engine's file backed runtime settings:
// logging verbosity, the trailing monthly volume figures a calculator
// is seeded with and any per symbol future commission overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/quantfold/feemodel/exchanges/fee"
)

var errTierCount = errors.New("future fee override requires exactly four tier rates")

// Config is the top level settings document
type Config struct {
	LogLevel        string               `mapstructure:"log_level"`
	StartingVolumes StartingVolumes      `mapstructure:"starting_volumes"`
	USAFutureFees   map[string]FutureFee `mapstructure:"usa_future_fees"`
	EUREXFutureFees map[string]FutureFee `mapstructure:"eurex_future_fees"`
}

// StartingVolumes seeds the calculator's trailing monthly volume per
// asset class
type StartingVolumes struct {
	EquityShares     float64 `mapstructure:"equity_shares"`
	FutureContracts  float64 `mapstructure:"future_contracts"`
	ForexNotional    float64 `mapstructure:"forex_notional"`
	OptionsContracts float64 `mapstructure:"options_contracts"`
	CryptoNotional   float64 `mapstructure:"crypto_notional"`
}

// FutureFee overrides the per contract commission for one symbol. Tiers
// must carry exactly four rates, cheapest last.
type FutureFee struct {
	Tiers       []float64 `mapstructure:"tiers"`
	ExchangeFee float64   `mapstructure:"exchange_fee"`
}

// Load reads and decodes the settings file at path
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("log_level", "info")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", path, err)
	}
	return &cfg, nil
}

// Level parses the configured logging verbosity
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// CalculatorSettings converts the document into calculator settings,
// validating any future fee overrides
func (c *Config) CalculatorSettings() (fee.Settings, error) {
	s := fee.Settings{
		MonthlyEquityShares:     decimal.NewFromFloat(c.StartingVolumes.EquityShares),
		MonthlyFutureContracts:  decimal.NewFromFloat(c.StartingVolumes.FutureContracts),
		MonthlyForexNotional:    decimal.NewFromFloat(c.StartingVolumes.ForexNotional),
		MonthlyOptionsContracts: decimal.NewFromFloat(c.StartingVolumes.OptionsContracts),
		MonthlyCryptoNotional:   decimal.NewFromFloat(c.StartingVolumes.CryptoNotional),
	}

	var err error
	if s.USAFutureFees, err = convertFutureFees(c.USAFutureFees); err != nil {
		return fee.Settings{}, fmt.Errorf("usa_future_fees: %w", err)
	}
	if s.EUREXFutureFees, err = convertFutureFees(c.EUREXFutureFees); err != nil {
		return fee.Settings{}, fmt.Errorf("eurex_future_fees: %w", err)
	}
	return s, nil
}

// convertFutureFees uppercases the symbol keys on the way through;
// viper lowercases all map keys when decoding.
func convertFutureFees(in map[string]FutureFee) (map[string]fee.FutureFee, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]fee.FutureFee, len(in))
	for symbol, f := range in {
		if len(f.Tiers) != 4 {
			return nil, fmt.Errorf("%w, symbol %q has %d", errTierCount, symbol, len(f.Tiers))
		}
		var converted fee.FutureFee
		for i := range f.Tiers {
			converted.Tiers[i] = decimal.NewFromFloat(f.Tiers[i])
		}
		converted.ExchangeFee = decimal.NewFromFloat(f.ExchangeFee)
		out[strings.ToUpper(symbol)] = converted
	}
	return out, nil
}
