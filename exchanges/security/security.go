package security

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quantfold/feemodel/currency"
	"github.com/quantfold/feemodel/exchanges/asset"
)

// Market identifiers for venues with distinct fee tables
const (
	MarketUSA      = "usa"
	MarketHongKong = "hkfe"
	MarketEUREX    = "eurex"
	MarketCBOE     = "cboe"
	MarketISE      = "ise"
	MarketBOX      = "box"
)

// Primary listing exchanges for USA equities
const (
	ExchangeNYSE   = "NYSE"
	ExchangeAMEX   = "AMEX"
	ExchangeARCA   = "ARCA"
	ExchangeNASDAQ = "NASDAQ"
)

var (
	// ErrSecurityIsNil is returned when a nil security is supplied
	ErrSecurityIsNil = errors.New("security is nil")

	errQuoteCurrencyIsEmpty = errors.New("quote currency is empty")
)

// Security holds the read-only instrument attributes consulted when
// deriving order fees
type Security struct {
	Symbol        string
	Asset         asset.Item
	Market        string
	QuoteCurrency currency.Code
	Bid           decimal.Decimal
	Ask           decimal.Decimal
	// PrimaryExchange is the listing venue, used by the USA equity
	// exchange fee table
	PrimaryExchange string
}

// Validate checks for the minimum attributes required to price an
// order against the security
func (s *Security) Validate() error {
	if s == nil {
		return ErrSecurityIsNil
	}
	if !s.Asset.IsValid() {
		return fmt.Errorf("%w: %q", asset.ErrNotSupported, s.Asset)
	}
	if s.QuoteCurrency.IsEmpty() {
		return errQuoteCurrencyIsEmpty
	}
	return nil
}
