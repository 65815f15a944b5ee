package security

import (
	"errors"
	"testing"

	"github.com/quantfold/feemodel/currency"
	"github.com/quantfold/feemodel/exchanges/asset"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	err := (*Security)(nil).Validate()
	if !errors.Is(err, ErrSecurityIsNil) {
		t.Fatalf("received: %v but expected: %v", err, ErrSecurityIsNil)
	}

	s := &Security{Symbol: "AAPL"}
	err = s.Validate()
	if !errors.Is(err, asset.ErrNotSupported) {
		t.Fatalf("received: %v but expected: %v", err, asset.ErrNotSupported)
	}

	s.Asset = asset.Equity
	err = s.Validate()
	if !errors.Is(err, errQuoteCurrencyIsEmpty) {
		t.Fatalf("received: %v but expected: %v", err, errQuoteCurrencyIsEmpty)
	}

	s.QuoteCurrency = currency.USD
	if err = s.Validate(); err != nil {
		t.Fatalf("received: %v but expected: %v", err, nil)
	}
}
