package fee

import (
	"github.com/shopspring/decimal"

	"github.com/quantfold/feemodel/currency"
	"github.com/quantfold/feemodel/exchanges/order"
	"github.com/quantfold/feemodel/exchanges/security"
)

// Forex, crypto and CFD orders price purely off notional: quantity
// multiplied by the approximated order price.

var (
	cryptoMinimumOrderFee = decimal.NewFromFloat(1.75)
	// cryptoMaximumRate caps the rate component at 1% of notional
	cryptoMaximumRate = decimal.NewFromFloat(0.01)

	cfdNotionalRate = decimal.NewFromFloat(0.00002)
	// cfdMinimums hold the minimum charge by quote currency
	cfdMinimums = map[currency.Code]decimal.Decimal{
		currency.JPY: decimal.NewFromInt(40),
		currency.HKD: decimal.NewFromInt(10),
	}
	cfdDefaultMinimum = decimal.NewFromInt(1)
)

// forexFee computes the USD charge for a forex order at the resolved
// rate per dollar with the bracket's per order minimum. The reported
// volume contribution is the order notional.
func (c *Calculator) forexFee(ord *order.Detail, sec *security.Security) (Charge, decimal.Decimal) {
	notional := ord.Amount.Mul(potentialOrderPrice(ord, sec))
	fee := decimal.Max(c.forexMinimum, c.forexRate.Mul(notional))
	return Charge{Amount: fee, Currency: currency.USD}, notional
}

// cryptoFee computes the USD charge for a crypto order at the resolved
// rate per dollar, capped at 1% of notional and floored at the flat
// order minimum. The reported volume contribution is the order
// notional.
func (c *Calculator) cryptoFee(ord *order.Detail, sec *security.Security) (Charge, decimal.Decimal) {
	notional := ord.Amount.Mul(potentialOrderPrice(ord, sec))
	fee := decimal.Max(
		cryptoMinimumOrderFee,
		decimal.Min(notional.Mul(cryptoMaximumRate), c.cryptoRate.Mul(notional)))
	return Charge{Amount: fee, Currency: currency.USD}, notional
}

// cfdFee computes the charge for a CFD order in the contract's quote
// currency: a flat fraction of notional with a currency dependent
// minimum. CFDs carry no volume tiering and are not tracked.
func (c *Calculator) cfdFee(ord *order.Detail, sec *security.Security) Charge {
	notional := ord.Amount.Mul(potentialOrderPrice(ord, sec))
	minimum, ok := cfdMinimums[sec.QuoteCurrency]
	if !ok {
		minimum = cfdDefaultMinimum
	}
	fee := decimal.Max(notional.Mul(cfdNotionalRate), minimum)
	return Charge{Amount: fee, Currency: sec.QuoteCurrency}
}
