package fee

import (
	"github.com/shopspring/decimal"

	"github.com/quantfold/feemodel/currency"
	"github.com/quantfold/feemodel/exchanges/order"
	"github.com/quantfold/feemodel/exchanges/security"
)

var (
	equityMinimumOrderFee = decimal.NewFromFloat(0.35)
	// equityMaximumRate caps the base commission at 1% of trade
	// notional
	equityMaximumRate = decimal.NewFromFloat(0.01)

	secTransactionRate       = decimal.NewFromFloat(0.0000278)
	finraTradingActivityRate = decimal.NewFromFloat(0.000166)
	finraTradingActivityCap  = decimal.NewFromFloat(8.30)
	equityRegulatoryPerShare = decimal.NewFromFloat(0.000048)

	equityClearingPerShare     = decimal.NewFromFloat(0.0002)
	equityClearingNotionalRate = decimal.NewFromFloat(0.005)

	finraPassThroughRate = decimal.NewFromFloat(0.00056)
	finraPassThroughCap  = decimal.NewFromFloat(8.30)

	nysePassThroughRate = decimal.NewFromFloat(0.000175)

	pennyStockThreshold    = decimal.NewFromInt(1)
	pennyStockExchangeRate = decimal.NewFromFloat(0.0030)

	// Auction (market on open / market on close) per share exchange
	// fees by primary listing exchange
	equityAuctionExchangeRates = map[string]decimal.Decimal{
		security.ExchangeNYSE: decimal.NewFromFloat(0.0010),
		security.ExchangeAMEX: decimal.NewFromFloat(0.0005),
		security.ExchangeARCA: decimal.NewFromFloat(0.0012),
	}
	equityAuctionDefaultRate = decimal.NewFromFloat(0.0005)

	// Continuous session per share exchange fees by primary listing
	// exchange
	equityRegularExchangeRates = map[string]decimal.Decimal{
		security.ExchangeNYSE: decimal.NewFromFloat(0.0030),
		security.ExchangeAMEX: decimal.NewFromFloat(0.0028),
		security.ExchangeARCA: decimal.NewFromFloat(0.0030),
	}
	equityRegularDefaultRate = decimal.NewFromFloat(0.0030)
)

// equityFee computes the USD transaction cost for a USA equity order:
// tiered per share base commission, regulatory, clearing, exchange and
// FINRA pass-through components. The reported volume contribution is
// the share quantity.
func (c *Calculator) equityFee(ord *order.Detail, sec *security.Security) (Charge, decimal.Decimal) {
	quantity := ord.Amount
	price := potentialOrderPrice(ord, sec)
	notional := quantity.Mul(price)

	base := quantity.Mul(c.equityRate)
	if maximum := notional.Mul(equityMaximumRate); base.GreaterThan(maximum) {
		base = maximum
	}
	if base.LessThan(equityMinimumOrderFee) {
		base = equityMinimumOrderFee
	}

	regulatory := notional.Mul(secTransactionRate).
		Add(quantity.Mul(equityRegulatoryPerShare))
	if ord.Side == order.Sell {
		regulatory = regulatory.Add(
			decimal.Min(finraTradingActivityCap, quantity.Mul(finraTradingActivityRate)))
	}

	clearing := decimal.Min(
		quantity.Mul(equityClearingPerShare),
		notional.Mul(equityClearingNotionalRate))

	exchange := equityExchangeFee(ord, sec, quantity, notional, base, price)

	passThrough := decimal.Min(finraPassThroughCap, base.Mul(finraPassThroughRate))

	total := base.Add(regulatory).Add(clearing).Add(exchange).Add(passThrough)
	return Charge{Amount: total, Currency: currency.USD}, quantity
}

// equityExchangeFee resolves the destination exchange charge. Sub
// dollar stocks pay on notional; everything else pays per share at the
// auction or continuous session rate of the primary listing exchange,
// and NYSE listings additionally pass through a fraction of the base
// commission.
func equityExchangeFee(ord *order.Detail, sec *security.Security, quantity, notional, base, price decimal.Decimal) decimal.Decimal {
	var fee decimal.Decimal
	if price.LessThan(pennyStockThreshold) {
		fee = notional.Mul(pennyStockExchangeRate)
	} else {
		rates := equityRegularExchangeRates
		fallback := equityRegularDefaultRate
		if ord.Type.IsAuction() {
			rates = equityAuctionExchangeRates
			fallback = equityAuctionDefaultRate
		}
		rate, ok := rates[sec.PrimaryExchange]
		if !ok {
			rate = fallback
		}
		fee = quantity.Mul(rate)
	}
	if sec.PrimaryExchange == security.ExchangeNYSE {
		fee = fee.Add(base.Mul(nysePassThroughRate))
	}
	return fee
}
