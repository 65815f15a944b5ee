package fee

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quantfold/feemodel/currency"
	"github.com/quantfold/feemodel/exchanges/asset"
	"github.com/quantfold/feemodel/exchanges/order"
	"github.com/quantfold/feemodel/exchanges/security"
)

var (
	// optionClearingRate applies per contract on every supported
	// option market
	optionClearingRate = decimal.NewFromFloat(0.0048)
	// optionORFRate is the options regulatory fee levied per contract
	// on ORF collecting markets
	optionORFRate = decimal.NewFromFloat(0.01915)

	optionTransactionNotionalRate = decimal.NewFromFloat(0.0000278)
	optionTransactionPerContract  = decimal.NewFromFloat(0.00279)

	optionClearingPerContract = decimal.NewFromFloat(0.02)
	optionClearingCap         = decimal.NewFromInt(55)

	// orfMarkets collect the options regulatory fee on top of the per
	// contract clearing rate
	orfMarkets = map[string]bool{
		security.MarketUSA:  true,
		security.MarketCBOE: true,
	}

	supportedOptionMarkets = map[string]bool{
		security.MarketUSA:  true,
		security.MarketCBOE: true,
		security.MarketISE:  true,
		security.MarketBOX:  true,
	}
)

// optionFee computes the USD transaction cost for option and index
// option orders: premium banded base commission, regulatory,
// sell-side transaction and clearing components. The reported volume
// contribution is contracts multiplied by the approximated premium.
func (c *Calculator) optionFee(ord *order.Detail, sec *security.Security) (Charge, asset.Item, decimal.Decimal, error) {
	if !supportedOptionMarkets[sec.Market] {
		return Charge{}, asset.Empty, decimal.Zero,
			fmt.Errorf("%w %q for %v orders", ErrMarketNotSupported, sec.Market, sec.Asset)
	}

	quantity := ord.Amount
	premium := potentialOrderPrice(ord, sec)
	notional := quantity.Mul(premium)

	base := c.optionSchedule.ContractFee(quantity, premium)

	regulatory := quantity.Mul(optionClearingRate)
	if orfMarkets[sec.Market] {
		regulatory = regulatory.Add(quantity.Mul(optionORFRate))
	}

	var transaction decimal.Decimal
	if ord.Side == order.Sell {
		transaction = notional.Mul(optionTransactionNotionalRate).
			Add(quantity.Mul(optionTransactionPerContract))
	}

	clearing := decimal.Min(optionClearingCap, quantity.Mul(optionClearingPerContract))

	total := base.Add(regulatory).Add(transaction).Add(clearing)
	return Charge{Amount: total, Currency: currency.USD},
		asset.Option, quantity.Mul(premium), nil
}
