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
	// futureRegulatoryFee is the flat USD per contract regulatory
	// addend on USA and Eurex listed contracts
	futureRegulatoryFee = decimal.NewFromFloat(0.02)

	defaultUSAFutureFee = FutureFee{
		Tiers: [4]decimal.Decimal{
			decimal.NewFromFloat(0.85),
			decimal.NewFromFloat(0.65),
			decimal.NewFromFloat(0.45),
			decimal.NewFromFloat(0.25),
		},
		ExchangeFee: decimal.NewFromFloat(1.60),
	}

	defaultEUREXFutureFee = FutureFee{
		Tiers: [4]decimal.Decimal{
			decimal.NewFromInt(1),
			decimal.NewFromInt(1),
			decimal.NewFromInt(1),
			decimal.NewFromInt(1),
		},
	}

	// defaultUSAFutureFees carries the listed per symbol schedules;
	// anything unlisted falls back to defaultUSAFutureFee
	defaultUSAFutureFees = map[string]FutureFee{
		"ES":  usaEminiFee(),
		"NQ":  usaEminiFee(),
		"YM":  usaEminiFee(),
		"RTY": usaEminiFee(),
		"MES": usaMicroFee(),
		"MNQ": usaMicroFee(),
		"MYM": usaMicroFee(),
		"M2K": usaMicroFee(),
		"CL":  usaEnergyFee(),
		"NG":  usaEnergyFee(),
	}

	defaultEUREXFutureFees = map[string]FutureFee{
		"FESX": {
			Tiers: [4]decimal.Decimal{
				decimal.NewFromInt(1),
				decimal.NewFromInt(1),
				decimal.NewFromInt(1),
				decimal.NewFromInt(1),
			},
		},
		"FDAX": {
			Tiers: [4]decimal.Decimal{
				decimal.NewFromFloat(1.25),
				decimal.NewFromFloat(1.25),
				decimal.NewFromFloat(1.25),
				decimal.NewFromFloat(1.25),
			},
			ExchangeFee: decimal.NewFromFloat(0.50),
		},
	}

	// hongKongIndexFutures settle at a flat HKD charge per contract
	hongKongIndexFutures = map[string]bool{
		"HSI": true,
		"MHI": true,
		"HHI": true,
		"MCH": true,
	}
	hongKongIndexContractFee = decimal.NewFromInt(40)

	// hongKongContractFees are keyed by the contract's quote currency
	hongKongContractFees = map[currency.Code]decimal.Decimal{
		currency.HKD: decimal.NewFromInt(30),
		currency.USD: decimal.NewFromFloat(3.60),
		currency.CNH: decimal.NewFromInt(13),
	}
	// hongKongExchangeMultiplier folds the exchange fee into the per
	// contract charge
	hongKongExchangeMultiplier = decimal.NewFromFloat(1.5)
)

func usaEminiFee() FutureFee {
	f := defaultUSAFutureFee
	f.ExchangeFee = decimal.NewFromFloat(1.28)
	return f
}

func usaMicroFee() FutureFee {
	return FutureFee{
		Tiers: [4]decimal.Decimal{
			decimal.NewFromFloat(0.25),
			decimal.NewFromFloat(0.20),
			decimal.NewFromFloat(0.15),
			decimal.NewFromFloat(0.10),
		},
		ExchangeFee: decimal.NewFromFloat(0.30),
	}
}

func usaEnergyFee() FutureFee {
	f := defaultUSAFutureFee
	f.ExchangeFee = decimal.NewFromFloat(1.45)
	return f
}

// futureFee computes the transaction cost for future and future option
// orders. USA and Eurex contracts price per symbol in USD; Hong Kong
// contracts price in the quote currency. The reported volume
// contribution is the contract quantity.
func (c *Calculator) futureFee(ord *order.Detail, sec *security.Security) (Charge, asset.Item, decimal.Decimal, error) {
	quantity := ord.Amount
	symbol := sec.Symbol
	if sec.Asset == asset.FutureOption && ord.UnderlyingSymbol != "" {
		symbol = ord.UnderlyingSymbol
	}

	switch sec.Market {
	case security.MarketUSA:
		f, ok := c.usaFutureFees[symbol]
		if !ok {
			f = defaultUSAFutureFee
		}
		perContract := f.Tiers[c.futureTier].
			Add(f.ExchangeFee).
			Add(futureRegulatoryFee)
		return Charge{Amount: quantity.Mul(perContract), Currency: currency.USD},
			asset.Future, quantity, nil
	case security.MarketHongKong:
		if hongKongIndexFutures[symbol] {
			return Charge{Amount: quantity.Mul(hongKongIndexContractFee), Currency: currency.HKD},
				asset.Future, quantity, nil
		}
		code := sec.QuoteCurrency
		perContract, ok := hongKongContractFees[code]
		if !ok {
			perContract = hongKongContractFees[currency.HKD]
			code = currency.HKD
		}
		return Charge{
			Amount:   quantity.Mul(perContract).Mul(hongKongExchangeMultiplier),
			Currency: code,
		}, asset.Future, quantity, nil
	case security.MarketEUREX:
		f, ok := c.eurexFutureFees[symbol]
		if !ok {
			f = defaultEUREXFutureFee
		}
		perContract := f.Tiers[c.futureTier].
			Add(f.ExchangeFee).
			Add(futureRegulatoryFee)
		return Charge{Amount: quantity.Mul(perContract), Currency: currency.USD},
			asset.Future, quantity, nil
	default:
		return Charge{}, asset.Empty, decimal.Zero,
			fmt.Errorf("%w %q for %v orders", ErrMarketNotSupported, sec.Market, sec.Asset)
	}
}
