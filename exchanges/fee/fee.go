package fee

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/quantfold/feemodel/currency"
	"github.com/quantfold/feemodel/exchanges/asset"
	"github.com/quantfold/feemodel/exchanges/order"
	"github.com/quantfold/feemodel/exchanges/security"
)

var (
	// ErrAssetNotSupported is returned when the security's asset type
	// has no fee calculator defined
	ErrAssetNotSupported = errors.New("no fee calculator defined for asset type")
	// ErrMarketNotSupported is returned when an option or future order
	// references a market absent from the fee tables
	ErrMarketNotSupported = errors.New("unexpected market")
)

// Charge is a single computed transaction cost denominated in a
// currency. It is produced fresh per call and never persisted by the
// engine.
type Charge struct {
	Amount   decimal.Decimal
	Currency currency.Code
}

// Settings seeds a calculator with the trailing monthly volume figures
// accumulated before construction and optionally overrides the per
// symbol future commission tables.
type Settings struct {
	MonthlyEquityShares     decimal.Decimal
	MonthlyFutureContracts  decimal.Decimal
	MonthlyForexNotional    decimal.Decimal
	MonthlyOptionsContracts decimal.Decimal
	MonthlyCryptoNotional   decimal.Decimal

	// USAFutureFees overrides or extends the built in per symbol USA
	// future commission table
	USAFutureFees map[string]FutureFee
	// EUREXFutureFees overrides or extends the built in Eurex table
	EUREXFutureFees map[string]FutureFee
}

// FutureFee describes the per contract commission for one symbol: the
// four volume tier rates plus the exchange pass-through. Untiered
// venues carry the same rate in every tier slot.
type FutureFee struct {
	Tiers       [4]decimal.Decimal
	ExchangeFee decimal.Decimal
}

// Rates is a snapshot of the currently resolved tier rates
type Rates struct {
	EquityPerShare  decimal.Decimal
	FutureTier      int
	ForexPerDollar  decimal.Decimal
	ForexMinimum    decimal.Decimal
	Option          OptionSchedule
	CryptoPerDollar decimal.Decimal
}

// Calculator prices orders against the tiered commission schedules and
// owns all mutable tier state.
//
// A calculator starts idle; the first order it prices only sets the
// timestamp baseline. Every subsequent call runs the same sequence
// under the calculator mutex: credit any ledger orders now observed
// filled, roll the month over when the order's calendar month differs
// from the last processed order's, re-resolve every asset class rate
// from the accumulated volume, dispatch to the asset class calculator,
// reserve the order's volume contribution and advance the timestamp.
// Calls that error leave no record of the failed order behind.
type Calculator struct {
	mtx sync.Mutex

	tracker       *volumeTracker
	lastOrderTime time.Time

	equityRate     decimal.Decimal
	futureTier     int
	forexRate      decimal.Decimal
	forexMinimum   decimal.Decimal
	optionSchedule OptionSchedule
	cryptoRate     decimal.Decimal

	usaFutureFees   map[string]FutureFee
	eurexFutureFees map[string]FutureFee
}

// NewCalculator returns a calculator seeded with the supplied monthly
// volume figures. The symbol tables are copied at construction so
// calculator instances stay independently testable.
func NewCalculator(s Settings) *Calculator {
	c := &Calculator{
		tracker:         newVolumeTracker(s),
		usaFutureFees:   mergeFutureFees(defaultUSAFutureFees, s.USAFutureFees),
		eurexFutureFees: mergeFutureFees(defaultEUREXFutureFees, s.EUREXFutureFees),
	}
	c.resolveRates()
	return c
}

// GetOrderFee derives the total transaction cost for the order against
// the security and reserves the order's volume contribution until the
// order is observed filled.
func (c *Calculator) GetOrderFee(ord *order.Detail, sec *security.Security) (Charge, error) {
	if err := ord.Validate(); err != nil {
		return Charge{}, err
	}
	if err := sec.Validate(); err != nil {
		return Charge{}, err
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.tracker.creditFilledOrders()
	if c.tracker.rollMonthIfNeeded(c.lastOrderTime, ord.Date) {
		logrus.WithFields(logrus.Fields{
			"previous": c.lastOrderTime.Format("2006-01"),
			"current":  ord.Date.Format("2006-01"),
		}).Debug("monthly volume tracker reset")
	}
	c.resolveRates()

	charge, class, volume, err := c.dispatch(ord, sec)
	if err != nil {
		return Charge{}, err
	}

	if class != asset.Empty {
		c.tracker.recordPending(ord, class, volume)
	}
	c.lastOrderTime = ord.Date
	return charge, nil
}

// Rates returns a snapshot of the tier rates that would apply to the
// next order given the volume accumulated so far.
func (c *Calculator) Rates() Rates {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.tracker.creditFilledOrders()
	c.resolveRates()
	return Rates{
		EquityPerShare:  c.equityRate,
		FutureTier:      c.futureTier,
		ForexPerDollar:  c.forexRate,
		ForexMinimum:    c.forexMinimum,
		Option:          c.optionSchedule,
		CryptoPerDollar: c.cryptoRate,
	}
}

// MonthlyVolume returns the accumulated volume for the canonical asset
// class this calendar month.
func (c *Calculator) MonthlyVolume(class asset.Item) decimal.Decimal {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.tracker.volume(class)
}

// resolveRates recomputes every asset class rate from the trailing
// monthly volume. Rates are a function of accumulated-so-far volume so
// this runs before each order is priced.
func (c *Calculator) resolveRates() {
	c.equityRate = equityRateForVolume(c.tracker.volume(asset.Equity))
	c.futureTier = futureTierForVolume(c.tracker.volume(asset.Future))
	c.forexRate, c.forexMinimum = forexRateForVolume(c.tracker.volume(asset.Forex))
	c.optionSchedule = optionScheduleForVolume(c.tracker.volume(asset.Option))
	c.cryptoRate = cryptoRateForVolume(c.tracker.volume(asset.Crypto))
}

// dispatch routes the order to its asset class calculator and reports
// the canonical class and volume contribution to reserve; an Empty
// class means the order is not volume tracked.
func (c *Calculator) dispatch(ord *order.Detail, sec *security.Security) (Charge, asset.Item, decimal.Decimal, error) {
	switch sec.Asset {
	case asset.Equity:
		charge, volume := c.equityFee(ord, sec)
		return charge, asset.Equity, volume, nil
	case asset.Option, asset.IndexOption:
		if ord.Type == order.OptionExercise {
			// Exercising an equity or index option carries no charge
			return Charge{Amount: decimal.Zero, Currency: currency.USD}, asset.Empty, decimal.Zero, nil
		}
		return c.optionFee(ord, sec)
	case asset.Future, asset.FutureOption:
		return c.futureFee(ord, sec)
	case asset.Forex:
		charge, volume := c.forexFee(ord, sec)
		return charge, asset.Forex, volume, nil
	case asset.Crypto:
		charge, volume := c.cryptoFee(ord, sec)
		return charge, asset.Crypto, volume, nil
	case asset.CFD:
		return c.cfdFee(ord, sec), asset.Empty, decimal.Zero, nil
	default:
		return Charge{}, asset.Empty, decimal.Zero,
			fmt.Errorf("%w: %q", ErrAssetNotSupported, sec.Asset)
	}
}

// potentialOrderPrice approximates the execution price for fee
// purposes before a fill exists: limit carrying types use their limit
// price, trigger types their trigger price, and everything else the
// touch on the side the order would trade at.
func potentialOrderPrice(ord *order.Detail, sec *security.Security) decimal.Decimal {
	switch {
	case ord.Type.LimitPriced():
		return ord.Price
	case ord.Type.TriggerPriced():
		return ord.TriggerPrice
	case ord.Side == order.Buy:
		return sec.Ask
	default:
		return sec.Bid
	}
}

func mergeFutureFees(defaults, overrides map[string]FutureFee) map[string]FutureFee {
	merged := make(map[string]FutureFee, len(defaults)+len(overrides))
	for symbol, f := range defaults {
		merged[symbol] = f
	}
	for symbol, f := range overrides {
		merged[symbol] = f
	}
	return merged
}
