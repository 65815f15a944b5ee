package fee

import "github.com/shopspring/decimal"

// The rate schedules below tie trailing monthly traded volume to the
// commission rate effective for the next order. Brackets are ordered,
// contiguous and strictly increasing; a zero ceiling marks the
// unbounded final bracket. A volume exactly on a ceiling takes that
// bracket, so boundary volumes price at the cheaper rate.

// rateBracket maps a volume ceiling to a single per-unit rate
type rateBracket struct {
	ceiling decimal.Decimal
	rate    decimal.Decimal
}

// forexBracket maps a notional ceiling to a per-dollar rate and a
// minimum charge per order
type forexBracket struct {
	ceiling decimal.Decimal
	rate    decimal.Decimal
	minimum decimal.Decimal
}

// tierBracket maps a contract volume ceiling to a tier index used to
// select per-symbol future commission rates
type tierBracket struct {
	ceiling decimal.Decimal
	tier    int
}

// optionBracket maps a contract volume ceiling to a premium banded
// schedule
type optionBracket struct {
	ceiling  decimal.Decimal
	schedule OptionSchedule
}

var (
	// equitySchedule holds USD per share rates keyed by monthly share
	// volume
	equitySchedule = []rateBracket{
		{ceiling: decimal.NewFromInt(300_000), rate: decimal.NewFromFloat(0.0035)},
		{ceiling: decimal.NewFromInt(3_000_000), rate: decimal.NewFromFloat(0.002)},
		{ceiling: decimal.NewFromInt(20_000_000), rate: decimal.NewFromFloat(0.0015)},
		{ceiling: decimal.NewFromInt(100_000_000), rate: decimal.NewFromFloat(0.001)},
		{rate: decimal.NewFromFloat(0.0005)},
	}

	// futureSchedule holds the tier index keyed by monthly contract
	// volume
	futureSchedule = []tierBracket{
		{ceiling: decimal.NewFromInt(1_000), tier: 0},
		{ceiling: decimal.NewFromInt(10_000), tier: 1},
		{ceiling: decimal.NewFromInt(20_000), tier: 2},
		{tier: 3},
	}

	// forexSchedule holds the rate per dollar of notional and minimum
	// charge keyed by monthly USD notional
	forexSchedule = []forexBracket{
		{ceiling: decimal.NewFromInt(1_000_000_000), rate: decimal.NewFromFloat(0.000020), minimum: decimal.NewFromFloat(2.00)},
		{ceiling: decimal.NewFromInt(2_000_000_000), rate: decimal.NewFromFloat(0.000015), minimum: decimal.NewFromFloat(1.50)},
		{ceiling: decimal.NewFromInt(5_000_000_000), rate: decimal.NewFromFloat(0.000010), minimum: decimal.NewFromFloat(1.25)},
		{rate: decimal.NewFromFloat(0.000008), minimum: decimal.NewFromFloat(1.00)},
	}

	// optionScheduleBrackets holds premium banded per contract rates
	// keyed by monthly contract volume
	optionScheduleBrackets = []optionBracket{
		{
			ceiling: decimal.NewFromInt(10_000),
			schedule: OptionSchedule{
				bands: []premiumBand{
					{threshold: decimal.NewFromFloat(0.10), rate: decimal.NewFromFloat(0.65)},
					{threshold: decimal.NewFromFloat(0.05), rate: decimal.NewFromFloat(0.50)},
					{rate: decimal.NewFromFloat(0.25)},
				},
				minimum: decimal.NewFromInt(1),
			},
		},
		{
			ceiling: decimal.NewFromInt(50_000),
			schedule: OptionSchedule{
				bands: []premiumBand{
					{threshold: decimal.NewFromFloat(0.05), rate: decimal.NewFromFloat(0.50)},
					{rate: decimal.NewFromFloat(0.25)},
				},
				minimum: decimal.NewFromInt(1),
			},
		},
		{
			ceiling: decimal.NewFromInt(100_000),
			schedule: OptionSchedule{
				bands:   []premiumBand{{rate: decimal.NewFromFloat(0.25)}},
				minimum: decimal.NewFromInt(1),
			},
		},
		{
			schedule: OptionSchedule{
				bands:   []premiumBand{{rate: decimal.NewFromFloat(0.15)}},
				minimum: decimal.NewFromInt(1),
			},
		},
	}

	// cryptoSchedule holds the rate per dollar of notional keyed by
	// monthly USD notional
	cryptoSchedule = []rateBracket{
		{ceiling: decimal.NewFromInt(100_000), rate: decimal.NewFromFloat(0.0018)},
		{ceiling: decimal.NewFromInt(1_000_000), rate: decimal.NewFromFloat(0.0015)},
		{rate: decimal.NewFromFloat(0.0012)},
	}
)

// equityRateForVolume returns the USD per share commission rate for
// the trailing monthly share volume
func equityRateForVolume(volume decimal.Decimal) decimal.Decimal {
	for i := range equitySchedule {
		if equitySchedule[i].ceiling.IsZero() ||
			volume.LessThanOrEqual(equitySchedule[i].ceiling) {
			return equitySchedule[i].rate
		}
	}
	return equitySchedule[len(equitySchedule)-1].rate
}

// futureTierForVolume returns the tier index selecting per-symbol
// future commission rates for the trailing monthly contract volume
func futureTierForVolume(volume decimal.Decimal) int {
	for i := range futureSchedule {
		if futureSchedule[i].ceiling.IsZero() ||
			volume.LessThanOrEqual(futureSchedule[i].ceiling) {
			return futureSchedule[i].tier
		}
	}
	return futureSchedule[len(futureSchedule)-1].tier
}

// forexRateForVolume returns the rate per dollar of notional and the
// minimum charge per order for the trailing monthly USD notional
func forexRateForVolume(volume decimal.Decimal) (rate, minimum decimal.Decimal) {
	for i := range forexSchedule {
		if forexSchedule[i].ceiling.IsZero() ||
			volume.LessThanOrEqual(forexSchedule[i].ceiling) {
			return forexSchedule[i].rate, forexSchedule[i].minimum
		}
	}
	last := forexSchedule[len(forexSchedule)-1]
	return last.rate, last.minimum
}

// optionScheduleForVolume returns the premium banded contract rate
// schedule for the trailing monthly contract volume
func optionScheduleForVolume(volume decimal.Decimal) OptionSchedule {
	for i := range optionScheduleBrackets {
		if optionScheduleBrackets[i].ceiling.IsZero() ||
			volume.LessThanOrEqual(optionScheduleBrackets[i].ceiling) {
			return optionScheduleBrackets[i].schedule
		}
	}
	return optionScheduleBrackets[len(optionScheduleBrackets)-1].schedule
}

// cryptoRateForVolume returns the rate per dollar of notional for the
// trailing monthly USD notional
func cryptoRateForVolume(volume decimal.Decimal) decimal.Decimal {
	for i := range cryptoSchedule {
		if cryptoSchedule[i].ceiling.IsZero() ||
			volume.LessThanOrEqual(cryptoSchedule[i].ceiling) {
			return cryptoSchedule[i].rate
		}
	}
	return cryptoSchedule[len(cryptoSchedule)-1].rate
}

// OptionSchedule is the premium banded per contract commission rate
// selected by trailing monthly contract volume. It is an explicit
// value object rather than a closure so resolved rates stay
// inspectable.
type OptionSchedule struct {
	bands   []premiumBand
	minimum decimal.Decimal
}

// premiumBand applies rate when the order premium is at or above the
// threshold; a zero threshold is the catch-all band
type premiumBand struct {
	threshold decimal.Decimal
	rate      decimal.Decimal
}

// ContractFee returns the commission for the contract quantity at the
// supplied premium, subject to the per order floor
func (s OptionSchedule) ContractFee(quantity, premium decimal.Decimal) decimal.Decimal {
	if len(s.bands) == 0 {
		return decimal.Zero
	}
	rate := s.bands[len(s.bands)-1].rate
	for i := range s.bands {
		if premium.GreaterThanOrEqual(s.bands[i].threshold) {
			rate = s.bands[i].rate
			break
		}
	}
	fee := quantity.Mul(rate)
	if fee.LessThan(s.minimum) {
		return s.minimum
	}
	return fee
}

// String implements the stringer interface and describes the resolved
// bands for reporting
func (s OptionSchedule) String() string {
	out := ""
	for i := range s.bands {
		if i > 0 {
			out += ", "
		}
		if s.bands[i].threshold.IsZero() {
			out += "otherwise " + s.bands[i].rate.String()
			continue
		}
		out += "premium>=" + s.bands[i].threshold.String() + ": " + s.bands[i].rate.String()
	}
	return out + " (minimum " + s.minimum.String() + " per order)"
}
