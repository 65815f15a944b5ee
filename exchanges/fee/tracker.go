package fee

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"

	"github.com/quantfold/feemodel/exchanges/asset"
	"github.com/quantfold/feemodel/exchanges/order"
)

// volumeTracker maintains the accumulated monthly traded volume per
// asset class and the ledger of orders that have been priced but not
// yet observed filled. It performs no locking of its own; the owning
// calculator serialises access.
type volumeTracker struct {
	monthly map[asset.Item]decimal.Decimal
	pending map[uuid.UUID]pendingEntry
}

// pendingEntry reserves an order's volume contribution, computed at
// fee time, until the order reaches a filled state
type pendingEntry struct {
	order  *order.Detail
	class  asset.Item
	volume decimal.Decimal
}

func newVolumeTracker(s Settings) *volumeTracker {
	return &volumeTracker{
		monthly: map[asset.Item]decimal.Decimal{
			asset.Equity: s.MonthlyEquityShares,
			asset.Future: s.MonthlyFutureContracts,
			asset.Forex:  s.MonthlyForexNotional,
			asset.Option: s.MonthlyOptionsContracts,
			asset.Crypto: s.MonthlyCryptoNotional,
		},
		pending: make(map[uuid.UUID]pendingEntry),
	}
}

// volume returns the accumulated monthly volume for the canonical
// asset class
func (v *volumeTracker) volume(class asset.Item) decimal.Decimal {
	return v.monthly[class]
}

// creditFilledOrders merges the reserved volume of every ledger order
// now observed filled into the monthly state and drops its entry.
// Cancelled and rejected orders deliberately stay ledgered until month
// rollover so crediting timing matches the accrual policy callers
// already depend on.
func (v *volumeTracker) creditFilledOrders() {
	for id, entry := range v.pending {
		if !entry.order.IsFilled() {
			continue
		}
		v.monthly[entry.class] = v.monthly[entry.class].Add(entry.volume)
		delete(v.pending, id)
	}
}

// rollMonthIfNeeded zeroes every asset class's monthly volume and
// clears the pending ledger when the incoming order lands in a
// different calendar month to the last processed order. The first
// order only sets the baseline.
func (v *volumeTracker) rollMonthIfNeeded(last, current time.Time) bool {
	if last.IsZero() {
		return false
	}
	if last.Month() == current.Month() && last.Year() == current.Year() {
		return false
	}
	for class := range v.monthly {
		v.monthly[class] = decimal.Zero
	}
	v.pending = make(map[uuid.UUID]pendingEntry)
	return true
}

// recordPending inserts or overwrites the ledger entry for the order
// with its freshly computed volume contribution
func (v *volumeTracker) recordPending(ord *order.Detail, class asset.Item, volume decimal.Decimal) {
	v.pending[ord.ID] = pendingEntry{order: ord, class: class, volume: volume}
}
