package fee

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"

	"github.com/quantfold/feemodel/exchanges/asset"
	"github.com/quantfold/feemodel/exchanges/order"
)

func mustID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewV4()
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestCreditFilledOrders(t *testing.T) {
	t.Parallel()
	tracker := newVolumeTracker(Settings{})

	filled := &order.Detail{ID: mustID(t), Status: order.Filled}
	open := &order.Detail{ID: mustID(t), Status: order.Active}
	cancelled := &order.Detail{ID: mustID(t), Status: order.Cancelled}

	tracker.recordPending(filled, asset.Equity, decimal.NewFromInt(1000))
	tracker.recordPending(open, asset.Equity, decimal.NewFromInt(500))
	tracker.recordPending(cancelled, asset.Future, decimal.NewFromInt(5))

	tracker.creditFilledOrders()
	if !tracker.volume(asset.Equity).Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("received: %v but expected: %v", tracker.volume(asset.Equity), 1000)
	}
	if !tracker.volume(asset.Future).IsZero() {
		t.Fatalf("received: %v but expected: %v", tracker.volume(asset.Future), 0)
	}
	if len(tracker.pending) != 2 {
		t.Fatalf("received: %v but expected: %v", len(tracker.pending), 2)
	}

	// Crediting is one shot, a second pass must not double count
	tracker.creditFilledOrders()
	if !tracker.volume(asset.Equity).Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("received: %v but expected: %v", tracker.volume(asset.Equity), 1000)
	}

	// Cancelled orders stay ledgered, so a later amend back to filled
	// still credits
	cancelled.Status = order.Filled
	tracker.creditFilledOrders()
	if !tracker.volume(asset.Future).Equal(decimal.NewFromInt(5)) {
		t.Fatalf("received: %v but expected: %v", tracker.volume(asset.Future), 5)
	}
	if len(tracker.pending) != 1 {
		t.Fatalf("received: %v but expected: %v", len(tracker.pending), 1)
	}
}

func TestRollMonthIfNeeded(t *testing.T) {
	t.Parallel()
	tracker := newVolumeTracker(Settings{
		MonthlyEquityShares:   decimal.NewFromInt(100),
		MonthlyCryptoNotional: decimal.NewFromInt(200),
	})
	tracker.recordPending(
		&order.Detail{ID: mustID(t), Status: order.Active},
		asset.Equity, decimal.NewFromInt(50))

	march := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	if tracker.rollMonthIfNeeded(time.Time{}, march) {
		t.Fatal("first order must only set the baseline")
	}
	if tracker.rollMonthIfNeeded(march, march.Add(time.Hour)) {
		t.Fatal("same month must not roll")
	}
	if tracker.rollMonthIfNeeded(march, march.AddDate(0, 0, 10)) {
		t.Fatal("same month must not roll")
	}
	if !tracker.volume(asset.Equity).Equal(decimal.NewFromInt(100)) {
		t.Fatalf("received: %v but expected: %v", tracker.volume(asset.Equity), 100)
	}

	if !tracker.rollMonthIfNeeded(march, march.AddDate(0, 1, 0)) {
		t.Fatal("month change must roll")
	}
	if !tracker.volume(asset.Equity).IsZero() || !tracker.volume(asset.Crypto).IsZero() {
		t.Fatal("rollover must zero every asset class")
	}
	if len(tracker.pending) != 0 {
		t.Fatal("rollover must clear the pending ledger")
	}

	tracker.monthly[asset.Equity] = decimal.NewFromInt(42)
	if !tracker.rollMonthIfNeeded(march, march.AddDate(1, 0, 0)) {
		t.Fatal("same month in a different year must roll")
	}
	if !tracker.volume(asset.Equity).IsZero() {
		t.Fatalf("received: %v but expected: %v", tracker.volume(asset.Equity), 0)
	}
}

func TestRecordPendingOverwrites(t *testing.T) {
	t.Parallel()
	tracker := newVolumeTracker(Settings{})

	ord := &order.Detail{ID: mustID(t), Status: order.Active}
	tracker.recordPending(ord, asset.Equity, decimal.NewFromInt(100))
	tracker.recordPending(ord, asset.Equity, decimal.NewFromInt(250))

	if len(tracker.pending) != 1 {
		t.Fatalf("received: %v but expected: %v", len(tracker.pending), 1)
	}

	ord.Status = order.Filled
	tracker.creditFilledOrders()
	if !tracker.volume(asset.Equity).Equal(decimal.NewFromInt(250)) {
		t.Fatalf("received: %v but expected: %v", tracker.volume(asset.Equity), 250)
	}
}
