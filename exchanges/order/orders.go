package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Side enforces a standard for order sides
type Side string

// Order side types
const (
	UnknownSide Side = ""
	Buy         Side = "buy"
	Sell        Side = "sell"
)

// Type enforces a standard for order types
type Type string

// Order types the fee engine recognises
const (
	UnknownType    Type = ""
	Market         Type = "market"
	Limit          Type = "limit"
	Stop           Type = "stop"
	StopLimit      Type = "stop limit"
	LimitIfTouched Type = "limit if touched"
	TrailingStop   Type = "trailing stop"
	MarketOnOpen   Type = "market on open"
	MarketOnClose  Type = "market on close"
	ComboMarket    Type = "combo market"
	ComboLimit     Type = "combo limit"
	ComboLegLimit  Type = "combo leg limit"
	OptionExercise Type = "option exercise"
)

// Status enforces a standard for order statuses
type Status string

// Order statuses
const (
	UnknownStatus   Status = ""
	New             Status = "new"
	Active          Status = "active"
	PartiallyFilled Status = "partially filled"
	Filled          Status = "filled"
	Cancelled       Status = "cancelled"
	Rejected        Status = "rejected"
)

var (
	// ErrOrderIsNil is returned when a nil order detail is supplied
	ErrOrderIsNil = errors.New("order is nil")
	// ErrAmountIsInvalid is returned when the order quantity is not positive
	ErrAmountIsInvalid = errors.New("order amount must be greater than zero")
	// ErrSideIsInvalid is returned when the order side is not buy or sell
	ErrSideIsInvalid = errors.New("order side is invalid")
	// ErrTypeIsInvalid is returned when the order type is unset
	ErrTypeIsInvalid = errors.New("order type is invalid")
)

// Detail holds the read-only order attributes consulted when deriving
// transaction costs. The surrounding order management system owns the
// full order life cycle; the fee engine only ever inspects these
// fields.
type Detail struct {
	ID uuid.UUID
	// Amount is the absolute order quantity in the asset's natural
	// unit: shares, contracts or base currency
	Amount       decimal.Decimal
	Price        decimal.Decimal
	TriggerPrice decimal.Decimal
	Side         Side
	Type         Type
	Status       Status
	Date         time.Time
	// UnderlyingSymbol carries the underlying future symbol for
	// future option orders
	UnderlyingSymbol string
}

// Validate checks the supplied detail and returns whether or not it
// can be priced
func (d *Detail) Validate() error {
	if d == nil {
		return ErrOrderIsNil
	}
	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountIsInvalid
	}
	if d.Side != Buy && d.Side != Sell {
		return ErrSideIsInvalid
	}
	if d.Type == UnknownType {
		return ErrTypeIsInvalid
	}
	return nil
}

// IsFilled returns whether the order has reached a filled state
func (d *Detail) IsFilled() bool {
	return d.Status == Filled
}

// String implements the stringer interface
func (t Type) String() string {
	return string(t)
}

// LimitPriced returns whether the order type carries a limit price
func (t Type) LimitPriced() bool {
	switch t {
	case Limit, StopLimit, LimitIfTouched, ComboLimit, ComboLegLimit:
		return true
	default:
		return false
	}
}

// TriggerPriced returns whether the order type executes off a trigger
// price
func (t Type) TriggerPriced() bool {
	switch t {
	case Stop, TrailingStop:
		return true
	default:
		return false
	}
}

// IsAuction returns whether the order participates in the opening or
// closing auction
func (t Type) IsAuction() bool {
	return t == MarketOnOpen || t == MarketOnClose
}

// String implements the stringer interface
func (s Side) String() string {
	return string(s)
}

// String implements the stringer interface
func (s Status) String() string {
	return string(s)
}

// StringToOrderSide for converting case insensitive order side
// and returning a real Side
func StringToOrderSide(side string) (Side, error) {
	switch {
	case strings.EqualFold(side, Buy.String()):
		return Buy, nil
	case strings.EqualFold(side, Sell.String()):
		return Sell, nil
	default:
		return UnknownSide, fmt.Errorf("%s not recognised as side type", side)
	}
}

// StringToOrderType for converting case insensitive order type
// and returning a real Type
func StringToOrderType(oType string) (Type, error) {
	all := []Type{
		Market,
		Limit,
		Stop,
		StopLimit,
		LimitIfTouched,
		TrailingStop,
		MarketOnOpen,
		MarketOnClose,
		ComboMarket,
		ComboLimit,
		ComboLegLimit,
		OptionExercise,
	}
	for i := range all {
		if strings.EqualFold(oType, all[i].String()) {
			return all[i], nil
		}
	}
	return UnknownType, fmt.Errorf("%s not recognised as order type", oType)
}

// StringToOrderStatus for converting case insensitive order status
// and returning a real Status
func StringToOrderStatus(status string) (Status, error) {
	switch {
	case strings.EqualFold(status, New.String()),
		strings.EqualFold(status, "placed"),
		strings.EqualFold(status, Active.String()):
		return Active, nil
	case strings.EqualFold(status, PartiallyFilled.String()):
		return PartiallyFilled, nil
	case strings.EqualFold(status, Filled.String()):
		return Filled, nil
	case strings.EqualFold(status, Cancelled.String()):
		return Cancelled, nil
	case strings.EqualFold(status, Rejected.String()):
		return Rejected, nil
	default:
		return UnknownStatus, fmt.Errorf("%s not recognised as order status", status)
	}
}
