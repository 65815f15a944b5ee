package currency

import "strings"

// Code defines an ISO 4217 style currency identifier
type Code string

// Currencies the fee engine denominates charges in
const (
	EMPTYCODE Code = ""
	USD       Code = "USD"
	EUR       Code = "EUR"
	GBP       Code = "GBP"
	AUD       Code = "AUD"
	HKD       Code = "HKD"
	JPY       Code = "JPY"
	CNH       Code = "CNH"
)

// NewCode returns a sanitised uppercase currency code
func NewCode(c string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(c)))
}

// String implements the stringer interface
func (c Code) String() string {
	return string(c)
}

// IsEmpty returns whether the code is unset
func (c Code) IsEmpty() bool {
	return c == EMPTYCODE
}

// Equal checks code equality ignoring case
func (c Code) Equal(o Code) bool {
	return strings.EqualFold(string(c), string(o))
}
