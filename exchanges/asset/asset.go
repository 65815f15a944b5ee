package asset

import (
	"errors"
	"fmt"
	"strings"
)

// Item defines the type of tradable asset the fee engine can price
type Item string

// Supported asset items
const (
	Empty        Item = ""
	Equity       Item = "equity"
	Future       Item = "future"
	FutureOption Item = "futureoption"
	Forex        Item = "forex"
	Option       Item = "option"
	IndexOption  Item = "indexoption"
	Crypto       Item = "crypto"
	CFD          Item = "cfd"
)

// ErrNotSupported is returned when the asset type has no fee schedule defined
var ErrNotSupported = errors.New("received unsupported asset type")

var supported = Items{
	Equity,
	Future,
	FutureOption,
	Forex,
	Option,
	IndexOption,
	Crypto,
	CFD,
}

// Items stores a list of asset types
type Items []Item

// Supported returns the list of supported asset types
func Supported() Items {
	list := make(Items, len(supported))
	copy(list, supported)
	return list
}

// New takes an input of asset types as string and returns an Item
func New(input string) (Item, error) {
	input = strings.ToLower(input)
	for i := range supported {
		if string(supported[i]) == input {
			return supported[i], nil
		}
	}
	return Empty, fmt.Errorf("%w: %s", ErrNotSupported, input)
}

// String implements the stringer interface
func (a Item) String() string {
	return string(a)
}

// Strings converts an asset type array to a string array
func (a Items) Strings() []string {
	assets := make([]string, len(a))
	for x := range a {
		assets[x] = string(a[x])
	}
	return assets
}

// JoinToString joins an asset type array and converts it to a string
// with the supplied separator
func (a Items) JoinToString(separator string) string {
	return strings.Join(a.Strings(), separator)
}

// Contains returns whether or not the supplied asset exists in the list
func (a Items) Contains(i Item) bool {
	for x := range a {
		if a[x] == i {
			return true
		}
	}
	return false
}

// IsValid returns whether or not the supplied asset type is valid
func (a Item) IsValid() bool {
	return supported.Contains(a)
}

// IsOption returns whether the asset is priced off the options
// commission schedule
func (a Item) IsOption() bool {
	return a == Option || a == IndexOption
}

// IsFuture returns whether the asset is priced off the futures
// commission tiers; future options share their underlying's schedule
func (a Item) IsFuture() bool {
	return a == Future || a == FutureOption
}
