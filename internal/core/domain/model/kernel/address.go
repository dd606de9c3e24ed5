package kernel

import (
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// AddressMaxLen bounds the length of any location text carried by a
// package (pickup, delivery, and current location).
const AddressMaxLen = 256

// ErrAddressIsNotConstructed indicates a zero-value Address that bypassed
// NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress")

// Address is a bounded-length free-text location, e.g. "123 Pickup St".
// The domain treats it as opaque text; no geocoding is performed.
type Address struct {
	text string
}

// NewAddress creates an Address from free text.
// The text must be non-empty and at most AddressMaxLen characters.
func NewAddress(text string) (Address, error) {
	if text == "" {
		return Address{}, errs.NewValueIsRequiredError("address text")
	}
	if len(text) > AddressMaxLen {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", len(text), 1, AddressMaxLen)
	}
	return Address{text: text}, nil
}

// String returns the location text.
func (a Address) String() string {
	return a.text
}

// IsEqual reports whether two addresses carry the same text.
func (a Address) IsEqual(other Address) bool {
	return a.text == other.text
}

// Validate rejects the zero value.
func (a Address) Validate() error {
	if a.text == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
