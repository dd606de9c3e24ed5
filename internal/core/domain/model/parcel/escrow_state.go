package parcel

import (
	"fmt"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// EscrowState tracks the settlement of the price held against a package.
// Escrow is held at creation and settled exactly once: released to the
// courier on delivery, or refunded to the sender on cancellation. A package
// can never be both released and refunded; that is the conservation
// invariant at the level of a single package.
type EscrowState int

const (
	// EscrowUnknown catches uninitialized EscrowState values.
	EscrowUnknown EscrowState = iota

	// EscrowHeld means the price is held in the pool against the package.
	EscrowHeld

	// EscrowReleased means the held amount was paid out to the courier.
	EscrowReleased

	// EscrowRefunded means the held amount was returned to the sender.
	EscrowRefunded
)

func getEscrowStateStrings() map[EscrowState]string {
	return map[EscrowState]string{
		EscrowUnknown:  "Unknown",
		EscrowHeld:     "Held",
		EscrowReleased: "Released",
		EscrowRefunded: "Refunded",
	}
}

// Validate checks the EscrowState is one of the defined settlement states.
func (s EscrowState) Validate() error {
	if s != EscrowHeld && s != EscrowReleased && s != EscrowRefunded {
		return errs.NewValueIsInvalidErrorWithCause("escrow state",
			fmt.Errorf("%d is not a valid escrow state", int(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s EscrowState) String() string {
	if str, ok := getEscrowStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
