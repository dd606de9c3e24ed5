package parcel

import (
	"fmt"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// Status represents the lifecycle state of a package. It implements the
// delivery state machine; every transition method returns the next status
// or an InvalidState error, never mutating in place.
//
// Transitions:
//
//	Created ──> Accepted ──> Delivered       (happy path)
//	Created ──> Cancelled                    (sender, pre-acceptance only)
//	Created | Accepted | Delivered ──> Disputed
//
// Delivered and Cancelled are terminal except that a dispute may still be
// filed against a delivered package. Disputed is terminal; adjudication is
// an external process and no resolution transition is defined here.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status: escrow held, no courier assigned.
	Created

	// Accepted means a registered courier took the package.
	Accepted

	// Delivered means the courier completed delivery and escrow was
	// released to them.
	Delivered

	// Cancelled means the sender withdrew the package before acceptance
	// and escrow was refunded.
	Cancelled

	// Disputed means the sender or recipient filed a dispute. The package
	// stays in this status until adjudicated externally.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Accepted:  "Accepted",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Disputed:  "Disputed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Accepted:  "Accepted",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Disputed:  "Disputed",
	}
}

// Validate checks the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no lifecycle transition other than dispute
// filing is defined from this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Disputed
}

// ValidateCanHaveCourier checks the consistency between status and courier
// assignment: a courier is set if and only if the package was accepted at
// some point. Disputed packages may carry either, since disputes can be
// filed both before and after acceptance.
func (s Status) ValidateCanHaveCourier(hasCourier bool) error {
	if s == Disputed {
		return nil
	}
	if hasCourier && s != Accepted && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}
	if !hasCourier && (s == Accepted || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}
	return nil
}

// Accept transitions Created -> Accepted.
func (s Status) Accept() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidStateError("accept", s.String())
	}
	return Accepted, nil
}

// Complete transitions Accepted -> Delivered.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateError("complete", s.String())
	}
	return Delivered, nil
}

// Cancel transitions Created -> Cancelled. A package cannot be cancelled
// once a courier accepted it.
func (s Status) Cancel() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}
	return Cancelled, nil
}

// Dispute transitions Created, Accepted or Delivered -> Disputed.
// Filing against a Cancelled package is rejected, as is filing against a
// package that is already Disputed (at most one active dispute).
func (s Status) Dispute() (Status, error) {
	if s != Created && s != Accepted && s != Delivered {
		return 0, errs.NewInvalidStateError("dispute", s.String())
	}
	return Disputed, nil
}
