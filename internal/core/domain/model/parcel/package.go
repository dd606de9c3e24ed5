package parcel

import (
	"errors"
	"fmt"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is the aggregate root for a posted delivery. It owns the
// lifecycle state machine and the escrow settlement state, and enforces the
// authorization rules of every transition by taking the caller's principal
// as an explicit argument.
//
// Invariants:
//   - id is a positive integer, caller-supplied at creation, never reused
//   - sender, recipient, price and the pickup/delivery locations are
//     immutable after creation; recipient never equals sender
//   - courier is set exactly once, on acceptance, and never reassigned
//   - currentLocation is mutable only by the assigned courier while the
//     package is Accepted
//   - escrow equals the price while the package is Created or Accepted and
//     is settled exactly once on a terminal transition
type Package struct {
	id               uint64
	sender           kernel.Principal
	recipient        kernel.Principal
	price            uint64
	pickupLocation   kernel.Address
	deliveryLocation kernel.Address
	currentLocation  kernel.Address
	courier          *kernel.Principal
	status           Status
	escrow           EscrowState

	guard guard.ConstructorGuard
}

// NewPackage creates a package posted by sender for recipient. The current
// location defaults to the pickup location, the status to Created and the
// escrow state to Held; the caller is responsible for actually holding the
// price in the same transaction that persists the aggregate.
//
// Fails when the id is zero, any principal or location is invalid, or the
// recipient equals the sender (InvalidAddress).
func NewPackage(
	id uint64,
	sender kernel.Principal,
	recipient kernel.Principal,
	price uint64,
	pickup kernel.Address,
	delivery kernel.Address,
) (*Package, error) {
	p := &Package{
		status: Created,
		escrow: EscrowHeld,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setParties(sender, recipient),
		p.setLocations(pickup, delivery),
	); err != nil {
		return nil, err
	}

	p.price = price
	p.currentLocation = pickup
	return p, nil
}

// RestorePackage reconstructs a package from persistence. All invariants
// are re-checked, including the consistency between status and courier
// assignment.
func RestorePackage(
	id uint64,
	sender kernel.Principal,
	recipient kernel.Principal,
	price uint64,
	pickup kernel.Address,
	delivery kernel.Address,
	current kernel.Address,
	courier *kernel.Principal,
	status Status,
	escrow EscrowState,
) (*Package, error) {
	p := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setParties(sender, recipient),
		p.setLocations(pickup, delivery),
		current.Validate(),
		status.Validate(),
		escrow.Validate(),
		status.ValidateCanHaveCourier(courier != nil),
	); err != nil {
		return nil, err
	}

	if courier != nil {
		if err := courier.Validate(); err != nil {
			return nil, err
		}
		c := *courier
		p.courier = &c
	}

	p.price = price
	p.currentLocation = current
	p.status = status
	p.escrow = escrow
	return p, nil
}

// Validate ensures the package was built through a constructor.
func (p *Package) Validate() error {
	if p == nil || p.guard.Validate(ErrPackageIsNotConstructed) != nil {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the caller-supplied package identifier.
func (p *Package) ID() uint64 {
	return p.id
}

// Sender returns the principal that created the package.
func (p *Package) Sender() kernel.Principal {
	return p.sender
}

// Recipient returns the principal designated to receive the package.
func (p *Package) Recipient() kernel.Principal {
	return p.recipient
}

// Price returns the amount escrowed against the package.
func (p *Package) Price() uint64 {
	return p.price
}

// PickupLocation returns the immutable pickup location.
func (p *Package) PickupLocation() kernel.Address {
	return p.pickupLocation
}

// DeliveryLocation returns the immutable delivery location.
func (p *Package) DeliveryLocation() kernel.Address {
	return p.deliveryLocation
}

// CurrentLocation returns the last location reported by the courier, or
// the pickup location before acceptance.
func (p *Package) CurrentLocation() kernel.Address {
	return p.currentLocation
}

// Courier returns the assigned courier, or nil before acceptance.
func (p *Package) Courier() *kernel.Principal {
	return p.courier
}

// Status returns the current lifecycle status.
func (p *Package) Status() Status {
	return p.status
}

// Escrow returns the settlement state of the held price.
func (p *Package) Escrow() EscrowState {
	return p.escrow
}

// Accept assigns the package to a courier. The courier reference is set
// exactly once; a second accept fails on the Created-status guard. The
// caller must verify courier registration against the registry before
// invoking Accept.
func (p *Package) Accept(courier kernel.Principal) error {
	if err := courier.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Accept()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.courier = &courier
	return nil
}

// UpdateLocation records the package's current location. Only the assigned
// courier may report location, and only while the package is Accepted.
// Before acceptance there is no courier to authorize against, so the
// failure surfaces as InvalidState.
func (p *Package) UpdateLocation(caller kernel.Principal, location kernel.Address) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if p.courier == nil {
		return errs.NewInvalidStateError("update location of", p.status.String())
	}
	if !caller.IsEqual(*p.courier) {
		return errs.NewNotAuthorizedError(caller.String(), fmt.Sprintf("update location of package %d", p.id))
	}
	if p.status != Accepted {
		return errs.NewInvalidStateError("update location of", p.status.String())
	}

	p.currentLocation = location
	return nil
}

// Complete marks the package Delivered. Only the assigned courier may
// complete. Escrow settlement is a separate step (MarkEscrowReleased plus
// the ledger transfer) executed in the same transaction.
func (p *Package) Complete(caller kernel.Principal) error {
	if p.courier == nil {
		return errs.NewInvalidStateError("complete", p.status.String())
	}
	if !caller.IsEqual(*p.courier) {
		return errs.NewNotAuthorizedError(caller.String(), fmt.Sprintf("complete delivery of package %d", p.id))
	}

	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Cancel marks the package Cancelled. Only the sender may cancel, and only
// before a courier accepted the package.
func (p *Package) Cancel(caller kernel.Principal) error {
	if !caller.IsEqual(p.sender) {
		return errs.NewNotAuthorizedError(caller.String(), fmt.Sprintf("cancel package %d", p.id))
	}

	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Dispute marks the package Disputed. Only the sender or the recipient may
// file; a dispute can be filed from Created, Accepted or Delivered, but
// not against a Cancelled package or one that is already Disputed.
func (p *Package) Dispute(filer kernel.Principal) error {
	if !filer.IsEqual(p.sender) && !filer.IsEqual(p.recipient) {
		return errs.NewNotAuthorizedError(filer.String(), fmt.Sprintf("dispute package %d", p.id))
	}

	newStatus, err := p.status.Dispute()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// MarkEscrowReleased records that the held price was paid out to the
// courier. Fails with NothingEscrowed unless escrow is currently Held,
// which makes a double settlement impossible within the aggregate.
func (p *Package) MarkEscrowReleased() error {
	if p.escrow != EscrowHeld {
		return errs.NewNothingEscrowedError(p.id)
	}
	p.escrow = EscrowReleased
	return nil
}

// MarkEscrowRefunded records that the held price was returned to the
// sender. Fails with NothingEscrowed unless escrow is currently Held.
func (p *Package) MarkEscrowRefunded() error {
	if p.escrow != EscrowHeld {
		return errs.NewNothingEscrowedError(p.id)
	}
	p.escrow = EscrowRefunded
	return nil
}

func (p *Package) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsInvalidErrorWithCause("package id", errors.New("id must be a positive integer"))
	}
	p.id = id
	return nil
}

func (p *Package) setParties(sender, recipient kernel.Principal) error {
	if err := errors.Join(sender.Validate(), recipient.Validate()); err != nil {
		return err
	}
	if recipient.IsEqual(sender) {
		return errs.NewInvalidAddressError(recipient.String())
	}
	p.sender = sender
	p.recipient = recipient
	return nil
}

func (p *Package) setLocations(pickup, delivery kernel.Address) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}
	p.pickupLocation = pickup
	p.deliveryLocation = delivery
	return nil
}
