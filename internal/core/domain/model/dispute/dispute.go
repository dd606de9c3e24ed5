package dispute

import (
	"errors"
	"time"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"

	"github.com/google/uuid"
)

// ReasonMaxLen bounds the free-text dispute reason.
const ReasonMaxLen = 256

// ErrDisputeIsNotConstructed is returned when a Dispute instance was not
// created through NewDispute or RestoreDispute.
var ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute constructor")

// Dispute records a dispute filed against a package. At most one dispute
// exists per package; the package's transition to Disputed and the creation
// of this record happen in the same transaction.
type Dispute struct {
	id        uuid.UUID
	packageID uint64
	filer     kernel.Principal
	reason    string
	filedAt   time.Time

	guard guard.ConstructorGuard
}

// NewDispute files a dispute against a package. The filed-at marker is
// taken from the wall clock at creation; it only orders disputes relative
// to each other, it carries no lifecycle meaning.
func NewDispute(packageID uint64, filer kernel.Principal, reason string) (*Dispute, error) {
	d := &Dispute{
		id:      uuid.New(),
		filedAt: time.Now().UTC(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setPackageID(packageID),
		d.setFiler(filer),
		d.setReason(reason),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispute reconstructs a dispute from persistence.
func RestoreDispute(id uuid.UUID, packageID uint64, filer kernel.Principal, reason string, filedAt time.Time) (*Dispute, error) {
	d := &Dispute{
		guard: guard.NewConstructorGuard(),
	}

	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("dispute id")
	}

	if err := errors.Join(
		d.setPackageID(packageID),
		d.setFiler(filer),
		d.setReason(reason),
	); err != nil {
		return nil, err
	}

	d.id = id
	d.filedAt = filedAt
	return d, nil
}

// Validate ensures the dispute was built through a constructor.
func (d *Dispute) Validate() error {
	if d == nil || d.guard.Validate(ErrDisputeIsNotConstructed) != nil {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// ID returns the dispute's unique identifier.
func (d *Dispute) ID() uuid.UUID {
	return d.id
}

// PackageID returns the id of the disputed package.
func (d *Dispute) PackageID() uint64 {
	return d.packageID
}

// Filer returns the principal that filed the dispute.
func (d *Dispute) Filer() kernel.Principal {
	return d.filer
}

// Reason returns the filer's free-text reason.
func (d *Dispute) Reason() string {
	return d.reason
}

// FiledAt returns the ordering marker recorded at filing time.
func (d *Dispute) FiledAt() time.Time {
	return d.filedAt
}

func (d *Dispute) setPackageID(packageID uint64) error {
	if packageID == 0 {
		return errs.NewValueIsInvalidErrorWithCause("package id", errors.New("id must be a positive integer"))
	}
	d.packageID = packageID
	return nil
}

func (d *Dispute) setFiler(filer kernel.Principal) error {
	if err := filer.Validate(); err != nil {
		return err
	}
	d.filer = filer
	return nil
}

func (d *Dispute) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if len(reason) > ReasonMaxLen {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, ReasonMaxLen)
	}
	d.reason = reason
	return nil
}
