package courier

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

const (
	// NameMaxLen bounds the courier's display name.
	NameMaxLen = 256

	// RatingMin and RatingMax bound a single rating submission (closed range).
	RatingMin = 1
	RatingMax = 5
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through NewCourier or RestoreCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier is the aggregate root for a registered courier. It is keyed by
// the principal that registered (one courier record per principal, never
// deleted) and accumulates rating submissions.
//
// Invariants:
//   - ratingCount >= 0 and ratingTotal is the sum of all accepted submissions
//   - every accepted submission lies in the closed range [RatingMin, RatingMax]
//   - average rating = ratingTotal / ratingCount when ratingCount > 0
//
// No restriction ties a rating to a completed delivery and self-rating is
// not rejected; who may rate whom is a policy decision outside this
// aggregate.
type Courier struct {
	principal   kernel.Principal
	name        string
	ratingTotal uint64
	ratingCount uint64

	guard guard.ConstructorGuard
}

// NewCourier registers a courier for the given principal. The rating
// ledger starts empty.
func NewCourier(principal kernel.Principal, name string) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setPrincipal(principal),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence, re-checking all
// invariants.
func RestoreCourier(principal kernel.Principal, name string, ratingTotal, ratingCount uint64) (*Courier, error) {
	c, err := NewCourier(principal, name)
	if err != nil {
		return nil, err
	}

	if ratingCount == 0 && ratingTotal != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("rating total",
			errors.New("rating total must be zero when no ratings were recorded"))
	}

	c.ratingTotal = ratingTotal
	c.ratingCount = ratingCount
	return c, nil
}

// Validate ensures the courier was built through a constructor.
func (c *Courier) Validate() error {
	if c == nil || c.guard.Validate(ErrCourierIsNotConstructed) != nil {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// Principal returns the identity that registered this courier.
func (c *Courier) Principal() kernel.Principal {
	return c.principal
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// RatingTotal returns the sum of all rating submissions received.
func (c *Courier) RatingTotal() uint64 {
	return c.ratingTotal
}

// RatingCount returns the number of rating submissions received.
func (c *Courier) RatingCount() uint64 {
	return c.ratingCount
}

// AverageRating returns ratingTotal / ratingCount, or 0 when the courier
// has not been rated yet.
func (c *Courier) AverageRating() float64 {
	if c.ratingCount == 0 {
		return 0
	}
	return float64(c.ratingTotal) / float64(c.ratingCount)
}

// AddRating records a single rating submission. Fails with InvalidScore
// when the score lies outside [RatingMin, RatingMax].
func (c *Courier) AddRating(score uint64) error {
	if score < RatingMin || score > RatingMax {
		return errs.NewInvalidScoreError(score)
	}

	c.ratingTotal += score
	c.ratingCount++
	return nil
}

func (c *Courier) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > NameMaxLen {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, NameMaxLen)
	}
	c.name = name
	return nil
}
