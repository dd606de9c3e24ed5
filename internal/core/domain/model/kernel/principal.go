package kernel

import (
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// PrincipalMaxLen bounds the length of a principal address.
const PrincipalMaxLen = 128

// ErrPrincipalIsNotConstructed indicates a zero-value Principal that
// bypassed NewPrincipal.
var ErrPrincipalIsNotConstructed = errs.NewValueIsRequiredError(
	"principal must be created via NewPrincipal")

// Principal is the authenticated identity of a caller or account. The
// runtime collaborator (here, the HTTP auth middleware) supplies the
// caller's principal on every operation; the domain never reads ambient
// identity state.
//
// Principal is an immutable value object. Two principals are equal when
// their addresses are equal.
type Principal struct {
	address string
}

// NewPrincipal creates a Principal from its address text.
// The address must be non-empty and at most PrincipalMaxLen characters.
func NewPrincipal(address string) (Principal, error) {
	if address == "" {
		return Principal{}, errs.NewValueIsRequiredError("principal address")
	}
	if len(address) > PrincipalMaxLen {
		return Principal{}, errs.NewValueIsOutOfRangeError("principal address length", len(address), 1, PrincipalMaxLen)
	}
	return Principal{address: address}, nil
}

// String returns the principal's address text.
func (p Principal) String() string {
	return p.address
}

// IsEqual reports whether two principals identify the same account.
func (p Principal) IsEqual(other Principal) bool {
	return p.address == other.address
}

// Validate rejects the zero value.
func (p Principal) Validate() error {
	if p.address == "" {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}
