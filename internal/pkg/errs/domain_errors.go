package errs

import (
	"errors"
	"fmt"
)

// Sentinels for the marketplace error taxonomy. Command handlers and the
// HTTP adapter classify failures with errors.Is against these.
var (
	ErrDuplicatePackageID       = errors.New("package id already exists")
	ErrPackageNotFound          = errors.New("package not found")
	ErrInvalidAddress           = errors.New("recipient address is invalid")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrCourierAlreadyRegistered = errors.New("courier already registered")
	ErrCourierNotRegistered     = errors.New("courier not registered")
	ErrNotAuthorized            = errors.New("caller is not authorized")
	ErrInvalidState             = errors.New("operation not valid in current status")
	ErrInvalidScore             = errors.New("rating score is out of range")
	ErrNothingEscrowed          = errors.New("nothing escrowed for package")
	ErrTransferFailed           = errors.New("balance transfer failed")
)

// DuplicatePackageIDError is returned when creating a package with an id
// that is already taken. Package ids are caller-supplied and never reused.
type DuplicatePackageIDError struct {
	PackageID uint64
}

func NewDuplicatePackageIDError(packageID uint64) *DuplicatePackageIDError {
	return &DuplicatePackageIDError{PackageID: packageID}
}

func (e *DuplicatePackageIDError) Error() string {
	return fmt.Sprintf("%s: %d", ErrDuplicatePackageID, e.PackageID)
}

func (e *DuplicatePackageIDError) Unwrap() error {
	return ErrDuplicatePackageID
}

// PackageNotFoundError is returned when a package lookup by id finds no
// record. It always precedes authorization evaluation: without the record
// there is no sender or courier to authorize against.
type PackageNotFoundError struct {
	PackageID uint64
	Cause     error
}

func NewPackageNotFoundError(packageID uint64) *PackageNotFoundError {
	return &PackageNotFoundError{PackageID: packageID}
}

func NewPackageNotFoundErrorWithCause(packageID uint64, cause error) *PackageNotFoundError {
	return &PackageNotFoundError{PackageID: packageID, Cause: cause}
}

func (e *PackageNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %d (cause: %s)", ErrPackageNotFound, e.PackageID, e.Cause)
	}
	return fmt.Sprintf("%s: %d", ErrPackageNotFound, e.PackageID)
}

func (e *PackageNotFoundError) Unwrap() error {
	return ErrPackageNotFound
}

// InvalidAddressError is returned when a package designates its own sender
// as the recipient.
type InvalidAddressError struct {
	Principal string
}

func NewInvalidAddressError(principal string) *InvalidAddressError {
	return &InvalidAddressError{Principal: principal}
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("%s: recipient %s equals sender", ErrInvalidAddress, e.Principal)
}

func (e *InvalidAddressError) Unwrap() error {
	return ErrInvalidAddress
}

// InsufficientFundsError is returned when an account's spendable balance
// cannot cover a debit.
type InsufficientFundsError struct {
	Principal string
	Amount    uint64
}

func NewInsufficientFundsError(principal string, amount uint64) *InsufficientFundsError {
	return &InsufficientFundsError{Principal: principal, Amount: amount}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: account %s cannot cover %d", ErrInsufficientFunds, e.Principal, e.Amount)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// CourierAlreadyRegisteredError is returned when a principal that already
// has a courier record attempts to register again.
type CourierAlreadyRegisteredError struct {
	Principal string
}

func NewCourierAlreadyRegisteredError(principal string) *CourierAlreadyRegisteredError {
	return &CourierAlreadyRegisteredError{Principal: principal}
}

func (e *CourierAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCourierAlreadyRegistered, e.Principal)
}

func (e *CourierAlreadyRegisteredError) Unwrap() error {
	return ErrCourierAlreadyRegistered
}

// CourierNotRegisteredError is returned when an operation requires a
// courier record that does not exist.
type CourierNotRegisteredError struct {
	Principal string
	Cause     error
}

func NewCourierNotRegisteredError(principal string) *CourierNotRegisteredError {
	return &CourierNotRegisteredError{Principal: principal}
}

func NewCourierNotRegisteredErrorWithCause(principal string, cause error) *CourierNotRegisteredError {
	return &CourierNotRegisteredError{Principal: principal, Cause: cause}
}

func (e *CourierNotRegisteredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrCourierNotRegistered, e.Principal, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrCourierNotRegistered, e.Principal)
}

func (e *CourierNotRegisteredError) Unwrap() error {
	return ErrCourierNotRegistered
}

// NotAuthorizedError is returned when the caller is not the principal the
// operation requires (sender, assigned courier, or recipient).
type NotAuthorizedError struct {
	Principal string
	Operation string
}

func NewNotAuthorizedError(principal, operation string) *NotAuthorizedError {
	return &NotAuthorizedError{Principal: principal, Operation: operation}
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrNotAuthorized, e.Principal, e.Operation)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// InvalidStateError is returned when a lifecycle transition is attempted
// from a status that does not allow it.
type InvalidStateError struct {
	Operation string
	Status    string
}

func NewInvalidStateError(operation, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s a package in status %s", ErrInvalidState, e.Operation, e.Status)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidScoreError is returned when a rating score falls outside the
// closed range [1,5].
type InvalidScoreError struct {
	Score uint64
}

func NewInvalidScoreError(score uint64) *InvalidScoreError {
	return &InvalidScoreError{Score: score}
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("%s: %d is not within [1,5]", ErrInvalidScore, e.Score)
}

func (e *InvalidScoreError) Unwrap() error {
	return ErrInvalidScore
}

// NothingEscrowedError is returned when a release or refund is attempted
// for a package whose escrow was never held or was already settled.
type NothingEscrowedError struct {
	PackageID uint64
}

func NewNothingEscrowedError(packageID uint64) *NothingEscrowedError {
	return &NothingEscrowedError{PackageID: packageID}
}

func (e *NothingEscrowedError) Error() string {
	return fmt.Sprintf("%s: %d", ErrNothingEscrowed, e.PackageID)
}

func (e *NothingEscrowedError) Unwrap() error {
	return ErrNothingEscrowed
}

// TransferFailedError is returned when the ledger's transfer primitive
// faults for a reason other than insufficient funds. It is kept distinct so
// infrastructure faults are never mistaken for a spendable-balance problem.
type TransferFailedError struct {
	Cause error
}

func NewTransferFailedError(cause error) *TransferFailedError {
	return &TransferFailedError{Cause: cause}
}

func (e *TransferFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrTransferFailed, e.Cause)
	}
	return ErrTransferFailed.Error()
}

func (e *TransferFailedError) Unwrap() error {
	return ErrTransferFailed
}
