// Package errs provides the standardized error types used across the
// delivery network core.
//
// Two groups of errors live here:
//
//   - Generic value errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError) used by value objects
//     and repositories.
//
//   - Domain errors matching the marketplace error taxonomy
//     (DuplicatePackageIDError, PackageNotFoundError, InvalidAddressError,
//     InsufficientFundsError, CourierAlreadyRegisteredError,
//     CourierNotRegisteredError, NotAuthorizedError, InvalidStateError,
//     InvalidScoreError, NothingEscrowedError, TransferFailedError).
//
// Every error type follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct carrying details, constructor functions,
// and Error/Unwrap methods. Callers classify failures with errors.Is against
// the sentinels; the structs exist for reporting detail, never for control
// flow beyond the sentinel.
package errs
