// Package errs provides the standardized error taxonomy for the brewery
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the failure classes of the order workflow:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     invalid-argument conditions raised before any persistence happens
//   - ObjectNotFoundError: a referenced object (beer, customer, order) is absent
//   - ObjectAlreadyExistsError: a uniqueness rule (email, UPC) is violated
//   - VersionConflictError: an optimistic-concurrency write observed a stale
//     version; reported distinctly from not-found so callers can retry
//   - PreconditionViolatedError: an internal invariant was broken, indicating
//     a defect in the caller rather than bad user input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
package errs
