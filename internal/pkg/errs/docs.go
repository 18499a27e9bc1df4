// Package errs provides the typed errors shared by the domain, application and
// adapter layers of the courier ledger.
//
// Each error type wraps one sentinel so callers can match with errors.Is:
//   - ValueIsRequiredError -> ErrValueIsRequired
//   - ValueIsInvalidError -> ErrValueIsInvalid
//   - ValueIsOutOfRangeError -> ErrValueIsOutOfRange
//   - ObjectNotFoundError -> ErrObjectNotFound
//   - ObjectAlreadyExistsError -> ErrObjectAlreadyExists
//
// Every type has a plain constructor and a WithCause variant; the cause is
// rendered in Error() but Unwrap always yields the sentinel.
package errs
