// Package errs provides the error types shared by the dispatch service.
//
// The taxonomy the API exposes maps onto these sentinels:
//   - NotFound: ErrObjectNotFound (ObjectNotFoundError)
//   - CapacityExceeded: ErrCapacityExceeded (CapacityExceededError)
//   - Invalid: ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange
//
// Each type carries the offending parameter, formats a human readable
// message and unwraps to its sentinel, so callers test with errors.Is and
// extract details with errors.As.
package errs
