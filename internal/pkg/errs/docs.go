// Package errs provides standardized error types for the food-delivery
// coordination service. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the
// application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found by identifier
//   - ObjectAlreadyExistsError: For uniqueness violations on creation
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     For input validation failures
//   - VersionConflictError: For lost optimistic-concurrency races
//   - MicroserviceCommunicationError: For unusable responses from the
//     remote users/orders collaborators
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach makes error classification uniform: callers
// branch with errors.Is against the sentinels and the transport layer maps
// the sentinels to user-visible status codes.
package errs
