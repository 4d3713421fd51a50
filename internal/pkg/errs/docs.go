// Package errs provides standardized error types for the InstaGrow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the application's error taxonomy:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found by its identifier
//   - InvalidStatusTransitionError: an order status move the lifecycle forbids
//   - PaymentReferenceError: the payment reference collaborator failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Handlers at the HTTP boundary rely on this classification to map domain
// failures onto response codes without inspecting error strings.
package errs
