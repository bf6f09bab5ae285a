// Package errs provides standardized error types for the FastDelivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the application's error taxonomy:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its permitted bounds
//   - ObjectNotFoundError: For when a referenced entity cannot be found
//   - ObjectAlreadyExistsError: For unique-constraint violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Validation errors are accumulated with errors.Join wherever multiple fields
// are checked; Messages splits the combined error back into the individual
// human-readable messages for API responses.
package errs
