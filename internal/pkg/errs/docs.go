// Package errs provides standardized error types for the repair shop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - InvalidTransitionError: For when an order lifecycle guard rejects a change
//   - DuplicateEntityError: For when a unique identity collides with an existing row
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Adapters map the sentinels to transport codes (400, 404, 409) without
// inspecting messages.
package errs
