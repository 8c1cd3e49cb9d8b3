package models

// ValidationError is returned when a request payload is missing a field or
// carries an invalid value. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is returned when a listing with the requested id does not
// exist. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ErrListingNotFound is the error payload for unknown listing ids
var ErrListingNotFound = &NotFoundError{Message: "Listing not found"}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
