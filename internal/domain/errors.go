package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the reservation flow.
var (
	// ErrInvalidRequest indicates missing or malformed user input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotFound indicates an unknown booking session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTrainNotFound indicates a train number absent from the catalog.
	ErrTrainNotFound = errors.New("train not found")

	// ErrClassNotOffered indicates the train does not run the requested class.
	ErrClassNotOffered = errors.New("class not offered by train")

	// ErrCoachNotFound indicates a coach name outside the coach layout.
	ErrCoachNotFound = errors.New("coach not found")

	// ErrNoSearch indicates an operation that needs a prior search on the session.
	ErrNoSearch = errors.New("no search on session")

	// ErrNoSelection indicates an operation that needs a chosen coach.
	ErrNoSelection = errors.New("no coach selected")

	// ErrInvalidSeat indicates a seat id outside the coach layout.
	ErrInvalidSeat = errors.New("invalid seat")

	// ErrSeatOccupied indicates the seat is already sold for the occupancy key.
	ErrSeatOccupied = errors.New("seat already occupied")

	// ErrSeatLimitReached indicates the seat set already equals the passenger count.
	ErrSeatLimitReached = errors.New("seat count equals passenger count")

	// ErrIncompleteSelection indicates checkout with fewer seats than passengers.
	ErrIncompleteSelection = errors.New("seat count does not match passenger count")

	// ErrCheckoutRequired indicates payment without an open checkout.
	ErrCheckoutRequired = errors.New("checkout required before payment")

	// ErrTicketNotFound indicates an unknown PNR.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrKeyNotFound is returned by a KeyValueStore for an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorage indicates a durable write that failed after retries.
	ErrStorage = errors.New("storage failure")
)

// ValidationError describes a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// ValidationErrors collects field-level validation failures.
type ValidationErrors struct {
	Errors []ValidationError
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if any field failed validation.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Error()
}

// Unwrap makes ValidationErrors match ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// ToMap converts the errors to a field -> message map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// WrapInvalidRequest creates an error wrapping ErrInvalidRequest with context.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if an error is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound reports whether err names a missing session, train, coach or ticket.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrTrainNotFound) ||
		errors.Is(err, ErrCoachNotFound) ||
		errors.Is(err, ErrTicketNotFound)
}

// IsConflict reports whether err is a seat conflict or a booking state violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrSeatOccupied) ||
		errors.Is(err, ErrSeatLimitReached) ||
		errors.Is(err, ErrIncompleteSelection) ||
		errors.Is(err, ErrCheckoutRequired) ||
		errors.Is(err, ErrNoSelection) ||
		errors.Is(err, ErrNoSearch)
}
