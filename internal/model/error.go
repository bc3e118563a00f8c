package model

import "fmt"

// ValidationError reports a malformed field in an inbound payload or a
// record that fails schema construction.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Standard error codes for API responses.
const (
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
)

// Common domain errors.
var (
	// ErrProductNotFound is surfaced to the client as a 404.
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")

	// ErrGatewayUnavailable marks any document store access failure. It is
	// never surfaced to the client; callers recover with fallback data or
	// degrade the affected field instead.
	ErrGatewayUnavailable = NewDomainError(ErrCodeGatewayUnavailable, "document store unavailable")
)
