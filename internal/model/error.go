package model

// Standard error codes for API responses
const (
	ErrCodeInvalidForm        = "INVALID_FORM"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidAction      = "INVALID_ACTION"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeInvalidEmail       = "INVALID_EMAIL"
	ErrCodeCityNotFound       = "CITY_NOT_FOUND"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-logic failure with a stable code that handlers
// can map to an HTTP status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be an integer")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrMissingName     = NewDomainError(ErrCodeMissingField, "Name is required")
	ErrInvalidEmail    = NewDomainError(ErrCodeInvalidEmail, "A valid email address is required")
	ErrMissingMessage  = NewDomainError(ErrCodeMissingField, "Message is required")
	ErrCityNotFound    = NewDomainError(ErrCodeCityNotFound, "City not found")
)
