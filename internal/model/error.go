package model

// Standard error codes for the internal error taxonomy. The wire response
// for server faults stays a fixed generic message per endpoint; these codes
// exist so call sites and tests can assert on the specific kind.
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeAuth            = "AUTH_ERROR"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeStoreFault      = "STORE_FAULT"
)

// DomainError carries an error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrMissingName         = NewDomainError(ErrCodeValidation, "Query parameter name is required")
	ErrInvalidSortCriteria = NewDomainError(ErrCodeValidation, "Sort criteria must be one of originalprice, name or temporaryprice")
	ErrMissingDiscount     = NewDomainError(ErrCodeValidation, "Field temporaryPrice is required")
	ErrMissingProductID    = NewDomainError(ErrCodeValidation, "Product id is required")
	ErrAuthFailed          = NewDomainError(ErrCodeAuth, "Authentication failed")
)
