package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeMissingField  = "MISSING_FIELD"
	ErrCodeItemNotFound  = "ITEM_NOT_FOUND"
	ErrCodeInvalidIndex  = "INVALID_INDEX"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeMethod        = "METHOD_NOT_ALLOWED"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Domain errors for register operations
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
	ErrItemNotFound = NewDomainError(ErrCodeItemNotFound, "Item is not on the menu for the given category")
	ErrMissingField = NewDomainError(ErrCodeMissingField, "Category and item are required")
	ErrInvalidIndex = NewDomainError(ErrCodeInvalidIndex, "Order index must be a whole number")
)
