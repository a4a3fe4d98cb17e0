package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Client-facing error titles.
const (
	ErrTitleMissingParameters = "Missing required parameters"
	ErrTitleInvalidPriceRange = "Invalid price range"
	ErrTitleInternalError     = "Internal server error"
)

// Standard error codes for API responses.
const (
	ErrCodeMissingParameters  = "MISSING_PARAMETERS"
	ErrCodePriceNotNumber     = "PRICE_NOT_A_NUMBER"
	ErrCodePriceNegative      = "PRICE_NEGATIVE"
	ErrCodePriceMinExceedsMax = "PRICE_MIN_EXCEEDS_MAX"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation that maps to a 4xx response.
type DomainError struct {
	Code    string
	Title   string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, title, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Title:   title,
		Message: message,
	}
}

// Validation errors for the dish search filters, in the order they are
// checked.
var (
	ErrMissingParameters = NewDomainError(ErrCodeMissingParameters,
		ErrTitleMissingParameters, "name, minPrice, and maxPrice are required")
	ErrPriceNotNumber = NewDomainError(ErrCodePriceNotNumber,
		ErrTitleInvalidPriceRange, "minPrice and maxPrice must be valid numbers")
	ErrPriceNegative = NewDomainError(ErrCodePriceNegative,
		ErrTitleInvalidPriceRange, "Prices must be non-negative")
	ErrPriceMinExceedsMax = NewDomainError(ErrCodePriceMinExceedsMax,
		ErrTitleInvalidPriceRange, "minPrice must be less than or equal to maxPrice")
)
