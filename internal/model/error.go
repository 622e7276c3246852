package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeCategoryExists   = "CATEGORY_ALREADY_EXISTS"
	ErrCodeCategoryInUse    = "CATEGORY_IN_USE"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeImageNotFound    = "IMAGE_NOT_FOUND"
	ErrCodeEmptyUpload      = "EMPTY_UPLOAD"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure with a stable code. The API layer
// is the only place that translates codes into HTTP statuses.
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
	ErrCategoryNotFound = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrCategoryExists   = NewDomainError(ErrCodeCategoryExists, "Category already exists with that name")
	ErrCategoryInUse    = NewDomainError(ErrCodeCategoryInUse, "Category is referenced by existing products")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrImageNotFound    = NewDomainError(ErrCodeImageNotFound, "Image not found")
	ErrEmptyUpload      = NewDomainError(ErrCodeEmptyUpload, "Upload must contain at least one file")
)
