package common

import (
	"net/http"
)

// ErrorResponse is the API error payload
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // only populated in debug mode
}

// CustomError carries an error code and HTTP status alongside the cause
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError creates a new CustomError
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Predefined error codes
const (
	// client errors (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeUnauthorized     = "UNAUTHORIZED"       // 401
	ErrCodeForbidden        = "FORBIDDEN"          // 403
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeConflict         = "CONFLICT"           // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// server errors (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503

	// business errors
	ErrCodeUnknownMeal             = "UNKNOWN_MEAL"
	ErrCodeInvalidServings         = "INVALID_SERVINGS"
	ErrCodeIncompatibleUnits       = "INCOMPATIBLE_UNITS"
	ErrCodeDealSourceUnavailable   = "DEAL_SOURCE_UNAVAILABLE"
	ErrCodePantrySourceUnavailable = "PANTRY_SOURCE_UNAVAILABLE"
	ErrCodePantryItemNotFound      = "PANTRY_ITEM_NOT_FOUND"
	ErrCodeListNotFound            = "LIST_NOT_FOUND"
	ErrCodeFavoriteNotFound        = "FAVORITE_NOT_FOUND"
)

// Predefined errors
var (
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "unauthorized", http.StatusUnauthorized, nil)
	ErrForbidden        = NewError(ErrCodeForbidden, "forbidden", http.StatusForbidden, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "method not allowed", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "request timed out", http.StatusRequestTimeout, nil)
	ErrConflict         = NewError(ErrCodeConflict, "resource conflict", http.StatusConflict, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "service temporarily unavailable", http.StatusServiceUnavailable, nil)

	ErrDealSourceUnavailable   = NewError(ErrCodeDealSourceUnavailable, "deal index unavailable", http.StatusServiceUnavailable, nil)
	ErrPantrySourceUnavailable = NewError(ErrCodePantrySourceUnavailable, "pantry store unavailable", http.StatusServiceUnavailable, nil)
	ErrPantryItemNotFound      = NewError(ErrCodePantryItemNotFound, "pantry item not found", http.StatusNotFound, nil)
	ErrListNotFound            = NewError(ErrCodeListNotFound, "shopping list not found", http.StatusNotFound, nil)
	ErrFavoriteNotFound        = NewError(ErrCodeFavoriteNotFound, "favorite not found", http.StatusNotFound, nil)
)
