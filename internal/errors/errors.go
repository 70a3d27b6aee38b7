// Package errors provides the application error taxonomy for the autoledger API.
// Service-layer failures are returned as *AppError so handlers can pick the
// status code and the literal client-facing message without inspecting
// driver errors.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// client-facing message, HTTP status code, and optional internal error.
//
// Detail is only set for routes that echo the underlying failure back to the
// client in an "error" field.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
	Detail     string `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
		Detail:     sentinel.Detail,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
		Detail:     sentinel.Detail,
	}
}

// WithDetail wraps internal like Wrap and additionally exposes its text as Detail.
func WithDetail(sentinel *AppError, internal error) *AppError {
	e := Wrap(sentinel, internal)
	if internal != nil {
		e.Detail = internal.Error()
	}
	return e
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrBodyTooLarge   = &AppError{Code: "BODY_TOO_LARGE", Message: "Request body too large", StatusCode: http.StatusRequestEntityTooLarge}
	ErrMissingFields  = &AppError{Code: "MISSING_FIELDS", Message: "Missing required fields", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrConflict       = &AppError{Code: "CONFLICT", Message: "Resource already exists", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrUnverifiedLink = &AppError{Code: "UNVERIFIED_EMAIL", Message: "Sign in with your password to link this account; the provider has not verified this email", StatusCode: http.StatusConflict}
)

// Entry id errors.
var (
	ErrMissingEntryID = &AppError{Code: "INVALID_ID", Message: "Missing or invalid entry ID", StatusCode: http.StatusBadRequest}
	ErrBadEntryID     = &AppError{Code: "INVALID_ID", Message: "Invalid entry ID format", StatusCode: http.StatusBadRequest}
)

// Vehicle errors.
var (
	ErrVehicleNotFound = &AppError{Code: "VEHICLE_NOT_FOUND", Message: "Vehicle not found", StatusCode: http.StatusNotFound}
)

// Entry errors.
var (
	ErrFuelEntryNotFound    = &AppError{Code: "FUEL_ENTRY_NOT_FOUND", Message: "Fuel entry not found", StatusCode: http.StatusNotFound}
	ErrExpenseEntryNotFound = &AppError{Code: "EXPENSE_ENTRY_NOT_FOUND", Message: "Expense entry not found", StatusCode: http.StatusNotFound}
	ErrIncomeEntryNotFound  = &AppError{Code: "INCOME_ENTRY_NOT_FOUND", Message: "Income entry not found", StatusCode: http.StatusNotFound}
)

// Catalog errors.
var (
	ErrNameRequired     = &AppError{Code: "NAME_REQUIRED", Message: "Name is required", StatusCode: http.StatusBadRequest}
	ErrCatalogNotFound  = &AppError{Code: "CATALOG_ENTRY_NOT_FOUND", Message: "Entry not found", StatusCode: http.StatusNotFound}
	ErrPredefinedEntry  = &AppError{Code: "PREDEFINED_ENTRY", Message: "Predefined entries cannot be modified", StatusCode: http.StatusForbidden}
	ErrDuplicateCatalog = &AppError{Code: "DUPLICATE_ENTRY", Message: "Entry already exists", StatusCode: http.StatusConflict}
)
